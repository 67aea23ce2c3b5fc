// Package mock provides a deterministic fake engine for tests and dry
// runs. It fabricates silent audio at a fixed samples-per-character rate
// and can be told to fail on a specific call.
package mock

import (
	"fmt"

	"github.com/WLojek/ebook-to-audiobook-converter/tts/engines"
)

// Engine implements engines.Engine without any external dependency.
type Engine struct {
	// SamplesPerChar controls how many samples each input character
	// produces.
	SamplesPerChar int

	// UtterancesPerCall splits each call's output into this many
	// utterances, mimicking engines that re-split chunks internally.
	UtterancesPerCall int

	// FailOnCall makes the Nth Synthesize call (1-based) return an
	// error; 0 disables failure injection.
	FailOnCall int

	// Unavailable makes IsAvailable report false.
	Unavailable bool

	// InitErr is returned from Initialize when set.
	InitErr error

	lang        string
	calls       int
	initialized bool
	shutdown    bool
}

// New creates a mock engine with usable defaults.
func New() *Engine {
	return &Engine{SamplesPerChar: 10, UtterancesPerCall: 1}
}

// Initialize records the language code.
func (e *Engine) Initialize(lang string) error {
	if e.InitErr != nil {
		return e.InitErr
	}
	e.lang = lang
	e.initialized = true
	return nil
}

// IsAvailable reports the configured availability.
func (e *Engine) IsAvailable() bool { return !e.Unavailable }

// Synthesize fabricates silent samples for the text.
func (e *Engine) Synthesize(text, voice string, speed float64) ([]engines.Utterance, error) {
	e.calls++

	if !e.initialized {
		return nil, fmt.Errorf("mock engine not initialized")
	}
	if e.FailOnCall > 0 && e.calls == e.FailOnCall {
		return nil, fmt.Errorf("mock failure on call %d", e.calls)
	}

	n := e.UtterancesPerCall
	if n < 1 {
		n = 1
	}
	total := len(text) * e.SamplesPerChar
	per := total / n

	utterances := make([]engines.Utterance, 0, n)
	for i := 0; i < n; i++ {
		size := per
		if i == n-1 {
			size = total - per*(n-1)
		}
		utterances = append(utterances, engines.Utterance{
			Graphemes: text,
			Samples:   make([]float32, size),
		})
	}
	return utterances, nil
}

// Shutdown records that the engine was shut down.
func (e *Engine) Shutdown() error {
	e.shutdown = true
	return nil
}

// Calls reports how many Synthesize calls were made.
func (e *Engine) Calls() int { return e.calls }

// Lang reports the language code passed to Initialize.
func (e *Engine) Lang() string { return e.lang }

// WasShutdown reports whether Shutdown was called.
func (e *Engine) WasShutdown() bool { return e.shutdown }
