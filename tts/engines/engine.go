// Package engines defines the capability contract that speech synthesis
// engines satisfy. The converter core is written against this interface
// so it can run with a fake engine in tests and without the real engine
// installed.
package engines

// Utterance is one synthesized fragment yielded by an engine. An engine
// may re-split a chunk into several utterances; callers must consume the
// samples in yield order. Graphemes and phonemes travel along for
// diagnostics only and may be empty.
type Utterance struct {
	Graphemes string
	Phonemes  string
	Samples   []float32
}

// Engine converts text into speech samples. Implementations own any
// external process or model behind them. Initialize must be called once,
// with the language code, before any Synthesize call.
type Engine interface {
	// Initialize prepares the engine for the given language code.
	Initialize(lang string) error

	// Synthesize renders text with the given voice and speed multiplier,
	// yielding zero or more utterances in order.
	Synthesize(text, voice string, speed float64) ([]Utterance, error)

	// IsAvailable reports whether the engine can be used at all.
	IsAvailable() bool

	// Shutdown releases any resources held by the engine.
	Shutdown() error
}
