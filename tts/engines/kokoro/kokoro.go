// Package kokoro integrates the Kokoro TTS engine through its command
// line interface. A fresh process is run per synthesis request and raw
// 32-bit float samples are read from its standard output.
package kokoro

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/WLojek/ebook-to-audiobook-converter/tts/engines"
)

// Config holds the engine invocation settings.
type Config struct {
	Binary     string // kokoro CLI binary; resolved through PATH
	SampleRate int    // sample rate requested from the engine
}

// Engine implements engines.Engine on top of the kokoro binary.
type Engine struct {
	config Config
	lang   string
}

// New creates a Kokoro engine with the given configuration.
func New(config Config) *Engine {
	if config.Binary == "" {
		config.Binary = "kokoro"
	}
	return &Engine{config: config}
}

// Initialize records the language code used for every subsequent call.
func (e *Engine) Initialize(lang string) error {
	e.lang = lang
	return nil
}

// IsAvailable reports whether the kokoro binary can be run.
func (e *Engine) IsAvailable() bool {
	return exec.Command(e.config.Binary, "--version").Run() == nil
}

// Synthesize renders text by piping it through a kokoro process. Kokoro
// handles one request per process, so the whole chunk comes back as a
// single utterance.
func (e *Engine) Synthesize(text, voice string, speed float64) ([]engines.Utterance, error) {
	args := []string{
		"--lang", e.lang,
		"--voice", voice,
		"--speed", strconv.FormatFloat(speed, 'f', -1, 64),
		"--sample-rate", strconv.Itoa(e.config.SampleRate),
		"--output-raw",
	}
	log.Debug("running kokoro", "binary", e.config.Binary, "args", args)

	cmd := exec.Command(e.config.Binary, args...)
	cmd.Stdin = bytes.NewBufferString(text + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("kokoro failed: %w: %s", err, stderr.String())
		}
		return nil, fmt.Errorf("kokoro failed: %w", err)
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("kokoro produced no audio")
	}

	samples, err := decodeSamples(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	log.Debug("kokoro finished", "samples", len(samples))

	return []engines.Utterance{{Graphemes: text, Samples: samples}}, nil
}

// Shutdown is a no-op; each request owns its own process.
func (e *Engine) Shutdown() error { return nil }

// decodeSamples reinterprets raw little-endian float32 PCM bytes.
func decodeSamples(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("raw audio length %d is not float32-aligned", len(raw))
	}
	samples := make([]float32, len(raw)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return samples, nil
}
