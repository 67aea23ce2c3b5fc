package tts

import (
	"errors"
	"fmt"
)

// Common errors for the synthesis pipeline.
var (
	// ErrEngineNotAvailable means the TTS engine is missing or failed to
	// initialize.
	ErrEngineNotAvailable = errors.New("TTS engine is not available")
)

// SynthesisError reports a chunk whose synthesis call failed. The run is
// aborted as soon as one occurs; there is no retry and no partial output.
type SynthesisError struct {
	Chunk   int    // zero-based index of the failing chunk
	Preview string // leading text of the failing chunk
	Err     error
}

// Error implements the error interface.
func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis failed on chunk %d (%q): %v", e.Chunk, e.Preview, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *SynthesisError) Unwrap() error { return e.Err }

// preview shortens chunk text for error messages and log lines.
func preview(text string) string {
	const max = 100
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
