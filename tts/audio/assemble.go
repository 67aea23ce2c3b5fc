// Package audio assembles synthesized segments into a single sample
// stream and writes it to disk as an uncompressed WAV file.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/WLojek/ebook-to-audiobook-converter/tts"
)

// Common errors for audio assembly.
var (
	// ErrNoAudioProduced means there were zero samples to write.
	ErrNoAudioProduced = errors.New("no audio was produced")

	// ErrWriteFailure wraps failures to create or write the output file.
	ErrWriteFailure = errors.New("could not write audio file")
)

// Concat flattens the ordered segment sequence into one sample buffer,
// preserving segment order.
func Concat(segments []tts.Segment) []float32 {
	var total int
	for _, seg := range segments {
		total += len(seg.Samples)
	}

	out := make([]float32, 0, total)
	for _, seg := range segments {
		out = append(out, seg.Samples...)
	}
	return out
}

// WriteWAV writes the samples as a mono 16-bit PCM WAV file at the given
// sample rate, creating parent directories as needed. An empty sample
// buffer is an error rather than a zero-length file.
func WriteWAV(path string, samples []float32, sampleRate int) error {
	if len(samples) == 0 {
		return ErrNoAudioProduced
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailure, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = pcm16(s)
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}

// pcm16 clamps a float sample to [-1, 1] and scales it to int16 range.
func pcm16(s float32) int {
	if s > 1 {
		s = 1
	}
	if s < -1 {
		s = -1
	}
	return int(math.Round(float64(s) * 32767))
}
