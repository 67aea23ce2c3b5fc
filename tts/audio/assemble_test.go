package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/WLojek/ebook-to-audiobook-converter/tts"
)

func TestConcat(t *testing.T) {
	segments := []tts.Segment{
		{Samples: []float32{1, 2}, Chunk: 0},
		{Samples: []float32{0, 0, 0}, Silence: true, Chunk: 0},
		{Samples: []float32{3}, Chunk: 1},
	}

	got := Concat(segments)
	want := []float32{1, 2, 0, 0, 0, 3}
	if len(got) != len(want) {
		t.Fatalf("Concat length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestConcatEmpty(t *testing.T) {
	if got := Concat(nil); len(got) != 0 {
		t.Errorf("Concat(nil) = %d samples, want 0", len(got))
	}
}

func TestWriteWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []float32{0, 0.25, -0.25, 1, -1, 2, -2}

	if err := WriteWAV(path, samples, 24000); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if dec.SampleRate != 24000 {
		t.Errorf("sample rate = %d, want 24000", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Errorf("channels = %d, want 1", dec.NumChans)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}

	// Out-of-range samples are clamped; in-range samples scale to int16.
	want := []int{0, 8192, -8192, 32767, -32767, 32767, -32767}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestWriteWAVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	err := WriteWAV(path, nil, 24000)
	if !errors.Is(err, ErrNoAudioProduced) {
		t.Fatalf("expected ErrNoAudioProduced, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written for empty input")
	}
}

func TestWriteWAVCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.wav")

	if err := WriteWAV(path, []float32{0.1, 0.2}, 24000); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestWriteWAVUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The parent "directory" is a regular file, so MkdirAll must fail.
	err := WriteWAV(filepath.Join(blocker, "out.wav"), []float32{0.1}, 24000)
	if !errors.Is(err, ErrWriteFailure) {
		t.Errorf("expected ErrWriteFailure, got %v", err)
	}
}
