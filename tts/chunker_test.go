package tts

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		chunkSize int
		expected  []string
	}{
		{
			name:      "sentences split at boundary",
			input:     "Hello world. This is a test. Short.",
			chunkSize: 15,
			expected:  []string{"Hello world.", "This is a test.", "Short."},
		},
		{
			name:      "everything fits in one chunk",
			input:     "Hello world. This is a test. Short.",
			chunkSize: 2000,
			expected:  []string{"Hello world. This is a test. Short."},
		},
		{
			name:      "oversized sentence becomes its own chunk",
			input:     "A very long sentence that exceeds the limit. Ok.",
			chunkSize: 10,
			expected:  []string{"A very long sentence that exceeds the limit.", "Ok."},
		},
		{
			name:      "chunk size one yields one chunk per sentence",
			input:     "One. Two. Three.",
			chunkSize: 1,
			expected:  []string{"One.", "Two.", "Three."},
		},
		{
			name:      "newlines flattened before splitting",
			input:     "First line.\nSecond line.",
			chunkSize: 2000,
			expected:  []string{"First line. Second line."},
		},
		{
			name:      "empty input yields no chunks",
			input:     "",
			chunkSize: 100,
			expected:  nil,
		},
		{
			name:      "periods only yield no chunks",
			input:     "...",
			chunkSize: 100,
			expected:  nil,
		},
		{
			name:      "question marks are not sentence separators",
			input:     "Is this one? Yes it is. Sure!",
			chunkSize: 2000,
			expected:  []string{"Is this one? Yes it is. Sure!."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.input, tt.chunkSize)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitText(%q, %d) = %#v, want %#v", tt.input, tt.chunkSize, got, tt.expected)
			}
		})
	}
}

func TestSplitTextRespectsBound(t *testing.T) {
	input := strings.Repeat("This sentence has some words in it. ", 40)
	const chunkSize = 100

	chunks := SplitText(input, chunkSize)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for i, chunk := range chunks {
		if len(chunk) > chunkSize {
			t.Errorf("chunk %d exceeds size %d: %d characters", i, chunkSize, len(chunk))
		}
	}
}

func TestSplitTextLossless(t *testing.T) {
	input := "Alpha beta. Gamma delta epsilon. Zeta. Eta theta iota kappa."
	for _, chunkSize := range []int{1, 10, 20, 50, 1000} {
		chunks := SplitText(input, chunkSize)
		joined := strings.Join(chunks, " ")
		if joined != input {
			t.Errorf("chunkSize %d: joined chunks %q do not reconstruct %q", chunkSize, joined, input)
		}
	}
}

func TestSplitTextIdempotent(t *testing.T) {
	input := "Hello world. This is a test. Short. Another sentence here. Done."
	for _, chunkSize := range []int{15, 30, 100} {
		first := SplitText(input, chunkSize)
		second := SplitText(strings.Join(first, " "), chunkSize)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("chunkSize %d: re-chunking changed output: %#v vs %#v", chunkSize, first, second)
		}
	}
}
