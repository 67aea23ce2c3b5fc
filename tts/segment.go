// Package tts drives text-to-speech synthesis over chunked book text.
package tts

// Segment is one run of audio samples in the output stream: either
// synthesized speech for part of a chunk or the silence gap inserted
// after a chunk. Segments are produced and consumed strictly in order.
type Segment struct {
	Samples []float32
	Silence bool
	Chunk   int // index of the chunk this segment belongs to
}
