package tts

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/WLojek/ebook-to-audiobook-converter/tts/engines"
)

// pauseSeconds is the fixed silence inserted after every chunk's speech.
const pauseSeconds = 0.5

// Options configure a synthesis run.
type Options struct {
	Voice      string
	Lang       string
	SampleRate int
	Speed      float64 // speech rate multiplier; 0 is treated as 1.0
	MaxChunks  int     // synthesize only the first N chunks; <= 0 means all
}

// Cache stores synthesized samples keyed by a request fingerprint. A nil
// cache disables caching entirely.
type Cache interface {
	Get(key string) ([]float32, bool)
	Put(key string, samples []float32) error
}

// Synthesizer drives an engine over an ordered chunk sequence and
// produces the ordered audio segment stream. It holds the only long-lived
// resource of a run, the initialized engine.
type Synthesizer struct {
	engine engines.Engine
	cache  Cache
	opts   Options
}

// NewSynthesizer builds a Synthesizer around the given engine.
func NewSynthesizer(engine engines.Engine, opts Options) *Synthesizer {
	if opts.Speed == 0 {
		opts.Speed = 1.0
	}
	return &Synthesizer{engine: engine, opts: opts}
}

// WithCache attaches a chunk audio cache and returns the synthesizer.
func (s *Synthesizer) WithCache(c Cache) *Synthesizer {
	s.cache = c
	return s
}

// Run synthesizes every chunk in order. Speech segments for a chunk are
// appended in engine yield order, followed by one silence segment of
// round(0.5 x sample rate) samples. The first failing chunk aborts the
// whole run: no segments are returned, and the error identifies the chunk.
func (s *Synthesizer) Run(chunks []string) ([]Segment, error) {
	if !s.engine.IsAvailable() {
		return nil, ErrEngineNotAvailable
	}
	if err := s.engine.Initialize(s.opts.Lang); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineNotAvailable, err)
	}

	if s.opts.MaxChunks > 0 && len(chunks) > s.opts.MaxChunks {
		log.Info("limiting processing", "max_chunks", s.opts.MaxChunks, "total", len(chunks))
		chunks = chunks[:s.opts.MaxChunks]
	}

	pause := silence(s.opts.SampleRate)

	var segments []Segment
	for i, chunk := range chunks {
		log.Info("synthesizing chunk", "index", i+1, "total", len(chunks), "text", preview(chunk))

		runs, err := s.chunkAudio(chunk)
		if err != nil {
			return nil, &SynthesisError{Chunk: i, Preview: preview(chunk), Err: err}
		}
		for _, samples := range runs {
			segments = append(segments, Segment{Samples: samples, Chunk: i})
		}
		segments = append(segments, Segment{Samples: pause, Silence: true, Chunk: i})
	}

	return segments, nil
}

// chunkAudio returns the ordered sample runs for one chunk, consulting
// the cache when one is attached. Cached chunks come back as a single
// run; the downstream concatenation is identical either way.
func (s *Synthesizer) chunkAudio(chunk string) ([][]float32, error) {
	var key string
	if s.cache != nil {
		key = s.cacheKey(chunk)
		if samples, ok := s.cache.Get(key); ok {
			log.Debug("chunk cache hit", "key", key)
			return [][]float32{samples}, nil
		}
	}

	utterances, err := s.engine.Synthesize(chunk, s.opts.Voice, s.opts.Speed)
	if err != nil {
		return nil, err
	}

	runs := make([][]float32, 0, len(utterances))
	for _, u := range utterances {
		runs = append(runs, u.Samples)
	}

	if s.cache != nil {
		var all []float32
		for _, r := range runs {
			all = append(all, r...)
		}
		if err := s.cache.Put(key, all); err != nil {
			log.Warn("chunk cache write failed", "err", err)
		}
	}

	return runs, nil
}

// cacheKey fingerprints a synthesis request. Any input that changes the
// audio must be part of the key.
func (s *Synthesizer) cacheKey(chunk string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%g|%d", chunk, s.opts.Voice, s.opts.Lang, s.opts.Speed, s.opts.SampleRate)
	return hex.EncodeToString(h.Sum(nil))
}

// silence builds the fixed inter-chunk pause at the given sample rate.
func silence(sampleRate int) []float32 {
	n := int(math.Round(pauseSeconds * float64(sampleRate)))
	return make([]float32, n)
}
