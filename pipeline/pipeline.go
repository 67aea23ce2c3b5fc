// Package pipeline runs the end-to-end ebook to audiobook conversion:
// extract, normalize, chunk, synthesize, assemble. Execution is strictly
// sequential; every stage completes before the next starts, and the
// first error aborts the run before any output file is written.
package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/WLojek/ebook-to-audiobook-converter/extract"
	"github.com/WLojek/ebook-to-audiobook-converter/internal/cache"
	"github.com/WLojek/ebook-to-audiobook-converter/tts"
	"github.com/WLojek/ebook-to-audiobook-converter/tts/audio"
	"github.com/WLojek/ebook-to-audiobook-converter/tts/engines"
	"github.com/WLojek/ebook-to-audiobook-converter/tts/engines/kokoro"
	"github.com/WLojek/ebook-to-audiobook-converter/tts/engines/mock"
)

// Request describes one conversion run.
type Request struct {
	Input  string
	Output string
	Play   bool
	Config tts.Config
}

// Run converts Request.Input into a narrated WAV file at Request.Output.
func Run(req Request) error {
	log.Info("extracting text", "input", req.Input)
	raw, err := extract.Text(req.Input)
	if err != nil {
		return err
	}

	text := extract.Normalize(raw)
	log.Info("extracted text", "characters", len(text))

	chunks := tts.SplitText(text, req.Config.ChunkSize)
	log.Info("split text", "chunks", len(chunks), "chunk_size", req.Config.ChunkSize)

	engine, err := buildEngine(req.Config)
	if err != nil {
		return err
	}
	defer engine.Shutdown()

	synth := tts.NewSynthesizer(engine, tts.Options{
		Voice:      req.Config.Voice,
		Lang:       req.Config.Lang,
		SampleRate: req.Config.SampleRate,
		Speed:      req.Config.Speed,
		MaxChunks:  req.Config.MaxChunks,
	})

	if req.Config.CacheEnabled {
		store, err := cache.NewDisk(req.Config.CacheDir)
		if err != nil {
			return err
		}
		synth = synth.WithCache(store)
		log.Debug("chunk cache enabled", "dir", req.Config.CacheDir)
	}

	segments, err := synth.Run(chunks)
	if err != nil {
		return err
	}

	samples := audio.Concat(segments)
	if err := audio.WriteWAV(req.Output, samples, req.Config.SampleRate); err != nil {
		return err
	}
	log.Info("audio saved", "path", req.Output, "samples", len(samples))

	if req.Play {
		player, err := audio.NewPlayer(req.Config.SampleRate)
		if err != nil {
			return err
		}
		log.Info("playing preview")
		return player.Play(samples)
	}
	return nil
}

// buildEngine selects the engine implementation named in the config.
func buildEngine(cfg tts.Config) (engines.Engine, error) {
	switch cfg.Engine {
	case "kokoro":
		return kokoro.New(kokoro.Config{
			Binary:     cfg.KokoroBinary,
			SampleRate: cfg.SampleRate,
		}), nil
	case "mock":
		return mock.New(), nil
	default:
		return nil, fmt.Errorf("unknown TTS engine %q", cfg.Engine)
	}
}
