package tts

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Config carries every knob of the conversion pipeline. Defaults follow
// the struct tags and may be overridden by EBOOK2AUDIO_* environment
// variables, the config file, and command line flags, in that order.
type Config struct {
	Engine     string  `env:"EBOOK2AUDIO_ENGINE" envDefault:"kokoro"`
	Voice      string  `env:"EBOOK2AUDIO_VOICE" envDefault:"af_heart"`
	Lang       string  `env:"EBOOK2AUDIO_LANG" envDefault:"a"`
	ChunkSize  int     `env:"EBOOK2AUDIO_CHUNK_SIZE" envDefault:"2000"`
	SampleRate int     `env:"EBOOK2AUDIO_SAMPLE_RATE" envDefault:"24000"`
	Speed      float64 `env:"EBOOK2AUDIO_SPEED" envDefault:"1.0"`

	// MaxChunks limits how many chunks are synthesized; 0 means
	// unlimited. Being capped is a truncation, not a failure.
	MaxChunks int `env:"EBOOK2AUDIO_MAX_CHUNKS" envDefault:"0"`

	KokoroBinary string `env:"EBOOK2AUDIO_KOKORO_BINARY" envDefault:"kokoro"`

	CacheEnabled bool   `env:"EBOOK2AUDIO_CACHE" envDefault:"false"`
	CacheDir     string `env:"EBOOK2AUDIO_CACHE_DIR"`
}

// DefaultConfig returns a Config with struct-tag defaults applied and any
// EBOOK2AUDIO_* environment variables layered on top.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromViper overlays viper-managed settings (config file keys
// and bound flags) on top of the environment defaults.
func LoadConfigFromViper() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return cfg, err
	}

	if viper.IsSet("engine") {
		cfg.Engine = viper.GetString("engine")
	}
	if viper.IsSet("voice") {
		cfg.Voice = viper.GetString("voice")
	}
	if viper.IsSet("lang") {
		cfg.Lang = viper.GetString("lang")
	}
	if viper.IsSet("chunk-size") {
		cfg.ChunkSize = viper.GetInt("chunk-size")
	}
	if viper.IsSet("sample-rate") {
		cfg.SampleRate = viper.GetInt("sample-rate")
	}
	if viper.IsSet("speed") {
		cfg.Speed = viper.GetFloat64("speed")
	}
	if viper.IsSet("max-chunks") {
		cfg.MaxChunks = viper.GetInt("max-chunks")
	}
	if viper.IsSet("kokoro.binary") {
		cfg.KokoroBinary = viper.GetString("kokoro.binary")
	}
	if viper.IsSet("cache") {
		cfg.CacheEnabled = viper.GetBool("cache")
	}
	if viper.IsSet("cache-dir") {
		cfg.CacheDir = viper.GetString("cache-dir")
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run
// with.
func (c Config) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.SampleRate < 1 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	}
	if c.MaxChunks < 0 {
		return fmt.Errorf("max chunks must not be negative, got %d", c.MaxChunks)
	}
	return nil
}
