// Package main provides the entry point for the ebook2audio CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/WLojek/ebook-to-audiobook-converter/pipeline"
	"github.com/WLojek/ebook-to-audiobook-converter/tts"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	inputPath  string
	outputPath string
	playAudio  bool
	debug      bool

	keyword = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).
		Render

	rootCmd = &cobra.Command{
		Use:   "ebook2audio",
		Short: "Convert ebooks into narrated audiobooks",
		Long: fmt.Sprintf(
			"\nConvert an EPUB into a single narrated audio file, %s.",
			keyword("one chunk at a time"),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		Args:             cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: execute,
	}
)

func execute(*cobra.Command, []string) error {
	cfg, err := tts.LoadConfigFromViper()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.CacheEnabled && cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir()
	}

	return pipeline.Run(pipeline.Request{
		Input:  inputPath,
		Output: outputPath,
		Play:   playAudio,
		Config: cfg,
	})
}

// defaultCacheDir resolves the per-user cache location, falling back to a
// directory next to the output when the platform dirs are unavailable.
func defaultCacheDir() string {
	scope := gap.NewScope(gap.User, "ebook2audio")
	if dir, err := scope.CacheDir(); err == nil {
		return filepath.Join(dir, "chunks")
	}
	return filepath.Join("audio_output", ".cache")
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "ebook2audio")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		return
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "ebook2audio")}, dirs...)
	}
	if c := os.Getenv("EBOOK2AUDIO_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("ebook2audio")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("ebook2audio")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
	}
}

func init() {
	// A .env file in the working directory overrides nothing that is
	// already set in the environment.
	_ = godotenv.Load()

	tryLoadConfigFromDefaultPlaces()

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the input ebook file")
	_ = rootCmd.MarkFlagRequired("input")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", filepath.Join("audio_output", "output.wav"), "path to the output audio file")
	rootCmd.Flags().BoolVar(&playAudio, "play", false, "play the generated audio when done")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringP("voice", "v", "af_heart", "voice to use for TTS")
	rootCmd.Flags().IntP("chunk-size", "c", 2000, "maximum size of text chunks in characters")
	rootCmd.Flags().Int("sample-rate", 24000, "sample rate for audio output in Hz")
	rootCmd.Flags().StringP("lang", "l", "a", "language code ('a' American, 'b' British English)")
	rootCmd.Flags().IntP("max-chunks", "m", 0, "maximum number of chunks to process, 0 for unlimited")
	rootCmd.Flags().Float64("speed", 1.0, "speech rate multiplier")
	rootCmd.Flags().String("engine", "kokoro", "TTS engine to use (kokoro or mock)")
	rootCmd.Flags().Bool("cache", false, "cache synthesized chunks on disk")
	rootCmd.Flags().String("cache-dir", "", "chunk cache directory")

	for _, name := range []string{
		"voice", "chunk-size", "sample-rate", "lang", "max-chunks",
		"speed", "engine", "cache", "cache-dir",
	} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
