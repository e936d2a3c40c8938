// Package file loads and saves the application configuration as a TOML
// file. The default location is ~/.yt-transcripts/config.toml; a
// missing file yields the defaults rather than an error.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full application configuration. The output directory
// is an explicit value injected into the persistence layer; there is no
// process-wide mutable default.
type Config struct {
	// OutputDir is where transcripts are written.
	OutputDir string `toml:"output_dir"`

	// Language is the default subtitle language code.
	Language string `toml:"language"`

	// PreviewChars bounds the text preview returned by tools.
	PreviewChars int `toml:"preview_chars"`

	// KeywordCount is the number of keywords in generated summaries.
	KeywordCount int `toml:"keyword_count"`

	// DataDir holds the processing history database.
	DataDir string `toml:"data_dir"`

	Downloader DownloaderConfig `toml:"downloader"`
}

// DownloaderConfig configures the yt-dlp acquisition layer.
type DownloaderConfig struct {
	// BinaryPath overrides PATH lookup of the yt-dlp binary.
	BinaryPath string `toml:"binary_path"`

	// RequestIntervalSeconds is the minimum spacing between yt-dlp
	// invocations.
	RequestIntervalSeconds int `toml:"request_interval_seconds"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return Config{
		OutputDir:    filepath.Join(home, "transcripts"),
		Language:     "en",
		PreviewChars: 300,
		KeywordCount: 10,
		DataDir:      filepath.Join(home, ".yt-transcripts"),
		Downloader: DownloaderConfig{
			RequestIntervalSeconds: 2,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".yt-transcripts", "config.toml")
}

// Load reads the configuration at path. A missing file returns the
// defaults; values present in the file override defaults field by field.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
