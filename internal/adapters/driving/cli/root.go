// Package cli implements the cobra command tree. Each command drives
// the transcript service through the driving port; adapters are wired
// lazily so commands that never touch the pipeline (version) do not
// open databases or resolve binaries.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/MearsIT/youtube-transcripts-mcp/internal/adapters/driven/config/file"
	storagefile "github.com/MearsIT/youtube-transcripts-mcp/internal/adapters/driven/storage/file"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/adapters/driven/storage/sqlite"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/adapters/driven/ytdlp"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driven"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driving"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/services"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose    bool
	flagConfigPath string
)

// transcriptService is the wired driving port. Tests inject a mock
// here; initServices leaves an existing value alone.
var transcriptService driving.TranscriptService

// appConfig is the loaded configuration, available to all commands
// after initServices.
var appConfig configfile.Config

var rootCmd = &cobra.Command{
	Use:   "yt-transcripts",
	Short: "Download and clean video caption tracks into readable transcripts",
	Long: `yt-transcripts downloads caption tracks for online videos via yt-dlp,
cleans the WebVTT file into deduplicated plain text, and saves the
transcript. The same operations are available to AI assistants through
the built-in MCP server (see "yt-transcripts mcp serve").`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path (default ~/.yt-transcripts/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices loads configuration and wires the adapters into the
// transcript service. Idempotent; a service injected by tests wins.
func initServices() error {
	if transcriptService != nil {
		return nil
	}

	path := flagConfigPath
	if path == "" {
		path = configfile.DefaultPath()
	}

	cfg, err := configfile.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg

	downloader := ytdlp.New(ytdlp.Config{
		BinaryPath:      cfg.Downloader.BinaryPath,
		RequestInterval: time.Duration(cfg.Downloader.RequestIntervalSeconds) * time.Second,
	})

	// History is a convenience; the pipeline works without it.
	var history driven.HistoryStore
	if store, err := sqlite.NewHistoryStore(cfg.DataDir); err != nil {
		logger.Warn("opening history store: %v", err)
	} else {
		history = store
	}

	transcriptService = services.NewTranscriptService(
		downloader,
		storagefile.NewStore(),
		history,
		services.Defaults{
			Language:     cfg.Language,
			OutputDir:    cfg.OutputDir,
			PreviewChars: cfg.PreviewChars,
			KeywordCount: cfg.KeywordCount,
		},
	)
	return nil
}
