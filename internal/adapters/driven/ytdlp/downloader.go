// Package ytdlp implements caption acquisition by shelling out to the
// yt-dlp binary. It downloads the subtitle track only (no media),
// parses the metadata yt-dlp prints, and hands the produced .vtt file
// back to the core.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driven"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/logger"
)

// Ensure Downloader implements the interface.
var _ driven.CaptionDownloader = (*Downloader)(nil)

// Config holds settings for the yt-dlp downloader.
type Config struct {
	// BinaryPath is the path to the yt-dlp binary. If empty, the binary
	// is located via exec.LookPath.
	BinaryPath string

	// RequestInterval is the minimum time between yt-dlp invocations,
	// keeping repeated tool calls from hammering the video platform.
	// Defaults to 2 seconds.
	RequestInterval time.Duration
}

// Downloader fetches caption tracks via yt-dlp.
type Downloader struct {
	cfg     Config
	limiter *rate.Limiter
}

// New creates a downloader. The yt-dlp binary is resolved from
// Config.BinaryPath or PATH; a missing binary is reported on Fetch,
// not here, so construction never fails.
func New(cfg Config) *Downloader {
	if cfg.BinaryPath == "" {
		if p, err := exec.LookPath("yt-dlp"); err == nil {
			cfg.BinaryPath = p
		}
	}
	if cfg.RequestInterval <= 0 {
		cfg.RequestInterval = 2 * time.Second
	}

	return &Downloader{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
	}
}

// metadata is the subset of yt-dlp --print-json output we parse.
type metadata struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Channel  string  `json:"channel"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
}

// Fetch downloads the caption track for url into a temp directory and
// returns its location. The returned Cleanup releases the temp files.
func (d *Downloader) Fetch(ctx context.Context, url, language string) (*driven.FetchResult, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}
	if d.cfg.BinaryPath == "" {
		return nil, fmt.Errorf("%w: install yt-dlp or set downloader.binary_path", domain.ErrDownloaderUnavailable)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "yt-transcripts-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	meta, err := d.run(ctx, url, language, tmpDir)
	if err != nil {
		cleanup()
		return nil, err
	}

	captionPath, err := findCaptionFile(tmpDir)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("%w for %q (language %s)", domain.ErrNoCaptions, url, language)
	}

	channel := meta.Channel
	if channel == "" {
		channel = meta.Uploader
	}

	return &driven.FetchResult{
		Caption: domain.CaptionFile{
			Path:     captionPath,
			VideoID:  meta.ID,
			Title:    meta.Title,
			Channel:  channel,
			Language: language,
			Duration: meta.Duration,
		},
		Cleanup: cleanup,
	}, nil
}

// run executes yt-dlp and returns the parsed metadata.
func (d *Downloader) run(ctx context.Context, url, language, tmpDir string) (*metadata, error) {
	args := []string{
		"--write-sub",
		"--write-auto-sub",
		"--sub-lang", language,
		"--skip-download",
		"--print-json",
		"--no-warnings",
		"-o", filepath.Join(tmpDir, "%(id)s"),
		url,
	}

	logger.Info("running yt-dlp for %s (language %s)", url, language)

	cmd := exec.CommandContext(ctx, d.cfg.BinaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp: %w: %s", err, excerpt(stderr.String()))
	}

	var meta metadata
	if err := json.Unmarshal(stdout.Bytes(), &meta); err != nil {
		return nil, fmt.Errorf("parsing yt-dlp output: %w", err)
	}

	return &meta, nil
}

// findCaptionFile locates the .vtt file yt-dlp produced. With both
// --write-sub and --write-auto-sub, manual subtitles take precedence
// when available; sorting keeps the pick deterministic otherwise.
func findCaptionFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading temp dir: %w", err)
	}

	var vtt []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".vtt") {
			vtt = append(vtt, e.Name())
		}
	}
	if len(vtt) == 0 {
		return "", domain.ErrNotFound
	}

	sort.Strings(vtt)
	return filepath.Join(dir, vtt[0]), nil
}

// excerpt truncates yt-dlp stderr for error messages.
func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 500 {
		s = s[:500]
	}
	return s
}
