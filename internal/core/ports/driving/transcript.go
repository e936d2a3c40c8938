package driving

import (
	"context"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
)

// ProcessRequest drives the full download-clean-persist pipeline.
type ProcessRequest struct {
	URL            string
	Language       string
	OutputDir      string
	Filename       string
	IncludeSummary bool
}

// ProcessResult is the outcome of an end-to-end run.
type ProcessResult struct {
	Path     string
	Title    string
	VideoID  string
	Stats    domain.TranscriptStats
	Preview  string
	Keywords []domain.Keyword
}

// DownloadRequest drives acquisition only: the raw caption track is
// copied into the output directory without cleaning.
type DownloadRequest struct {
	URL       string
	Language  string
	OutputDir string
}

// DownloadResult describes the stored raw caption track.
type DownloadResult struct {
	Path    string
	Title   string
	VideoID string
}

// CleanRequest drives cleaning only, from a local caption file or
// inline raw text. Exactly one of Path and RawText should be set.
type CleanRequest struct {
	Path    string
	RawText string

	// Save persists the cleaned text when true.
	Save      bool
	OutputDir string
	Filename  string
}

// CleanResult is the outcome of a cleaning run.
type CleanResult struct {
	Lines []string
	Text  string
	Stats domain.TranscriptStats

	// Path is set when the result was persisted.
	Path string
}

// TranscriptService is the single driving port: every public operation
// of the system, exposed identically over CLI and MCP.
type TranscriptService interface {
	// Process runs the full pipeline for a video URL.
	Process(ctx context.Context, req ProcessRequest) (*ProcessResult, error)

	// Download fetches the raw caption track without cleaning.
	Download(ctx context.Context, req DownloadRequest) (*DownloadResult, error)

	// Clean normalises an already-acquired caption file or raw text.
	Clean(ctx context.Context, req CleanRequest) (*CleanResult, error)

	// History lists recent processing runs, newest first.
	History(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}
