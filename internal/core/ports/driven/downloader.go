package driven

import (
	"context"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
)

// CaptionDownloader acquires caption tracks for online videos.
// The core never cares how the track was obtained; it receives a file
// path plus whatever metadata the downloader reported.
type CaptionDownloader interface {
	// Fetch downloads the caption track for url in the given language
	// and returns its location. The caller owns cleanup of the returned
	// file's directory via the Cleanup func.
	//
	// Fetch fails with domain.ErrNoCaptions when the video has no
	// caption track in the requested language, and with
	// domain.ErrDownloaderUnavailable when the downloader binary is
	// missing. All failures are acquisition-stage errors.
	Fetch(ctx context.Context, url, language string) (*FetchResult, error)
}

// FetchResult is the outcome of a caption download.
type FetchResult struct {
	// Caption describes the downloaded track and video metadata.
	Caption domain.CaptionFile

	// Cleanup releases temporary files backing Caption.Path.
	// Always non-nil; safe to call multiple times.
	Cleanup func()
}
