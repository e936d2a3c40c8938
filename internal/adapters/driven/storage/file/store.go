// Package file implements transcript persistence on the local
// filesystem. Each transcript is written as a plain text file in the
// configured output directory, with a timestamped default filename.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driven"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TranscriptStore = (*Store)(nil)

// unsafeFilenameRe matches characters replaced in derived filenames.
var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Store writes transcripts to disk.
type Store struct {
	// now is the clock for timestamped filenames; overridable in tests.
	now func() time.Time
}

// NewStore creates a filesystem transcript store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Save writes the transcript and returns the final stored path.
func (s *Store) Save(ctx context.Context, req driven.SaveRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Dir == "" {
		return "", fmt.Errorf("%w: output directory is required", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(req.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := req.Filename
	if filename == "" {
		filename = s.defaultFilename(req.VideoID)
	}
	filename = sanitizeFilename(filename)

	path := filepath.Join(req.Dir, filename)
	if err := os.WriteFile(path, []byte(req.Content), 0o644); err != nil {
		return "", fmt.Errorf("writing transcript: %w", err)
	}

	logger.Debug("saved transcript to %s (%d bytes)", path, len(req.Content))
	return path, nil
}

// defaultFilename derives "<videoID>-20060102-150405.txt", falling back
// to "transcript" when no video ID is known.
func (s *Store) defaultFilename(videoID string) string {
	base := videoID
	if base == "" {
		base = "transcript"
	}
	return fmt.Sprintf("%s-%s.txt", base, s.now().Format("20060102-150405"))
}

// sanitizeFilename replaces characters that are unsafe in filenames.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	return unsafeFilenameRe.ReplaceAllString(name, "_")
}
