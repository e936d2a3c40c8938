package driven

import (
	"context"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
)

// HistoryStore records completed processing runs.
type HistoryStore interface {
	// Record persists one history entry.
	Record(ctx context.Context, entry domain.HistoryEntry) error

	// List returns the most recent entries, newest first. A limit of 0
	// applies the store default.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Close releases the underlying storage.
	Close() error
}
