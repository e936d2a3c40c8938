// Package sqlite provides a SQLite-backed processing history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Each completed
// end-to-end run is recorded as one row so users (and MCP clients, via
// the history resource) can find previously processed transcripts.
//
// By default, the database is stored at ~/.yt-transcripts/history.db.
// All operations are thread-safe; the store relies on SQLite's own
// locking in WAL mode.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driven"
)

// defaultListLimit bounds List when the caller passes no limit.
const defaultListLimit = 20

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore records processing runs in a SQLite database.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore opens (creating if necessary) the history database in
// dataDir. If dataDir is empty, defaults to ~/.yt-transcripts.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".yt-transcripts")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency between CLI and MCP callers.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &HistoryStore{db: db, path: dbPath}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising schema: %w", err)
	}

	return s, nil
}

// ensureSchema bootstraps the single-table schema. A versioned
// migration setup would be overkill here.
func (s *HistoryStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id         TEXT PRIMARY KEY,
			video_url  TEXT NOT NULL,
			title      TEXT NOT NULL DEFAULT '',
			path       TEXT NOT NULL,
			lines      INTEGER NOT NULL DEFAULT 0,
			words      INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)
	`)
	return err
}

// Record persists one history entry.
func (s *HistoryStore) Record(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: history entry id is required", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, video_url, title, path, lines, words, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.VideoURL, entry.Title, entry.Path, entry.Lines, entry.Words,
		entry.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, video_url, title, path, lines, words, created_at
		FROM history
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			entry     domain.HistoryEntry
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.VideoURL, &entry.Title, &entry.Path,
			&entry.Lines, &entry.Words, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
