package services

import (
	"context"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/ports/driven"
)

// mockDownloader is a mock implementation of driven.CaptionDownloader.
type mockDownloader struct {
	result    *driven.FetchResult
	err       error
	gotURL    string
	gotLang   string
	cleanedUp bool
}

func (m *mockDownloader) Fetch(_ context.Context, url, language string) (*driven.FetchResult, error) {
	m.gotURL = url
	m.gotLang = language
	if m.err != nil {
		return nil, m.err
	}
	if m.result.Cleanup == nil {
		m.result.Cleanup = func() { m.cleanedUp = true }
	}
	return m.result, nil
}

// mockStore is a mock implementation of driven.TranscriptStore.
type mockStore struct {
	path string
	err  error
	got  driven.SaveRequest
}

func (m *mockStore) Save(_ context.Context, req driven.SaveRequest) (string, error) {
	m.got = req
	if m.err != nil {
		return "", m.err
	}
	return m.path, nil
}

// mockHistory is a mock implementation of driven.HistoryStore.
type mockHistory struct {
	entries   []domain.HistoryEntry
	recordErr error
	listErr   error
}

func (m *mockHistory) Record(_ context.Context, entry domain.HistoryEntry) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockHistory) List(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *mockHistory) Close() error { return nil }
