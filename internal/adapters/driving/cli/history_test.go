package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
)

func TestHistoryCmd(t *testing.T) {
	t.Run("lists entries", func(t *testing.T) {
		svc := &mockTranscriptService{
			historyEntries: []domain.HistoryEntry{
				{
					Title:     "Intro to Containers",
					Path:      "/out/abc123.txt",
					Lines:     40,
					Words:     320,
					CreatedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
				},
			},
		}
		defer withMockService(svc)()

		out, err := execute(t, "history")

		require.NoError(t, err)
		assert.Contains(t, out, "Intro to Containers")
		assert.Contains(t, out, "/out/abc123.txt (40 lines, 320 words)")
	})

	t.Run("empty history", func(t *testing.T) {
		svc := &mockTranscriptService{}
		defer withMockService(svc)()

		out, err := execute(t, "history")

		require.NoError(t, err)
		assert.Contains(t, out, "No transcripts processed yet.")
	})

	t.Run("falls back to url without title", func(t *testing.T) {
		svc := &mockTranscriptService{
			historyEntries: []domain.HistoryEntry{
				{
					VideoURL:  "https://youtu.be/abc123",
					Path:      "/out/abc123.txt",
					CreatedAt: time.Now(),
				},
			},
		}
		defer withMockService(svc)()

		out, err := execute(t, "history")

		require.NoError(t, err)
		assert.Contains(t, out, "https://youtu.be/abc123")
	})
}
