package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
)

func TestKeywords(t *testing.T) {
	t.Run("counts by frequency", func(t *testing.T) {
		text := "kubernetes cluster kubernetes deployment cluster kubernetes"

		got := Keywords(text, 2)

		require.Len(t, got, 2)
		assert.Equal(t, domain.Keyword{Word: "kubernetes", Count: 3}, got[0])
		assert.Equal(t, domain.Keyword{Word: "cluster", Count: 2}, got[1])
	})

	t.Run("ties break alphabetically", func(t *testing.T) {
		got := Keywords("zebra apple zebra apple", 2)

		require.Len(t, got, 2)
		assert.Equal(t, "apple", got[0].Word)
		assert.Equal(t, "zebra", got[1].Word)
	})

	t.Run("drops stopwords and short tokens", func(t *testing.T) {
		got := Keywords("the and for a is so database database", 10)

		require.Len(t, got, 1)
		assert.Equal(t, domain.Keyword{Word: "database", Count: 2}, got[0])
	})

	t.Run("strips punctuation and lowercases", func(t *testing.T) {
		got := Keywords("Docker, docker! DOCKER.", 1)

		require.Len(t, got, 1)
		assert.Equal(t, domain.Keyword{Word: "docker", Count: 3}, got[0])
	})

	t.Run("keeps internal apostrophes", func(t *testing.T) {
		got := Keywords("don't don't stop", 5)

		require.Len(t, got, 2)
		assert.Equal(t, domain.Keyword{Word: "don't", Count: 2}, got[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Keywords("", 5))
		assert.Nil(t, Keywords("some words here maybe", 0))
	})
}
