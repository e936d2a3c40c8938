// Package summary produces keyword-frequency summaries of transcript
// text. It is intentionally simple: lowercase, strip punctuation, drop
// stopwords and short tokens, count, and return the top entries.
package summary

import (
	"sort"
	"strings"
	"unicode"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
)

// stopwords are common English words excluded from keyword counts.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "his": {}, "has": {}, "had": {}, "how": {},
	"its": {}, "who": {}, "this": {}, "that": {}, "with": {}, "have": {},
	"from": {}, "they": {}, "been": {}, "were": {}, "will": {}, "would": {},
	"there": {}, "their": {}, "what": {}, "about": {}, "which": {},
	"when": {}, "your": {}, "just": {}, "like": {}, "going": {},
	"really": {}, "because": {}, "some": {}, "them": {}, "then": {},
	"than": {}, "into": {}, "over": {}, "also": {}, "here": {},
}

// minTokenLength filters out short filler tokens ("a", "is", "so").
const minTokenLength = 3

// Keywords returns the n most frequent meaningful words in text,
// ordered by descending count with alphabetical tie-breaking so the
// result is deterministic. Returns nil for empty input or n <= 0.
func Keywords(text string, n int) []domain.Keyword {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, token := range strings.Fields(text) {
		word := normalizeToken(token)
		if len(word) < minTokenLength {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		counts[word]++
	}

	if len(counts) == 0 {
		return nil
	}

	keywords := make([]domain.Keyword, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, domain.Keyword{Word: word, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

// normalizeToken lowercases the token and trims surrounding
// punctuation, keeping internal apostrophes ("don't" stays one word).
func normalizeToken(token string) string {
	token = strings.ToLower(token)
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
