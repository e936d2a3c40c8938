package vtt

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MearsIT/youtube-transcripts-mcp/internal/core/domain"
)

// Join concatenates cleaned caption lines into a single paragraph.
// The default separator is a single space; pass an explicit separator
// to override it.
func Join(lines []string, sep ...string) string {
	separator := " "
	if len(sep) > 0 {
		separator = sep[0]
	}
	return strings.Join(lines, separator)
}

// Stats computes line, word, and character counts over cleaned caption
// lines. Words are whitespace-delimited tokens; characters are counted
// as runes. Average words per line is rounded to two decimal places and
// defined as 0 for an empty transcript.
func Stats(lines []string) domain.TranscriptStats {
	s := domain.TranscriptStats{TotalLines: len(lines)}

	for _, line := range lines {
		s.TotalWords += len(strings.Fields(line))
		s.TotalCharacters += utf8.RuneCountInString(line)
	}

	if s.TotalLines > 0 {
		avg := float64(s.TotalWords) / float64(s.TotalLines)
		s.AverageWordsPerLine = math.Round(avg*100) / 100
	}

	return s
}
