// Package vtt normalises WebVTT caption tracks into plain readable text.
//
// Auto-generated caption files carry a lot of non-content structure:
// the WEBVTT header, Kind/Language metadata, timing cues with layout
// hints, bare cue sequence numbers, and word-level <00:00:01.000> karaoke
// tags embedded mid-line. Rolling captions additionally re-emit the same
// sentence across consecutive cues. Normalisation strips all of that and
// returns the unique caption lines in first-seen order.
package vtt

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	// timingCueRe matches a bare cue timing line,
	// e.g. "00:00:01.000 --> 00:00:02.000".
	timingCueRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}\s*-->\s*\d{2}:\d{2}:\d{2}\.\d{3}\s*$`)

	// inlineTagRe matches inline timing/styling spans such as
	// <00:00:01.000>, <c>, </c>, <i> embedded within a text line.
	inlineTagRe = regexp.MustCompile(`<[^>]*>`)

	// cueIndexRe matches standalone numeric cue identifiers.
	cueIndexRe = regexp.MustCompile(`^\d+$`)

	// leadingTimestampRe matches lines that open with a bare timestamp,
	// a structural line the format may emit without full cue syntax.
	leadingTimestampRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)

	// spaceRunRe matches runs of whitespace left behind by tag stripping.
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// Normalize converts raw WebVTT content into deduplicated, markup-free,
// entity-decoded caption lines in first-occurrence order.
//
// Classification is per line, mutually exclusive, first match wins:
// headers and metadata are dropped, timing cues (with or without
// position hints) are dropped, inline markup is stripped from content
// lines, and lines that are purely a cue index or a bare timestamp are
// dropped. Whatever survives is entity-decoded and kept.
//
// Normalize is total: malformed lines degrade to plain text rather than
// failing, so degenerate input yields an empty result, never an error.
func Normalize(raw string) []string {
	var cleaned []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isHeaderLine(line) {
			continue
		}

		// Timing cue carrying layout hints, e.g.
		// "00:00:01.000 --> 00:00:02.000 align:start position:0%".
		if isPositionedCue(line) {
			continue
		}

		if timingCueRe.MatchString(line) {
			continue
		}

		// Content candidate.
		if inlineTagRe.MatchString(line) {
			line = stripInlineTags(line)
			if line == "" {
				continue
			}
		} else if cueIndexRe.MatchString(line) || leadingTimestampRe.MatchString(line) {
			continue
		}

		line = DecodeEntities(line)
		if line == "" {
			continue
		}

		cleaned = append(cleaned, line)
	}

	return dedupe(cleaned)
}

// NormalizeFile reads the caption file at path and normalises its
// content. Reading is the only failure mode; parsing never fails.
func NormalizeFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading caption file: %w", err)
	}
	return Normalize(string(raw)), nil
}

// isHeaderLine reports whether the line is a format-level header:
// the WEBVTT marker or a Kind:/Language: metadata prefix.
func isHeaderLine(line string) bool {
	return strings.HasPrefix(line, "WEBVTT") ||
		strings.HasPrefix(line, "Kind:") ||
		strings.HasPrefix(line, "Language:")
}

// isPositionedCue reports whether the line is a timing cue that carries
// position or alignment metadata.
func isPositionedCue(line string) bool {
	if !strings.Contains(line, "-->") {
		return false
	}
	return strings.Contains(line, "align:") || strings.Contains(line, "position:")
}

// stripInlineTags removes every <...> span, collapses the resulting
// whitespace runs to single spaces, and trims.
func stripInlineTags(line string) string {
	line = inlineTagRe.ReplaceAllString(line, "")
	line = spaceRunRe.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

// dedupe retains the first occurrence of each distinct line, preserving
// order. Exact string equality; rolling captions re-emit identical
// sentences across consecutive cues and this pass absorbs them.
func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	var out []string

	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}

	return out
}
