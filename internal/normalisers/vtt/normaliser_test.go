package vtt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StructuralLinesRejected(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"header", "WEBVTT"},
		{"header with suffix", "WEBVTT - This file has cues"},
		{"kind metadata", "Kind: captions"},
		{"language metadata", "Language: en"},
		{"positioned cue", "00:00:01.000 --> 00:00:02.000 align:start position:0%"},
		{"bare timing cue", "00:00:01.000 --> 00:00:02.000"},
		{"cue index", "1"},
		{"long cue index", "1042"},
		{"bare timestamp", "00:00:03.120"},
		{"blank", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Normalize(tt.line))
		})
	}
}

func TestNormalize_StripsInlineMarkup(t *testing.T) {
	raw := "so<00:00:01.040><c> let's</c><00:00:01.199><c> get</c><00:00:01.520><c> started</c>"

	got := Normalize(raw)

	require.Len(t, got, 1)
	assert.Equal(t, "so let's get started", got[0])
	assert.NotContains(t, got[0], "<")
	assert.NotContains(t, got[0], ">")
}

func TestNormalize_MarkupOnlyLineDiscarded(t *testing.T) {
	assert.Empty(t, Normalize("<c></c> <00:00:01.000>"))
}

func TestNormalize_DecodesEntities(t *testing.T) {
	got := Normalize("It&#39;s &amp; working")

	require.Len(t, got, 1)
	assert.Equal(t, "It's & working", got[0])
}

func TestNormalize_Deduplicates(t *testing.T) {
	raw := strings.Join([]string{
		"WEBVTT",
		"",
		"00:00:01.000 --> 00:00:03.000",
		"hello world",
		"",
		"00:00:03.000 --> 00:00:05.000",
		"hello world",
		"",
		"00:00:05.000 --> 00:00:07.000",
		"goodbye",
	}, "\n")

	got := Normalize(raw)

	assert.Equal(t, []string{"hello world", "goodbye"}, got)
}

func TestNormalize_EndToEnd(t *testing.T) {
	raw := strings.Join([]string{
		"WEBVTT",
		"Kind: captions",
		"Language: en",
		"",
		"00:00:00.000 --> 00:00:02.000 align:start position:0%",
		"welcome<00:00:01.000><c> back</c><00:00:01.500><c> everyone</c>",
		"",
		"00:00:02.000 --> 00:00:04.000",
		"today<00:00:02.500><c> we</c><00:00:03.000><c> build</c>",
		"",
		"00:00:04.000 --> 00:00:06.000 align:start position:0%",
		"welcome<00:00:04.500><c> back</c><00:00:05.000><c> everyone</c>",
	}, "\n")

	got := Normalize(raw)

	require.Equal(t, []string{"welcome back everyone", "today we build"}, got)

	stats := Stats(got)
	assert.Equal(t, 2, stats.TotalLines)
	assert.Equal(t, 6, stats.TotalWords)
	assert.Equal(t, len("welcome back everyone")+len("today we build"), stats.TotalCharacters)
	assert.Equal(t, 3.0, stats.AverageWordsPerLine)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := strings.Join([]string{
		"WEBVTT",
		"",
		"00:00:01.000 --> 00:00:02.000",
		"first<00:00:01.200><c> line</c>",
		"",
		"00:00:02.000 --> 00:00:03.000",
		"second line",
	}, "\n")

	first := Normalize(raw)
	require.Equal(t, []string{"first line", "second line"}, first)

	// Re-wrap the cleaned output in trivial single-cue blocks and clean
	// again; the result must not change.
	var rewrapped strings.Builder
	rewrapped.WriteString("WEBVTT\n\n")
	for _, line := range first {
		rewrapped.WriteString("00:00:01.000 --> 00:00:02.000\n")
		rewrapped.WriteString(line + "\n\n")
	}

	second := Normalize(rewrapped.String())
	assert.Equal(t, first, second)
}

func TestNormalize_MalformedLinesKept(t *testing.T) {
	// Unrecognised lines degrade to plain text rather than failing.
	got := Normalize("not a cue, just text\n-- stray dashes --")

	assert.Equal(t, []string{"not a cue, just text", "-- stray dashes --"}, got)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("\n\n\n"))
}

func TestNormalizeFile(t *testing.T) {
	t.Run("reads and normalises", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "captions.vtt")
		content := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nhello there\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		got, err := NormalizeFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello there"}, got)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		_, err := NormalizeFile(filepath.Join(t.TempDir(), "missing.vtt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading caption file")
	})
}

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"apostrophe numeric", "It&#39;s fine", "It's fine"},
		{"ampersand", "salt &amp; pepper", "salt & pepper"},
		{"angle brackets", "&lt;laughs&gt;", "<laughs>"},
		{"quote", "&quot;sure&quot;", `"sure"`},
		{"apos named", "don&apos;t", "don't"},
		{"nbsp", "one&nbsp;two", "one two"},
		{"double escaped decodes once", "&amp;#39;", "&#39;"},
		{"supplementary plane", "&#128512;", "\U0001F600"},
		{"invalid reference untouched", "&#99999999;", "&#99999999;"},
		{"no entities", "plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeEntities(tt.input))
		})
	}
}
