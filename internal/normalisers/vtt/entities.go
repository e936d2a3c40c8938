package vtt

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// numericEntityRe matches decimal character references like &#39;.
var numericEntityRe = regexp.MustCompile(`&#(\d+);`)

// namedEntityReplacer covers the named entities caption tracks actually
// emit. The table is deliberately small; a general HTML entity library
// would be overkill for this format. &nbsp; maps to a regular space
// since the output is plain text with no layout to preserve.
var namedEntityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

// DecodeEntities replaces decimal character references and the named
// entities from the fixed table with their literal characters. Numeric
// references decode before named ones so that a double-escaped
// sequence like &amp;#39; decodes exactly once. Decoding yields full
// code points, so supplementary-plane references (emoji and the like)
// come out intact.
func DecodeEntities(s string) string {
	s = decodeNumericEntities(s)
	return namedEntityReplacer.Replace(s)
}

func decodeNumericEntities(s string) string {
	if !strings.Contains(s, "&#") {
		return s
	}

	return numericEntityRe.ReplaceAllStringFunc(s, func(ref string) string {
		n, err := strconv.Atoi(ref[2 : len(ref)-1])
		if err != nil || n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
			// Leave unrecognisable references as-is.
			return ref
		}
		return string(rune(n))
	})
}
