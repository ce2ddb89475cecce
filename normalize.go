package scicalc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// glyphs are the display runes the calculator shows and their canonical
// spellings.
var glyphs = map[rune]string{
	'√': "sqrt(",
	'^': "**",
	'÷': "/",
	'×': "*",
}

// aliases are alternate names for table functions. They are replaced only as
// whole identifiers.
var aliases = map[string]string{
	"ln": "log",
}

// Normalize rewrites calculator glyphs and function aliases into canonical
// text. It performs no validation; malformed input passes through to be
// rejected by Evaluate. Normalize is idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, sz := utf8.DecodeRuneInString(raw[i:])
		if isWordRune(r) {
			j := i + sz
			for j < len(raw) {
				r, sz := utf8.DecodeRuneInString(raw[j:])
				if !isWordRune(r) {
					break
				}
				j += sz
			}
			w := raw[i:j]
			if a, ok := aliases[w]; ok {
				w = a
			}
			b.WriteString(w)
			i = j
			continue
		}
		if g, ok := glyphs[r]; ok {
			b.WriteString(g)
		} else {
			// Copy the bytes rather than r so invalid UTF-8 passes through.
			b.WriteString(raw[i : i+sz])
		}
		i += sz
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
