package translit

import (
	"strings"
	"unicode/utf8"
)

const combiningDiaeresis = '̈'

// foldGermanDiaeresis rewrites A/O/U (either case) followed by a combining
// diaeresis into the two-letter German form ("Ä" => "AE", "ä" =>
// "ae" etc.). The fold runs before substitution so the diaeresis never
// reaches a table lookup. Precomposed umlauts are untouched here; the German
// half page handles those.
func foldGermanDiaeresis(s string) string {
	if !strings.ContainsRune(s, combiningDiaeresis) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if umlautBase(r) {
			next, nsize := utf8.DecodeRuneInString(s[i+size:])
			if next == combiningDiaeresis {
				b.WriteRune(r)
				if r >= 'a' {
					b.WriteByte('e')
				} else {
					b.WriteByte('E')
				}
				i += size + nsize
				continue
			}
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func umlautBase(r rune) bool {
	switch r {
	case 'A', 'O', 'U', 'a', 'o', 'u':
		return true
	}
	return false
}
