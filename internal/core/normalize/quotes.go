// Package normalize sanitizes free-text review fields
package normalize

import "strings"

// StripQuotes trims surrounding whitespace, then peels matched double quote layers,
// then matched single quote layers, re-trimming after each layer.
// The two styles are not interleaved: `"'x'"` loses the double layer first, then the single one
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = peel(s, '"')
	return peel(s, '\'')
}

func peel(s string, q byte) string {
	for len(s) >= 2 && s[0] == q && s[len(s)-1] == q {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
