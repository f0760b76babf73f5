// Package notes converts rough study notes into a clean, readable format.
package notes

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Clean trims every line, drops blanks, capitalizes the first letter,
// appends a period when terminal punctuation is missing and joins the
// result with blank lines.
func Clean(raw string) string {
	var cleaned []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r, size := utf8.DecodeRuneInString(line)
		line = string(unicode.ToUpper(r)) + line[size:]

		switch line[len(line)-1] {
		case '.', '!', '?':
		default:
			line += "."
		}

		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n\n")
}
