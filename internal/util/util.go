// internal/util/util.go
package util

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes truncates a string to a maximum number of runes. When the
// string is shortened an ellipsis replaces the final rune so the result never
// exceeds maxRunes.
func TruncateRunes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes-1]) + "…"
}

// FlattenLines collapses newlines into spaces so multi-line error output can be
// printed on a single progress line.
func FlattenLines(text string) string {
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}

// TitleCase capitalizes the first rune of every word. Used for category
// headings, where categories arrive as snake_case identifiers.
func TitleCase(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
