package options

import (
	"strings"
	"unicode/utf8"
)

// Wrap80 wraps help text at 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap breaks text into lines of at most width characters, splitting only at
// whitespace. Widths are counted in runes so accented help text lines up.
func Wrap(text string, width int) string {
	words := strings.Fields(strings.TrimSpace(text))
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(words[0])
	left := width - utf8.RuneCountInString(words[0])
	for _, word := range words[1:] {
		n := utf8.RuneCountInString(word)
		if n+1 > left {
			b.WriteString("\n")
			b.WriteString(word)
			left = width - n
			continue
		}
		b.WriteString(" ")
		b.WriteString(word)
		left -= 1 + n
	}
	return b.String()
}
