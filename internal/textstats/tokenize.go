package textstats

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches a maximal run of word characters. Go's \w is ASCII-only,
// so the Unicode classes are spelled out.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Normalize lowercases text using language-neutral Unicode case mapping.
func Normalize(text string) string {
	return cases.Lower(language.Und).String(text)
}

// Tokenize returns the word tokens of text in source order. The text is
// normalized first, so tokens are always lowercase.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(Normalize(text), -1)
}

// IsBlank reports whether text is empty or holds only whitespace.
func IsBlank(text string) bool {
	return strings.TrimFunc(text, isSpace) == ""
}

// isSpace extends unicode.IsSpace with the ASCII information separators
// (U+001C..U+001F), which str.isspace-style checks also treat as blank.
func isSpace(r rune) bool {
	if r >= '\x1c' && r <= '\x1f' {
		return true
	}
	return unicode.IsSpace(r)
}
