package textfilter

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims s and lowercases it. Used for directions, verbs and raw input.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Tokenize normalizes a raw command line and splits it on runs of whitespace.
// An empty or blank line yields no tokens.
func Tokenize(input string) []string {
	return strings.Fields(Normalize(input))
}

// EqualFold reports whether a and b are equal under full Unicode case folding,
// ignoring surrounding whitespace.
func EqualFold(a, b string) bool {
	folder := cases.Fold()
	return folder.String(strings.TrimSpace(a)) == folder.String(strings.TrimSpace(b))
}

// Title formats a name for headings, e.g. "great hall" → "Great Hall".
// Names that already carry capitals are returned unchanged.
func Title(s string) string {
	if strings.ToLower(s) != s {
		return s
	}
	return cases.Title(language.English).String(s)
}

// Wrap word-wraps text to width. A width of zero or less disables wrapping.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
