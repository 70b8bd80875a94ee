package vocab

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// Apostrophe-like marks are removed outright so contractions stay one
	// word ("don't" becomes "dont").
	punctToRemove = regexp.MustCompile("['’`´¨^·]")
	// Everything else listed here separates words.
	punctToSpace = regexp.MustCompile(`[.,;¡!¿?"+*|@#$~%&=\\/<>(){}\[\]-]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// Normalize strips punctuation from text, collapses whitespace and
// case-folds the result. The resource files cover several languages, so
// folding is used rather than ASCII lowercasing.
func Normalize(text string) string {
	text = punctToRemove.ReplaceAllString(text, "")
	text = punctToSpace.ReplaceAllString(text, " ")
	text = multiSpace.ReplaceAllString(text, " ")
	return cases.Fold().String(strings.TrimSpace(text))
}
