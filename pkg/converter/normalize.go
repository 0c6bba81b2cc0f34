package converter

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize applies NFKC normalization and trims surrounding whitespace.
// Half-width katakana compose into regular katakana (ｶﾞﾝﾀﾞﾑ → ガンダム) and
// full-width roman folds to ASCII, so normalized text can be fed straight
// into the kana converters and charset predicates.
func Normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// WidenKana maps half-width katakana to regular katakana (ｱﾏﾘ → アマリ).
// Narrow roman widens too, as width.Widen maps every narrow form; use
// Normalize instead to keep roman text ASCII.
func WidenKana(s string) string {
	return width.Widen.String(s)
}
