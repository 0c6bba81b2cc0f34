// Package charset recognizes the different character sets used in Japanese
// text: hiragana, katakana, kanji, Japanese punctuation and the
// full-width/half-width forms block.
//
// Unicode reference: http://www.rikai.com/library/kanjitables/kanji_codes.unicode.shtml
package charset

// Inclusive codepoint bounds for the Japanese Unicode blocks.
const (
	PunctuationStart = '　'
	PunctuationEnd   = '〿'
	HiraganaStart    = '぀'
	HiraganaEnd      = 'ゟ'
	KatakanaStart    = '゠'
	KatakanaEnd      = 'ヿ'
	KanjiStart       = '一'
	KanjiEnd         = '龯'

	// Full-width roman and half-width katakana forms.
	FullWidthStart = '＀'
	FullWidthEnd   = '￯'
)

// MiddleDot is the katakana middle dot ・. It sits inside the katakana block
// but separates words rather than spelling them, so IsKatakana excludes it.
const MiddleDot = '・'

// IsJapanese checks if the rune belongs to any Japanese block
// (hiragana, katakana, kanji, punctuation or full-width forms).
func IsJapanese(r rune) bool {
	return IsHiragana(r) ||
		IsKanji(r) ||
		IsKatakana(r) ||
		IsJapanesePunctuation(r) ||
		IsFullWidthRomanHalfWidthKatakana(r)
}

// IsJapaneseCharacter checks if the rune is a character proper (kana, kanji
// or one of the special marks), as opposed to punctuation or symbols.
func IsJapaneseCharacter(r rune) bool {
	return IsHiragana(r) || IsKanji(r) || IsKatakana(r) || IsJapaneseSpecialCharacter(r)
}

// IsJapanesePunctuation checks if the rune is Japanese punctuation (U+3000 - U+303F)
func IsJapanesePunctuation(r rune) bool {
	return r >= PunctuationStart && r <= PunctuationEnd
}

// IsJapaneseSpecialCharacter checks if the rune is the iteration mark 々 or
// the closing mark 〆, which spell words despite living in the punctuation block.
func IsJapaneseSpecialCharacter(r rune) bool {
	return r == '々' || r == '〆'
}

// IsHiragana checks if the rune is in the hiragana block (U+3040 - U+309F)
func IsHiragana(r rune) bool {
	return r >= HiraganaStart && r <= HiraganaEnd
}

// IsKatakana checks if the rune is in the katakana block (U+30A0 - U+30FF),
// excluding the middle dot ・
func IsKatakana(r rune) bool {
	return r >= KatakanaStart && r <= KatakanaEnd && r != MiddleDot
}

// IsKana checks if the rune is either hiragana or katakana
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// IsKanji checks if the rune is a CJK unified ideograph (U+4E00 - U+9FAF)
func IsKanji(r rune) bool {
	return r >= KanjiStart && r <= KanjiEnd
}

// IsFullWidthRomanHalfWidthKatakana checks if the rune is in the
// full-width roman / half-width katakana forms block (U+FF00 - U+FFEF)
func IsFullWidthRomanHalfWidthKatakana(r rune) bool {
	return r >= FullWidthStart && r <= FullWidthEnd
}

// IsJapaneseString checks if the string is non-empty and all Japanese
func IsJapaneseString(s string) bool {
	return all(s, IsJapanese)
}

// IsHiraganaString checks if the string is non-empty and all hiragana
func IsHiraganaString(s string) bool {
	return all(s, IsHiragana)
}

// IsKatakanaString checks if the string is non-empty and all katakana
func IsKatakanaString(s string) bool {
	return all(s, IsKatakana)
}

// IsKanaString checks if the string is non-empty and all kana
func IsKanaString(s string) bool {
	return all(s, IsKana)
}

// IsKanjiString checks if the string is non-empty and all kanji
func IsKanjiString(s string) bool {
	return all(s, IsKanji)
}

// IsJapanesePunctuationString checks if the string is non-empty and all Japanese punctuation
func IsJapanesePunctuationString(s string) bool {
	return all(s, IsJapanesePunctuation)
}

// IsFullWidthRomanHalfWidthKatakanaString checks if the string is non-empty
// and entirely within the full-width/half-width forms block
func IsFullWidthRomanHalfWidthKatakanaString(s string) bool {
	return all(s, IsFullWidthRomanHalfWidthKatakana)
}

// all reports whether s is non-empty and every rune satisfies pred.
// The empty string is not a member of any category.
func all(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
