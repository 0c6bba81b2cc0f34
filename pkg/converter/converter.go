// Package converter converts text between the hiragana and katakana
// syllabaries. The two Unicode blocks enumerate the same syllables in the
// same order, so conversion is a constant codepoint shift rather than a
// lookup table; runes outside the source block pass through unchanged.
package converter

import (
	"strings"

	"github.com/mrahhal/japanese/pkg/charset"
)

// KanaOffset is the distance from a hiragana codepoint to its katakana
// counterpart.
const KanaOffset = 'ア' - 'あ'

// ProlongedSoundMark ー prolongs the vowel of the preceding katakana.
const ProlongedSoundMark = 'ー'

// HiraganaToKatakanaRune shifts a hiragana rune to its katakana
// counterpart. Anything else is returned unchanged.
func HiraganaToKatakanaRune(r rune) rune {
	if !charset.IsHiragana(r) {
		return r
	}
	return r + KanaOffset
}

// KatakanaToHiraganaRune shifts a katakana rune to its hiragana
// counterpart. Anything else is returned unchanged.
func KatakanaToHiraganaRune(r rune) rune {
	if !charset.IsKatakana(r) {
		return r
	}
	return r - KanaOffset
}

// HiraganaToKatakana converts every hiragana rune in s to katakana,
// preserving rune count and order.
func HiraganaToKatakana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(HiraganaToKatakanaRune(r))
	}
	return b.String()
}

// KatakanaToHiragana converts every katakana rune in s to hiragana,
// preserving rune count and order. The prolonged sound mark ー has no
// hiragana counterpart and is written out as the vowel it prolongs
// (キョービ becomes きょうび); when there is no preceding kana to take the
// vowel from, ー passes through unchanged.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch {
		case charset.IsHiragana(r) || !charset.IsKatakana(r):
			b.WriteRune(r)
		case r == ProlongedSoundMark:
			b.WriteRune(resolveProlonged(runes, i))
		default:
			b.WriteRune(r - KanaOffset)
		}
	}
	return b.String()
}

func resolveProlonged(runes []rune, i int) rune {
	if i == 0 {
		return ProlongedSoundMark
	}
	v, ok := VowelOf(KatakanaToHiraganaRune(runes[i-1]))
	if !ok {
		return ProlongedSoundMark
	}
	return ProlongedHiragana(v)
}

// ConvertVowelInStem swaps a hiragana kana for the kana in the same
// consonant row with vowel v, as verb inflection does with stem endings.
// わ inflects on the bare-vowel row (かわ→かい, かい→かわ). Runes outside
// hiragana, outside the syllabary rows, or in rows without the requested
// vowel are returned unchanged.
func ConvertVowelInStem(r rune, v Vowel) rune {
	if !charset.IsHiragana(r) {
		return r
	}
	pos, ok := kanaIndex[r]
	if r == 'わ' {
		pos, ok = kanaPos{row: vowelRow, vowel: VowelA}, true
	}
	if !ok {
		return r
	}
	if pos.row == vowelRow && v == VowelA {
		return 'わ'
	}
	out := kanaRows[pos.row][v]
	if out == 0 {
		return r
	}
	return out
}
