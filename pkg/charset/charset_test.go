package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHiragana(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'あ', true},
		{'ん', true},
		{'ょ', true},
		{'ゝ', true},
		{'ア', false},
		{'ー', false},
		{'漢', false},
		{'a', false},
		{'。', false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHiragana(tt.r), "IsHiragana(%q)", tt.r)
	}
}

func TestIsKatakana(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'ア', true},
		{'ン', true},
		{'ョ', true},
		{'ー', true},
		{'・', false}, // middle dot is excluded
		{'あ', false},
		{'漢', false},
		{'A', false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsKatakana(tt.r), "IsKatakana(%q)", tt.r)
	}
}

func TestIsKanji(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'漢', true},
		{'日', true},
		{'一', true},
		{'あ', false},
		{'ア', false},
		{'々', false},
		{'。', false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsKanji(tt.r), "IsKanji(%q)", tt.r)
	}
}

func TestIsJapanesePunctuation(t *testing.T) {
	assert.True(t, IsJapanesePunctuation('。'))
	assert.True(t, IsJapanesePunctuation('、'))
	assert.True(t, IsJapanesePunctuation('「'))
	assert.True(t, IsJapanesePunctuation('」'))
	assert.True(t, IsJapanesePunctuation('　')) // ideographic space
	assert.False(t, IsJapanesePunctuation('.'))
	assert.False(t, IsJapanesePunctuation('あ'))
}

func TestIsJapaneseSpecialCharacter(t *testing.T) {
	assert.True(t, IsJapaneseSpecialCharacter('々'))
	assert.True(t, IsJapaneseSpecialCharacter('〆'))
	assert.False(t, IsJapaneseSpecialCharacter('。'))
	assert.False(t, IsJapaneseSpecialCharacter('の'))
}

func TestIsFullWidthRomanHalfWidthKatakana(t *testing.T) {
	assert.True(t, IsFullWidthRomanHalfWidthKatakana('Ａ'))
	assert.True(t, IsFullWidthRomanHalfWidthKatakana('１'))
	assert.True(t, IsFullWidthRomanHalfWidthKatakana('ｱ'))
	assert.False(t, IsFullWidthRomanHalfWidthKatakana('A'))
	assert.False(t, IsFullWidthRomanHalfWidthKatakana('ア'))
}

func TestIsJapanese(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'あ', true},
		{'ア', true},
		{'漢', true},
		{'。', true},
		{'Ａ', true},
		{'ｱ', true},
		{'a', false},
		{' ', false},
		{'1', false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsJapanese(tt.r), "IsJapanese(%q)", tt.r)
	}
}

func TestIsJapaneseCharacter(t *testing.T) {
	assert.True(t, IsJapaneseCharacter('あ'))
	assert.True(t, IsJapaneseCharacter('ア'))
	assert.True(t, IsJapaneseCharacter('漢'))
	assert.True(t, IsJapaneseCharacter('々'))
	assert.False(t, IsJapaneseCharacter('。')) // punctuation is not a character
	assert.False(t, IsJapaneseCharacter('Ａ'))
}

func TestIsKana(t *testing.T) {
	assert.True(t, IsKana('あ'))
	assert.True(t, IsKana('ア'))
	assert.False(t, IsKana('漢'))
	assert.False(t, IsKana('・'))
}

func TestStringPredicates(t *testing.T) {
	assert.True(t, IsHiraganaString("きょうだ"))
	assert.False(t, IsHiraganaString("勉強ダ"))

	assert.True(t, IsKatakanaString("アマリ"))
	assert.False(t, IsKatakanaString("あまり"))

	assert.True(t, IsKanjiString("日本語"))
	assert.False(t, IsKanjiString("日本語です"))

	assert.True(t, IsKanaString("あまりアマリ"))
	assert.False(t, IsKanaString("あまり漢"))

	assert.True(t, IsJapaneseString("日本語です。"))
	assert.False(t, IsJapaneseString("日本語 desu"))

	assert.True(t, IsJapanesePunctuationString("「。」"))
	assert.True(t, IsFullWidthRomanHalfWidthKatakanaString("ＡＢｱ"))
}

func TestStringPredicatesEmpty(t *testing.T) {
	// The empty string belongs to no category.
	preds := map[string]func(string) bool{
		"IsJapaneseString":                        IsJapaneseString,
		"IsHiraganaString":                        IsHiraganaString,
		"IsKatakanaString":                        IsKatakanaString,
		"IsKanaString":                            IsKanaString,
		"IsKanjiString":                           IsKanjiString,
		"IsJapanesePunctuationString":             IsJapanesePunctuationString,
		"IsFullWidthRomanHalfWidthKatakanaString": IsFullWidthRomanHalfWidthKatakanaString,
	}
	for name, pred := range preds {
		assert.False(t, pred(""), "%s(\"\")", name)
	}
}

func TestBlocksAreDisjoint(t *testing.T) {
	for r := HiraganaStart; r <= HiraganaEnd; r++ {
		assert.True(t, IsHiragana(r), "U+%04X", r)
		assert.False(t, IsKatakana(r), "U+%04X", r)
		assert.False(t, IsKanji(r), "U+%04X", r)
	}
	for r := KatakanaStart; r <= KatakanaEnd; r++ {
		assert.False(t, IsHiragana(r), "U+%04X", r)
		assert.False(t, IsKanji(r), "U+%04X", r)
	}
	for r := KanjiStart; r <= KanjiEnd; r++ {
		assert.False(t, IsHiragana(r), "U+%04X", r)
		assert.False(t, IsKatakana(r), "U+%04X", r)
	}
}
