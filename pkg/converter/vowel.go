package converter

// Vowel is one of the five Japanese vowel sounds.
type Vowel int

const (
	VowelA Vowel = iota
	VowelI
	VowelU
	VowelE
	VowelO
)

func (v Vowel) String() string {
	switch v {
	case VowelA:
		return "a"
	case VowelI:
		return "i"
	case VowelU:
		return "u"
	case VowelE:
		return "e"
	case VowelO:
		return "o"
	}
	return "?"
}

// kanaRows lays out the hiragana syllabary by consonant row and vowel
// column. 0 marks cells the row does not have (や has no i/e sounds).
var kanaRows = [...][5]rune{
	{'あ', 'い', 'う', 'え', 'お'},
	{'ぁ', 'ぃ', 'ぅ', 'ぇ', 'ぉ'},
	{'か', 'き', 'く', 'け', 'こ'},
	{'が', 'ぎ', 'ぐ', 'げ', 'ご'},
	{'さ', 'し', 'す', 'せ', 'そ'},
	{'ざ', 'じ', 'ず', 'ぜ', 'ぞ'},
	{'た', 'ち', 'つ', 'て', 'と'},
	{'だ', 'ぢ', 'づ', 'で', 'ど'},
	{'な', 'に', 'ぬ', 'ね', 'の'},
	{'は', 'ひ', 'ふ', 'へ', 'ほ'},
	{'ば', 'び', 'ぶ', 'べ', 'ぼ'},
	{'ぱ', 'ぴ', 'ぷ', 'ぺ', 'ぽ'},
	{'ま', 'み', 'む', 'め', 'も'},
	{'ら', 'り', 'る', 'れ', 'ろ'},
	{'や', 0, 'ゆ', 0, 'よ'},
	{'ゃ', 0, 'ゅ', 0, 'ょ'},
}

// vowelRow is the index of the bare-vowel row あいうえお.
const vowelRow = 0

type kanaPos struct {
	row   int
	vowel Vowel
}

var kanaIndex = make(map[rune]kanaPos)

func init() {
	for row, cells := range kanaRows {
		for v, r := range cells {
			if r == 0 {
				continue
			}
			kanaIndex[r] = kanaPos{row: row, vowel: Vowel(v)}
		}
	}
}

// VowelOf returns the vowel sound of a hiragana kana. ok is false for runes
// outside the syllabary rows (ん, っ, marks, non-hiragana).
func VowelOf(r rune) (v Vowel, ok bool) {
	pos, ok := kanaIndex[r]
	if !ok {
		return 0, false
	}
	return pos.vowel, true
}

// ProlongedHiragana returns the hiragana that writes out a prolonged vowel
// sound: あ for a, い for i and e, う for u and o.
func ProlongedHiragana(v Vowel) rune {
	switch v {
	case VowelA:
		return 'あ'
	case VowelI, VowelE:
		return 'い'
	default:
		return 'う'
	}
}
