package engine

import "strings"

// Hangul syllables decompose as (lead*21 + vowel)*28 + tail + 0xAC00.
var (
	jamoLead = []rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	jamoVowel = []rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
		'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
	}
	jamoTail = []rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// DecomposeJamo expands each Hangul syllable into its lead/vowel/tail
// jamo; everything else passes through unchanged. "티셔츠" and "티샤츠"
// differ by a single jamo after decomposition, which is what lets the
// cascade catch one-glyph misspellings.
func (e *Engine) DecomposeJamo(text string) string {
	if text == "" {
		return ""
	}
	if v, ok := e.jamoCache.get(text); ok {
		return v
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		if r < '가' || r > '힣' {
			b.WriteRune(r)
			continue
		}
		code := r - '가'
		tail := code % 28
		vowel := (code / 28) % 21
		lead := code / 28 / 21
		b.WriteRune(jamoLead[lead])
		b.WriteRune(jamoVowel[vowel])
		if tail > 0 {
			b.WriteRune(jamoTail[tail])
		}
	}
	out := b.String()
	e.jamoCache.put(text, out)
	return out
}
