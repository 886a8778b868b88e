package engine

import "strings"

// colorEquivalents groups spellings of the same color that edit distance
// alone would score poorly. Membership in the same group scores a fixed
// 95, just under an exact match.
var colorEquivalents = [][]string{
	{"멜란지", "메란지", "메렌지", "melange"},
	{"블랙", "black", "검정", "검은색"},
	{"화이트", "white", "흰색", "하얀색"},
	{"레드", "red", "빨강", "빨간색"},
	{"블루", "blue", "파랑", "파란색"},
	{"그린", "green", "초록", "초록색"},
	{"옐로우", "yellow", "노랑", "노란색"},
	{"핑크", "pink", "분홍", "분홍색"},
	{"그레이", "gray", "grey", "회색"},
	{"베이지", "beige", "베이지색"},
	{"네이비", "navy", "남색"},
}

func colorsEquivalent(a, b string) bool {
	for _, group := range colorEquivalents {
		if containsString(group, a) && containsString(group, b) {
			return true
		}
	}
	return false
}

// ColorSimilarity scores two color names on 0..100. Known equivalent
// spellings score 95; everything else goes through the full cascade.
func (e *Engine) ColorSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	if colorsEquivalent(a, b) {
		return 95
	}
	return e.Similarity(a, b)
}

// colorRatio is the 0..1 counterpart used by the fallback pass, which
// stays on plain edit distance instead of the cascade.
func colorRatio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if colorsEquivalent(a, b) {
		return 0.95
	}
	return Ratio(a, b)
}
