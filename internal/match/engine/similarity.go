package engine

import "strings"

// damerauLevenshtein counts insertions, deletions, substitutions and
// adjacent transpositions between two rune sequences.
func damerauLevenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	al, bl := len(ra), len(rb)

	dp := make([][]int, al+1)
	for i := 0; i <= al; i++ {
		dp[i] = make([]int, bl+1)
		dp[i][0] = i
	}
	for j := 0; j <= bl; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= al; i++ {
		for j := 1; j <= bl; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if v := dp[i-2][j-2] + 1; v < dp[i][j] {
					dp[i][j] = v
				}
			}
		}
	}
	return dp[al][bl]
}

func min3(a, b, c int) int { return min(min(a, b), c) }

// Ratio is the normalized edit-distance similarity on a 0..1 scale:
// 1 - distance/len(longer). Symmetric. This is the tier-1 primitive of the
// cascade and the product metric of the fallback pass.
func Ratio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	m := len([]rune(a))
	if n := len([]rune(b)); n > m {
		m = n
	}
	return 1 - float64(damerauLevenshtein(a, b))/float64(m)
}

// Similarity scores two strings on 0..100 through three escalating tiers:
// raw edit-distance ratio, synonym-expanded ratio, and (below 70 only)
// jamo-decomposed ratio. Each tier can short-circuit; most real pairs
// resolve at tier 1. Memoized on the ordered pair as given; the metric
// itself is symmetric, so the numeric result is too.
func (e *Engine) Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	key := a + "\x00" + b
	if v, ok := e.simCache.get(key); ok {
		return v
	}

	best := Ratio(a, b) * 100
	if best >= tier1Accept {
		e.simCache.put(key, best)
		return best
	}

	ea, eb := e.ExpandSynonyms(a), e.ExpandSynonyms(b)
	if ea != a || eb != b {
		if s := Ratio(ea, eb) * 100; s > best {
			best = s
		}
	}
	if best >= tier2Accept {
		e.simCache.put(key, best)
		return best
	}

	if best < tier3Floor {
		ja, jb := e.DecomposeJamo(a), e.DecomposeJamo(b)
		if ja != "" && jb != "" {
			if s := Ratio(ja, jb) * 100; s > best {
				best = s
			}
		}
	}

	e.simCache.put(key, best)
	return best
}
