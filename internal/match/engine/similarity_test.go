package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(zerolog.Nop(), DefaultNoiseKeywords(), DefaultConfig())
}

func TestRatio(t *testing.T) {
	require.Equal(t, 1.0, Ratio("테리헤어밴드", "테리헤어밴드"))
	require.Equal(t, 0.0, Ratio("", "무언가"))
	require.InDelta(t, 1.0-2.0/6.0, Ratio("헤어밴드", "테리헤어밴드"), 1e-9)

	// transposition counts as one edit
	require.InDelta(t, 0.75, Ratio("abcd", "abdc"), 1e-9)
}

func TestSimilarityIdentityAndSymmetry(t *testing.T) {
	e := newTestEngine(t)

	require.Equal(t, 100.0, e.Similarity("원피스", "원피스"))
	require.Equal(t, 0.0, e.Similarity("", "원피스"))

	pairs := [][2]string{
		{"테리헤어밴드", "헤어밴드"},
		{"티셔츠", "티샤츠"},
		{"린넨 원피스", "린넨원피스"},
	}
	for _, p := range pairs {
		require.InDelta(t, e.Similarity(p[0], p[1]), e.Similarity(p[1], p[0]), 1e-9, "pair %v", p)
	}
}

func TestRatioSubstitutionFloor(t *testing.T) {
	// one substitution in a length-n string scores exactly (n-1)/n
	cases := [][2]string{
		{"abcdef", "abcdeX"},
		{"가나다라마", "가나다라바"},
	}
	for _, c := range cases {
		n := float64(len([]rune(c[0])))
		require.InDelta(t, (n-1)/n, Ratio(c[0], c[1]), 1e-9, "pair %v", c)
	}
}

func TestSimilaritySynonymTier(t *testing.T) {
	e := newTestEngine(t)

	// raw edit distance puts 티셔츠/티샤츠 far below 85; the synonym table
	// maps both to the same entry and lifts the score past the tier-2 gate
	raw := Ratio("티셔츠", "티샤츠") * 100
	require.Less(t, raw, 70.0)
	require.GreaterOrEqual(t, e.Similarity("티셔츠", "티샤츠"), 85.0)
}

func TestSimilarityJamoTier(t *testing.T) {
	e := newTestEngine(t)

	// no synonym entry covers these; the jamo decomposition does:
	// 나시 -> ㄴㅏㅅㅣ, 난시 -> ㄴㅏㄴㅅㅣ differ by one jamo in five
	require.InDelta(t, 80.0, e.Similarity("나시", "난시"), 1e-9)
}

func TestSimilarityCacheStable(t *testing.T) {
	e := newTestEngine(t)

	first := e.Similarity("테리헤어밴드", "헤어밴드")
	for i := 0; i < 3; i++ {
		require.Equal(t, first, e.Similarity("테리헤어밴드", "헤어밴드"))
	}
}
