package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposeJamo(t *testing.T) {
	e := newTestEngine(t)

	require.Equal(t, "ㅌㅣㅅㅕㅊㅡ", e.DecomposeJamo("티셔츠"))
	require.Equal(t, "ㅎㅏㄴ", e.DecomposeJamo("한"))
	// non-Hangul passes through untouched
	require.Equal(t, "abc123", e.DecomposeJamo("abc123"))
	require.Equal(t, "ㅌㅣshirt", e.DecomposeJamo("티shirt"))
	require.Equal(t, "", e.DecomposeJamo(""))
}
