package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSizeFormat(t *testing.T) {
	require.Equal(t, "L(24~36)", NormalizeSizeFormat("L 24~36"))
	require.Equal(t, "L(24~36)", NormalizeSizeFormat("L(24-36)"))
	require.Equal(t, "XL(7~8)", NormalizeSizeFormat("XL 7-8"))
	require.Equal(t, "90", NormalizeSizeFormat("90"))
	require.Equal(t, "S~M", NormalizeSizeFormat("S-M"))
	require.Equal(t, "", NormalizeSizeFormat("  "))
}

func TestCheckSizeMatchJuniorExclusion(t *testing.T) {
	// adult code against a junior-only listing never matches, even though
	// plain substring containment would say otherwise
	require.Equal(t, 0.0, CheckSizeMatch("M", "[JM]"))
	require.Equal(t, 0.0, CheckSizeMatch("S", "[JS]"))
	require.Equal(t, 0.0, CheckSizeMatch("L", "[JL][JXL]"))
	require.Equal(t, 0.0, CheckSizeMatch("XL", "[JXL]"))

	// an independent adult listing next to the junior one matches
	require.Equal(t, 100.0, CheckSizeMatch("M", "[M][JM]"))
	require.Equal(t, 100.0, CheckSizeMatch("S", "[S][JS]"))
	require.Equal(t, 100.0, CheckSizeMatch("L", "[S][M][L][XL]"))

	// junior upload against junior listing is a plain containment match
	require.Equal(t, 100.0, CheckSizeMatch("JM", "[JM]"))
}

func TestCheckSizeMatchContainmentRules(t *testing.T) {
	require.Equal(t, 100.0, CheckSizeMatch("5", "사이즈{5,7,9}"))
	require.Equal(t, 100.0, CheckSizeMatch("90", "90,100,110"))
	require.Equal(t, 100.0, CheckSizeMatch("S(10~18)", "[S][M]"))
	require.Equal(t, 100.0, CheckSizeMatch("M", "S M L"))
	require.Equal(t, 100.0, CheckSizeMatch("XS", "(XS)[S][M]"))

	require.Equal(t, 0.0, CheckSizeMatch("XL", "S,M,L"))
	require.Equal(t, 0.0, CheckSizeMatch("", "S,M,L"))
	require.Equal(t, 0.0, CheckSizeMatch("M", ""))
}

func TestSizeRatioNumericBands(t *testing.T) {
	require.Equal(t, 1.0, sizeRatio("90", "90"))
	require.Equal(t, 0.8, sizeRatio("90", "95"))
	require.Equal(t, 0.6, sizeRatio("90", "100"))
	require.Greater(t, 0.6, sizeRatio("90", "110"))
}

func TestSizeRatioLetterVariants(t *testing.T) {
	require.Equal(t, 0.95, sizeRatio("m", "엠"))
	require.Equal(t, 0.95, sizeRatio("free", "프리사이즈"))
	require.Equal(t, 0.95, sizeRatio("L", "라지"))

	// different letter codes are not equivalent
	require.Equal(t, 0.0, sizeRatio("s", "m"))
	require.Equal(t, 0.0, sizeRatio("", "m"))
}
