package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceSimilarityBands(t *testing.T) {
	require.Equal(t, 100.0, PriceSimilarity(18000, 18000))
	require.Equal(t, 90.0, PriceSimilarity(18900, 18000)) // 5%
	require.Equal(t, 70.0, PriceSimilarity(19800, 18000)) // 10%
	require.Equal(t, 0.0, PriceSimilarity(20000, 18000))  // >10%
}

func TestPriceSimilarityMissingIsNeutral(t *testing.T) {
	require.Equal(t, 50.0, PriceSimilarity(0, 18000))
	require.Equal(t, 50.0, PriceSimilarity(18000, 0))
	require.Equal(t, 50.0, PriceSimilarity(-1, 18000))
	require.Equal(t, 50.0, PriceSimilarity(math.NaN(), 18000))
}
