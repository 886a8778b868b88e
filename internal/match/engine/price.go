package engine

import "math"

// PriceSimilarity bands the relative difference between an uploaded price
// and the catalog wholesale price. A missing or zero price on either side
// is neutral, not disqualifying, since many uploads omit it.
func PriceSimilarity(upload, catalog float64) float64 {
	if upload <= 0 || catalog <= 0 || math.IsNaN(upload) || math.IsNaN(catalog) {
		return neutralPriceScore
	}
	diff := math.Abs(upload-catalog) / catalog * 100
	switch {
	case diff == 0:
		return 100
	case diff <= 5:
		return 90
	case diff <= 10:
		return 70
	default:
		return 0
	}
}
