package engine

import (
	"strings"

	"github.com/jihun2da/newmatch/internal/match/model"
)

// BrandIndex buckets catalog records by lowercased brand so matching only
// ever scans one brand's records.
type BrandIndex struct {
	buckets map[string][]*model.CatalogRecord
	total   int
}

// BuildBrandIndex groups records by brand. Records with an empty or "nan"
// brand are unmatchable and get dropped here.
func BuildBrandIndex(records []model.CatalogRecord) *BrandIndex {
	idx := &BrandIndex{buckets: make(map[string][]*model.CatalogRecord)}
	for i := range records {
		key := strings.ToLower(strings.TrimSpace(records[i].Brand))
		if key == "" || key == "nan" {
			continue
		}
		idx.buckets[key] = append(idx.buckets[key], &records[i])
		idx.total++
	}
	return idx
}

// Lookup returns the records for a brand, or nil if the brand is unknown.
func (idx *BrandIndex) Lookup(brand string) []*model.CatalogRecord {
	return idx.buckets[strings.ToLower(strings.TrimSpace(brand))]
}

// Len reports how many records the index holds.
func (idx *BrandIndex) Len() int { return idx.total }

// Brands returns the distinct brand keys in the index.
func (idx *BrandIndex) Brands() []string {
	out := make([]string, 0, len(idx.buckets))
	for k := range idx.buckets {
		out = append(out, k)
	}
	return out
}
