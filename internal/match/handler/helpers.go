package handler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jihun2da/newmatch/internal/match/model"
)

// Mapping describes where the upload keeps its fields. Columns are
// 0-based; the defaults follow the standard order-sheet template, where
// column E holds "brand product" combined, F the option and G the
// quantity.
type Mapping struct {
	ItemCol   int
	OptionCol int
	QtyCol    int
	SkipRows  int
}

func DefaultMapping() Mapping {
	return Mapping{ItemCol: 4, OptionCol: 5, QtyCol: 6, SkipRows: 1}
}

// Brands sometimes carry a parenthesized qualifier, e.g. "소예(본사) 티셔츠".
// The paren group belongs to the brand, not the product, so the split
// point is the first space after it.
var reBracketBrand = regexp.MustCompile(`^(\S*\([^)]*\)\S*)\s+(.+)$`)

// SplitBrandProduct separates the combined "brand product" cell on the
// first space. A single token is all brand, which the matcher then
// rejects for the missing product name.
func SplitBrandProduct(text string) (brand, product string) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", ""
	}
	if m := reBracketBrand.FindStringSubmatch(t); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if i := strings.IndexAny(t, " \t"); i >= 0 {
		return strings.TrimSpace(t[:i]), strings.TrimSpace(t[i+1:])
	}
	return t, ""
}

// ToInputRows converts raw sheet rows into input rows per the mapping.
// Rows whose item cell is blank are dropped; a missing or unparseable
// quantity defaults to 1.
func ToInputRows(rows [][]string, m Mapping) []model.InputRow {
	out := make([]model.InputRow, 0, len(rows))
	for i, row := range rows {
		if i < m.SkipRows {
			continue
		}
		item := cell(row, m.ItemCol)
		if item == "" {
			continue
		}
		brand, product := SplitBrandProduct(item)
		out = append(out, model.InputRow{
			Brand:      brand,
			Product:    product,
			OptionText: cell(row, m.OptionCol),
			Quantity:   parseQty(cell(row, m.QtyCol)),
		})
	}
	return out
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseQty(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 1
	}
	// tolerate "2.0" style cells from spreadsheet exports
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(f)
	}
	return 1
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
