package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jihun2da/newmatch/internal/match/model"
)

func testCatalog() []model.CatalogRecord {
	return []model.CatalogRecord{
		{Brand: "소예", Product: "테리헤어밴드", Supplier: "소예패션", WholesalePrice: 8000, OptionText: "사이즈{S,M,L}"},
		{Brand: "소예", Product: "맨투맨", Supplier: "소예패션", WholesalePrice: 12000, OptionText: "사이즈{JM,JL}"},
		{Brand: "린도", Product: "세일러린넨바디수트", Supplier: "린도키즈", WholesalePrice: 15000, OptionText: "사이즈{80,90,100}"},
		{Brand: "마마미", Product: "클래식썸머셔츠", Supplier: "마마미브랜드", WholesalePrice: 18000, OptionText: "사이즈{FREE}"},
	}
}

func newLoadedEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(zerolog.Nop(), DefaultNoiseKeywords(), DefaultConfig())
	e.SetCatalog(testCatalog())
	return e
}

func TestMatchRowExactWithSize(t *testing.T) {
	e := newLoadedEngine(t)

	res := e.MatchRow("소예", "테리헤어밴드(S~L)", "M", "")
	require.True(t, res.Success)
	require.Equal(t, "소예패션", res.Supplier)
	require.Equal(t, 8000.0, res.WholesalePrice)
	require.Equal(t, "소예 테리헤어밴드", res.MatchedLabel)
	require.Equal(t, 100.0, res.Diag.ProductSim)
	require.Equal(t, 100.0, res.Diag.SizeSim)
	require.InDelta(t, 97.5, res.Diag.TotalSim, 1e-9)
}

func TestMatchRowJuniorSizeBlocksMatch(t *testing.T) {
	e := newLoadedEngine(t)

	// the catalog row only stocks junior sizes; an adult M must not match
	res := e.MatchRow("소예", "맨투맨", "M", "")
	require.False(t, res.Success)
}

func TestMatchRowNumericSize(t *testing.T) {
	e := newLoadedEngine(t)

	res := e.MatchRow("린도", "세일러린넨바디수트", "90", "")
	require.True(t, res.Success)
	require.Equal(t, "린도키즈", res.Supplier)
}

func TestMatchRowUnknownBrand(t *testing.T) {
	e := newLoadedEngine(t)

	res := e.MatchRow("없는브랜드", "티셔츠", "", "")
	require.False(t, res.Success)
	require.NotEmpty(t, res.Reason)
}

func TestMatchRowEmptyFields(t *testing.T) {
	e := newLoadedEngine(t)

	require.False(t, e.MatchRow("", "테리헤어밴드", "", "").Success)
	require.False(t, e.MatchRow("소예", "", "", "").Success)
}

func TestProcessBatch(t *testing.T) {
	e := newLoadedEngine(t)

	rows := []model.InputRow{
		{Brand: "소예", Product: "테리헤어밴드", OptionText: "사이즈=M", Quantity: 3},
		{Brand: "소예", Product: "맨투맨", OptionText: "사이즈=M", Quantity: 1},
		{Brand: "", Product: "고아상품", Quantity: 1},
	}
	results, failed := e.ProcessBatch(rows)
	require.Len(t, results, 3)

	require.True(t, results[0].Success)
	require.Equal(t, 3, results[0].Quantity)
	require.Equal(t, 24000.0, results[0].Amount)

	require.False(t, results[1].Success)
	require.Equal(t, FailureLabel, results[1].MatchedLabel)

	require.False(t, results[2].Success)

	// only rows with both brand and product reach the fallback pass
	require.Len(t, failed, 1)
	require.Equal(t, "맨투맨", failed[0].Product)
	require.Equal(t, 1, failed[0].RowIndex)
}

func TestFindSimilar(t *testing.T) {
	e := newLoadedEngine(t)

	// too short for the primary pass length guard, close enough for fallback
	rows := []model.InputRow{{Brand: "소예", Product: "헤어밴드", Quantity: 1}}
	results, failed := e.ProcessBatch(rows)
	require.False(t, results[0].Success)
	require.Len(t, failed, 1)

	similar := e.FindSimilar(failed)
	require.Len(t, similar, 1)
	require.Equal(t, "테리헤어밴드", similar[0].Product)
	require.True(t, similar[0].Similar)
	require.InDelta(t, 1.0-2.0/6.0, similar[0].TotalSim, 1e-9)
	require.Equal(t, similar[0].ProductSim, similar[0].TotalSim)
}

func TestFindSimilarReportsRowWithoutCandidates(t *testing.T) {
	e := newLoadedEngine(t)

	// nothing in the 소예 bucket comes near this name, but the row must
	// still surface in the fallback report as a non-similar entry
	similar := e.FindSimilar([]model.FailedRow{
		{Brand: "소예", Product: "전혀무관한이름의무언가", Quantity: 1},
	})
	require.Len(t, similar, 1)
	require.False(t, similar[0].Similar)
	require.Equal(t, "전혀무관한이름의무언가", similar[0].Source.Product)
	require.Empty(t, similar[0].Product)
	require.Zero(t, similar[0].ProductSim)
	require.Zero(t, similar[0].TotalSim)
}

func TestMatchRowStage1DeadlineGraceful(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stage1Timeout = time.Nanosecond
	e := New(zerolog.Nop(), DefaultNoiseKeywords(), cfg)
	e.SetCatalog(testCatalog())

	// the scan budget expires before the first candidate; the row fails
	// with a reason instead of hanging or erroring
	res := e.MatchRow("소예", "테리헤어밴드", "", "")
	require.False(t, res.Success)
	require.NotEmpty(t, res.Reason)
}

func TestFindSimilarUnknownBrandSkipped(t *testing.T) {
	e := newLoadedEngine(t)

	similar := e.FindSimilar([]model.FailedRow{{Brand: "없는브랜드", Product: "티셔츠"}})
	require.Empty(t, similar)
}

func TestSetCatalogSwapsSnapshot(t *testing.T) {
	e := newLoadedEngine(t)
	require.True(t, e.MatchRow("소예", "테리헤어밴드", "", "").Success)

	e.SetCatalog([]model.CatalogRecord{
		{Brand: "새브랜드", Product: "새상품", Supplier: "새공급처", WholesalePrice: 1000},
	})
	require.False(t, e.MatchRow("소예", "테리헤어밴드", "", "").Success)
	require.True(t, e.MatchRow("새브랜드", "새상품", "", "").Success)
}
