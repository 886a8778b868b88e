package fileio

import (
	"fmt"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"github.com/jihun2da/newmatch/internal/match/model"
)

const (
	resultSheet  = "매칭결과"
	similarSheet = "유사매칭"
)

// WriteResults renders a matching run as an xlsx workbook: one sheet for
// per-row results, one for the fallback pass suggestions.
func WriteResults(w io.Writer, results []model.MatchResult, similar []model.SimilarResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeResultSheet(f, results); err != nil {
		return err
	}
	if err := writeSimilarSheet(f, similar); err != nil {
		return err
	}
	// excelize seeds the workbook with "Sheet1"
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.Write(w)
}

func writeResultSheet(f *excelize.File, results []model.MatchResult) error {
	if _, err := f.NewSheet(resultSheet); err != nil {
		return err
	}
	header := []any{"매칭상품", "공급처", "도매가", "수량", "금액", "비고"}
	if err := f.SetSheetRow(resultSheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range results {
		note := r.Reason
		if r.Success {
			note = fmt.Sprintf("유사도 %.1f", r.Diag.TotalSim)
		}
		row := []any{r.MatchedLabel, r.Supplier, r.WholesalePrice, r.Quantity, r.Amount, note}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSimilarSheet(f *excelize.File, similar []model.SimilarResult) error {
	if _, err := f.NewSheet(similarSheet); err != nil {
		return err
	}
	header := []any{"업로드 브랜드", "업로드 상품명", "후보 상품명", "공급처", "도매가", "옵션", "유사도"}
	if err := f.SetSheetRow(similarSheet, "A1", &header); err != nil {
		return err
	}
	for i, s := range similar {
		row := []any{s.Source.Brand, s.Source.Product, s.Product, s.Supplier, s.WholesalePrice, s.OptionText, fmt.Sprintf("%.2f", s.TotalSim)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(similarSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
