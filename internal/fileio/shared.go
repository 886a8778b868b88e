package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadAnyRows picks a parser by file extension and returns the sheet as
// raw positional rows. Column meaning is the caller's business; order
// uploads address columns by position, not by header.
func ReadAnyRows(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// normalizeCell trims the junk whitespace spreadsheet exports love:
// NBSP, zero-width space, plus the usual trailing blanks.
func normalizeCell(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "​", "")
	return strings.TrimSpace(s)
}

func rowEmpty(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
