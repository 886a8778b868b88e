package fileio

import "os"

// ReadKeywordColumn loads noise keywords from the first column of the
// first sheet of an xlsx file, skipping the header row and blanks.
func ReadKeywordColumn(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := readXLSX(f)
	if err != nil {
		return nil, err
	}

	var out []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if kw := normalizeCell(row[0]); kw != "" {
			out = append(out, kw)
		}
	}
	return out, nil
}
