package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// readCSV loads a header-first CSV file. CSV carries no type information,
// so cells that parse cleanly as integers or floats are stored as such.
func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	out := &Table{Columns: records[0]}
	for _, rec := range records[1:] {
		row := make([]any, len(rec))
		for i, cell := range rec {
			row[i] = csvValue(cell)
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func csvValue(cell string) any {
	if cell == "" {
		return nil
	}
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
