package dataset

import (
	"fmt"
	"strconv"
)

// DefaultPreviewRows caps the expandable dataset preview.
const DefaultPreviewRows = 50

// PreviewTable is the display-ready slice of the table: the first rows in
// file order, restricted to the allowlisted columns that are actually
// present, in allowlist order.
type PreviewTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func Preview(t *Table, limit int) PreviewTable {
	if limit <= 0 {
		limit = DefaultPreviewRows
	}

	var p PreviewTable
	var indexes []int
	for _, name := range PreviewColumns {
		if idx := t.ColumnIndex(name); idx >= 0 {
			p.Columns = append(p.Columns, name)
			indexes = append(indexes, idx)
		}
	}
	if t.Empty() || len(indexes) == 0 {
		return p
	}

	for _, row := range t.Rows {
		if len(p.Rows) >= limit {
			break
		}
		cells := make([]string, len(indexes))
		for i, idx := range indexes {
			cells[i] = formatCell(row[idx])
		}
		p.Rows = append(p.Rows, cells)
	}
	return p
}

func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(v)
	}
}
