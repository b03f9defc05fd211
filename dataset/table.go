package dataset

// Table is a columnar table loaded from the processed indicators file.
// It is never mutated after load; renders share the same instance.
type Table struct {
	Columns []string
	Rows    [][]any
}

func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the position of a named column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}
