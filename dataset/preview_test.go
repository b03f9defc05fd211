package dataset

import (
	"fmt"
	"reflect"
	"testing"
)

func TestPreviewRowCap(t *testing.T) {
	tbl := &Table{Columns: []string{"country_code"}}
	for i := 0; i < 60; i++ {
		tbl.Rows = append(tbl.Rows, []any{fmt.Sprintf("C%02d", i)})
	}

	p := Preview(tbl, 50)
	if len(p.Rows) != 50 {
		t.Fatalf("preview rows = %d, want 50", len(p.Rows))
	}
	// File order preserved: first 50, not any 50
	if p.Rows[0][0] != "C00" || p.Rows[49][0] != "C49" {
		t.Errorf("preview rows out of file order: first=%s last=%s", p.Rows[0][0], p.Rows[49][0])
	}
}

func TestPreviewShowsAllRowsUnderCap(t *testing.T) {
	p := Preview(sampleTable(), 50)
	if len(p.Rows) != 3 {
		t.Errorf("preview rows = %d, want 3", len(p.Rows))
	}
}

func TestPreviewColumnOrderIsAllowlistOrder(t *testing.T) {
	// Native order scrambled, plus a column outside the allowlist.
	tbl := &Table{
		Columns: []string{"value", "internal_id", "year", "country"},
		Rows: [][]any{
			{1.5, int64(99), int64(2020), "France"},
		},
	}

	p := Preview(tbl, 50)
	if want := []string{"country", "year", "value"}; !reflect.DeepEqual(p.Columns, want) {
		t.Fatalf("preview columns = %v, want %v", p.Columns, want)
	}
	if want := []string{"France", "2020", "1.5"}; !reflect.DeepEqual(p.Rows[0], want) {
		t.Errorf("preview row = %v, want %v", p.Rows[0], want)
	}
}

func TestPreviewEmptyTable(t *testing.T) {
	p := Preview(&Table{}, 50)
	if len(p.Columns) != 0 || len(p.Rows) != 0 {
		t.Errorf("empty table preview = %+v", p)
	}
}

func TestPreviewNilCellsRenderBlank(t *testing.T) {
	tbl := &Table{
		Columns: []string{"country", "value"},
		Rows:    [][]any{{"US", nil}},
	}
	p := Preview(tbl, 50)
	if p.Rows[0][1] != "" {
		t.Errorf("nil cell = %q, want empty string", p.Rows[0][1])
	}
}
