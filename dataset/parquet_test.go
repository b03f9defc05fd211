package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

func writeTempParquet(t *testing.T) string {
	t.Helper()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "country", Type: arrow.BinaryTypes.String},
		{Name: "country_code", Type: arrow.BinaryTypes.String},
		{Name: "year", Type: arrow.PrimitiveTypes.Int64},
		{Name: "value", Type: arrow.PrimitiveTypes.Float64},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	b.Field(0).(*array.StringBuilder).AppendValues([]string{"United States", "France"}, nil)
	b.Field(1).(*array.StringBuilder).AppendValues([]string{"US", "FR"}, nil)
	b.Field(2).(*array.Int64Builder).AppendValues([]int64{2019, 2020}, nil)
	b.Field(3).(*array.Float64Builder).AppendValues([]float64{21.4, 2.6}, nil)

	rec := b.NewRecord()
	defer rec.Release()
	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	path := filepath.Join(t.TempDir(), "econ.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := pqarrow.WriteTable(tbl, f, 1024, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()); err != nil {
		t.Fatalf("write parquet: %v", err)
	}
	return path
}

func TestReadFileParquet(t *testing.T) {
	path := writeTempParquet(t)

	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.NumRows())
	}
	if !tbl.HasColumn("country_code") || !tbl.HasColumn("year") {
		t.Fatalf("columns = %v", tbl.Columns)
	}
	if got := tbl.Rows[0][1]; got != "US" {
		t.Errorf("country_code = %v, want US", got)
	}
	if got := tbl.Rows[1][2]; got != int64(2020) {
		t.Errorf("year = %v (%T), want int64(2020)", got, got)
	}
	if got := tbl.Rows[0][3]; got != 21.4 {
		t.Errorf("value = %v, want 21.4", got)
	}
}

func TestReadFileZeroByteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !tbl.Empty() {
		t.Errorf("zero-byte file produced %d rows", tbl.NumRows())
	}
}
