package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ReadFile loads the columnar file at path into a Table. A missing file is
// not an error: it yields the empty table, and the caller's render branch
// handles it as the onboarding case.
func ReadFile(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	default:
		return readParquet(path)
	}
}

func readParquet(path string) (*Table, error) {
	// Parquet needs random access, so the file is read fully up front.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	if len(data) == 0 {
		return &Table{}, nil
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("arrow reader for %s: %w", path, err)
	}

	tbl, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	defer tbl.Release()

	schema := tbl.Schema()
	columns := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		columns[i] = field.Name
	}

	out := &Table{Columns: columns}
	if tbl.NumRows() == 0 {
		return out, nil
	}

	reader := array.NewTableReader(tbl, 0)
	defer reader.Release()

	for reader.Next() {
		batch := reader.Record()
		numRows := int(batch.NumRows())
		for i := 0; i < numRows; i++ {
			row := make([]any, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = arrowValue(col, i)
			}
			out.Rows = append(out.Rows, row)
		}
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("read rows %s: %w", path, err)
	}
	return out, nil
}

func arrowValue(col arrow.Array, i int) any {
	if col.IsNull(i) {
		return nil
	}
	switch a := col.(type) {
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Boolean:
		return a.Value(i)
	case *array.Int8:
		return int64(a.Value(i))
	case *array.Int16:
		return int64(a.Value(i))
	case *array.Int32:
		return int64(a.Value(i))
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return int64(a.Value(i))
	case *array.Uint16:
		return int64(a.Value(i))
	case *array.Uint32:
		return int64(a.Value(i))
	case *array.Uint64:
		return int64(a.Value(i))
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	default:
		return col.ValueStr(i)
	}
}
