package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "econ.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileCSV(t *testing.T) {
	path := writeTempCSV(t, "country,country_code,year,value\nFrance,FR,2020,2.5\nGermany,DE,2021,\n")

	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.NumRows())
	}
	if got := tbl.Rows[0][2]; got != int64(2020) {
		t.Errorf("year cell = %v (%T), want int64(2020)", got, got)
	}
	if got := tbl.Rows[0][3]; got != 2.5 {
		t.Errorf("value cell = %v, want 2.5", got)
	}
	if tbl.Rows[1][3] != nil {
		t.Errorf("blank cell = %v, want nil", tbl.Rows[1][3])
	}
}

func TestReadFileCSVHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "country,year\n")
	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !tbl.Empty() {
		t.Errorf("header-only csv produced %d rows", tbl.NumRows())
	}
	if !tbl.HasColumn("year") {
		t.Error("schema lost for header-only csv")
	}
}
