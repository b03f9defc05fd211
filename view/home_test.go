package view

import (
	"strings"
	"testing"

	"econdash/dataset"
)

func readyTable() *dataset.Table {
	return &dataset.Table{
		Columns: []string{"country", "country_code", "year", "indicator_name", "value", "source"},
		Rows: [][]any{
			{"United States", "US", int64(2000), "GDP", 1.0, "WDI"},
			{"United States", "US", int64(2010), "Inflation", 2.0, "WDI"},
			{"France", "FR", int64(2020), "GDP", 3.0, "WDI"},
		},
	}
}

func TestBuildHomeHalted(t *testing.T) {
	tbl := &dataset.Table{}
	hv := BuildHome(tbl, dataset.Summarize(tbl), "data/processed/econ_option_a.parquet", 50)

	if !hv.Halted {
		t.Fatal("empty table did not halt the view")
	}
	if !strings.Contains(hv.Warning, "data/processed/econ_option_a.parquet") {
		t.Errorf("warning does not name the dataset path: %q", hv.Warning)
	}
	if !strings.Contains(hv.Warning, "scripts/etl_worldbank.py") {
		t.Errorf("warning does not name the ETL command: %q", hv.Warning)
	}
	if len(hv.Metrics) != 0 || len(hv.Preview.Rows) != 0 {
		t.Error("halted view carries metrics or preview")
	}
}

func TestBuildHomeMetricsOrder(t *testing.T) {
	tbl := readyTable()
	hv := BuildHome(tbl, dataset.Summarize(tbl), "econ.parquet", 50)

	if hv.Halted {
		t.Fatal("ready table halted")
	}
	labels := make([]string, len(hv.Metrics))
	for i, m := range hv.Metrics {
		labels[i] = m.Label
	}
	want := []string{"Countries", "Indicators", "Years", "Rows"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("metric order = %v, want %v", labels, want)
		}
	}

	if hv.Metrics[0].Value != "2" {
		t.Errorf("Countries = %s, want 2", hv.Metrics[0].Value)
	}
	if hv.Metrics[1].Value != "2" {
		t.Errorf("Indicators = %s, want 2", hv.Metrics[1].Value)
	}
	if hv.Metrics[2].Value != "2000 → 2020" {
		t.Errorf("Years = %q, want \"2000 → 2020\"", hv.Metrics[2].Value)
	}
	if hv.Metrics[3].Value != "3" {
		t.Errorf("Rows = %s, want 3", hv.Metrics[3].Value)
	}
}

func TestBuildHomeYearsPlaceholder(t *testing.T) {
	tbl := &dataset.Table{
		Columns: []string{"country_code"},
		Rows:    [][]any{{"US"}},
	}
	hv := BuildHome(tbl, dataset.Summarize(tbl), "econ.parquet", 50)

	if hv.Metrics[2].Value != YearsPlaceholder {
		t.Errorf("Years = %q, want placeholder %q", hv.Metrics[2].Value, YearsPlaceholder)
	}
}

func TestBuildHomePreviewWired(t *testing.T) {
	tbl := readyTable()
	hv := BuildHome(tbl, dataset.Summarize(tbl), "econ.parquet", 2)

	if len(hv.Preview.Rows) != 2 {
		t.Errorf("preview rows = %d, want 2 (limit)", len(hv.Preview.Rows))
	}
	if len(hv.Cards) != 4 {
		t.Errorf("dashboard cards = %d, want 4", len(hv.Cards))
	}
}

func TestGroupInt(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-4200:   "-4,200",
	}
	for n, want := range cases {
		if got := groupInt(n); got != want {
			t.Errorf("groupInt(%d) = %q, want %q", n, got, want)
		}
	}
}
