// Package view builds structured page descriptions from loaded data.
// Nothing here touches HTTP or templates, so the view models are
// unit-testable without a web host.
package view

import (
	"fmt"
	"strconv"

	"econdash/dataset"
)

const YearsPlaceholder = "—"

type Metric struct {
	Label string
	Value string
}

type Section struct {
	Title string
	Body  string
}

type Card struct {
	Title string
	Body  string
}

// HomeView describes the landing page. Halted views carry only the
// warning; ready views carry the metrics, prose and preview.
type HomeView struct {
	Title      string
	Halted     bool
	Warning    string
	Metrics    []Metric
	About      Section
	Usage      Section
	Tip        string
	Cards      []Card
	DataSource Section
	Preview    dataset.PreviewTable
	Caption    string
}

// BuildHome maps the loaded table and its summary to the landing page.
// An empty table halts the render with the onboarding warning.
func BuildHome(t *dataset.Table, sum dataset.Summary, datasetPath string, previewRows int) *HomeView {
	hv := &HomeView{Title: "Global Economy Dashboard"}

	if t.Empty() {
		hv.Halted = true
		hv.Warning = fmt.Sprintf(
			"Dataset not found at: %s\n\nTo generate it locally, run:\n• python scripts/etl_worldbank.py\n\nThen re-run the app.",
			datasetPath)
		return hv
	}

	years := YearsPlaceholder
	if sum.HasYears {
		years = fmt.Sprintf("%d → %d", sum.YearMin, sum.YearMax)
	}

	hv.Metrics = []Metric{
		{Label: "Countries", Value: groupInt(sum.Countries)},
		{Label: "Indicators", Value: groupInt(len(sum.Indicators))},
		{Label: "Years", Value: years},
		{Label: "Rows", Value: groupInt(sum.Rows)},
	}

	hv.About = Section{
		Title: "What this project is about",
		Body: `A portfolio-grade data product for exploring global macroeconomic data:
an ETL pipeline (API ingestion, cleaning, parquet output), exploratory
analytics across country trends, rankings and cross-indicator analysis,
and interactive dashboards with filters, KPIs, maps and downloads.`,
	}
	hv.Usage = Section{
		Title: "How to use the app",
		Body: `1. Use the Pages menu to switch dashboards.
2. Apply filters (country, indicator, year).
3. Use Download CSV when available to export slices.
4. Compare countries via rankings and maps for fast insights.`,
	}
	hv.Tip = "Tip: start with Macro for country trends, then use Rankings & Map for global context."

	hv.Cards = []Card{
		{
			Title: "📈 Macro Dashboard",
			Body: `Explore a single country over time and compare indicators:
select a country plus multiple indicators, view latest-year KPI
snapshots, plot trends over time, and compare indicators side by side.`,
		},
		{
			Title: "🗺️ Global Rankings & Map",
			Body: `Compare countries globally for any indicator in a selected year:
rank top and bottom countries, visualize results on a world choropleth
map, switch to log scale for skewed indicators, and download slices.`,
		},
		{
			Title: "🧺 Cost of Living & Affordability",
			Body: `Analyze inflation impact and affordability proxies: track inflation
and related cost-of-living indicators, view affordability-style plots,
highlight a country relative to others, and export filtered data.`,
		},
		{
			Title: "🧠 Global Health Index",
			Body: `Build a composite economic health view: compute an index from growth,
inflation and unemployment, normalize indicators with z-scores, adjust
weights, and rank countries on a world map.`,
		},
	}

	hv.DataSource = Section{
		Title: "Data source & transparency",
		Body: `Source: World Bank – World Development Indicators (WDI), accessed via
the World Bank Indicators API by the ETL script and processed into a
unified long-format parquet table. Coverage varies by country and year;
some indicators may be missing for specific years.`,
	}

	hv.Preview = dataset.Preview(t, previewRows)
	hv.Caption = "This dashboard is for informational purposes. Reported values depend on World Bank coverage and may be missing for some country-year combinations."

	return hv
}

// groupInt renders n with thousands separators, e.g. 1234567 -> "1,234,567".
func groupInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
