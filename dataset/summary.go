package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Summary is the derived snapshot behind the metric cards. It is
// recomputed from the loaded table, never persisted; absent columns
// degrade to zero values instead of erroring.
type Summary struct {
	Countries  int      `json:"countries"`
	Indicators []string `json:"indicators"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	HasYears   bool     `json:"has_years"`
	Rows       int      `json:"rows"`
}

func Summarize(t *Table) Summary {
	s := Summary{Rows: t.NumRows()}
	if t.Empty() {
		return s
	}
	schema := SchemaOf(t)

	if schema.HasCountryCode() {
		codes := map[string]bool{}
		for _, row := range t.Rows {
			if code, ok := cellString(row[schema.CountryCode]); ok {
				codes[code] = true
			}
		}
		s.Countries = len(codes)
	}

	if schema.HasIndicatorName() {
		seen := map[string]bool{}
		for _, row := range t.Rows {
			if name, ok := cellString(row[schema.IndicatorName]); ok && !seen[name] {
				seen[name] = true
				s.Indicators = append(s.Indicators, name)
			}
		}
		sort.Strings(s.Indicators)
	}

	if schema.HasYear() {
		for _, row := range t.Rows {
			year, ok := cellYear(row[schema.Year])
			if !ok {
				continue
			}
			if !s.HasYears {
				s.YearMin, s.YearMax = year, year
				s.HasYears = true
				continue
			}
			if year < s.YearMin {
				s.YearMin = year
			}
			if year > s.YearMax {
				s.YearMax = year
			}
		}
	}

	return s
}

func cellString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(s) == "" {
			return "", false
		}
		return s, true
	default:
		return fmt.Sprint(v), true
	}
}

func cellYear(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
