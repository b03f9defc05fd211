package dataset

// Expected column names in the long-format indicators table. Not every
// column is guaranteed present; derivations check the Schema first.
const (
	ColCountry       = "country"
	ColCountryCode   = "country_code"
	ColYear          = "year"
	ColIndicatorName = "indicator_name"
	ColValue         = "value"
	ColSource        = "source"
)

// PreviewColumns is the fixed preview allowlist, in render order.
var PreviewColumns = []string{
	ColCountry,
	ColCountryCode,
	ColYear,
	ColIndicatorName,
	ColValue,
	ColSource,
}

// Schema records the position of each expected column, -1 when absent.
// It is the single column-presence check; everything downstream consumes
// it instead of probing the table ad hoc.
type Schema struct {
	Country       int
	CountryCode   int
	Year          int
	IndicatorName int
	Value         int
	Source        int
}

func SchemaOf(t *Table) Schema {
	return Schema{
		Country:       t.ColumnIndex(ColCountry),
		CountryCode:   t.ColumnIndex(ColCountryCode),
		Year:          t.ColumnIndex(ColYear),
		IndicatorName: t.ColumnIndex(ColIndicatorName),
		Value:         t.ColumnIndex(ColValue),
		Source:        t.ColumnIndex(ColSource),
	}
}

func (s Schema) HasCountryCode() bool   { return s.CountryCode >= 0 }
func (s Schema) HasYear() bool          { return s.Year >= 0 }
func (s Schema) HasIndicatorName() bool { return s.IndicatorName >= 0 }
