package indicators

import "math"

// Missing returns the marker stored for a value that was not reported.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Record is one year of indicator values. Values are indexed by the
// owning table's indicator positions.
type Record struct {
	Year   int64
	Values []float64
}

// Value returns the i-th indicator value, or the missing marker when i is out of range.
func (r Record) Value(i int) float64 {
	if i < 0 || i >= len(r.Values) {
		return Missing()
	}
	return r.Values[i]
}

// Table is the prepared indicator dataset. It is immutable once built.
type Table struct {
	indicators []string
	index      map[string]int
	records    []Record
}

func newTable(indicators []string, records []Record) *Table {
	index := make(map[string]int, len(indicators))
	for i, name := range indicators {
		index[name] = i
	}
	return &Table{indicators: indicators, index: index, records: records}
}

// NewTable builds a table from already prepared records. Each record must
// carry one value per indicator.
func NewTable(indicators []string, records []Record) *Table {
	names := append([]string(nil), indicators...)
	rows := make([]Record, len(records))
	for i, r := range records {
		values := make([]float64, len(names))
		for j := range values {
			values[j] = r.Value(j)
		}
		rows[i] = Record{Year: r.Year, Values: values}
	}
	return newTable(names, rows)
}

// Indicators returns the indicator display names in display order.
func (t *Table) Indicators() []string {
	return append([]string(nil), t.indicators...)
}

func (t *Table) Len() int { return len(t.records) }

// Records returns the records in source order. The value slices are shared
// and must not be modified.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

func (t *Table) IndexOf(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

func (t *Table) HasIndicator(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Years returns the year of every record in source order.
func (t *Table) Years() []int64 {
	years := make([]int64, len(t.records))
	for i, r := range t.records {
		years[i] = r.Year
	}
	return years
}

// Column returns a copy of the named indicator's values in source order.
func (t *Table) Column(name string) ([]float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	values := make([]float64, len(t.records))
	for j, r := range t.records {
		values[j] = r.Value(i)
	}
	return values, true
}

// YearBounds returns the smallest and largest observed year.
func (t *Table) YearBounds() (minYear, maxYear int64, ok bool) {
	if len(t.records) == 0 {
		return 0, 0, false
	}
	minYear, maxYear = t.records[0].Year, t.records[0].Year
	for _, r := range t.records[1:] {
		minYear = min(minYear, r.Year)
		maxYear = max(maxYear, r.Year)
	}
	return minYear, maxYear, true
}

// ValueAt looks up the named indicator at exactly year. Only the first record
// for that year is considered. It reports false when the year or indicator is
// absent or the value is missing.
func (t *Table) ValueAt(year int64, name string) (float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return Missing(), false
	}
	for _, r := range t.records {
		if r.Year != year {
			continue
		}
		v := r.Value(i)
		return v, !IsMissing(v)
	}
	return Missing(), false
}

// FilterYears returns the records whose year lies in [start, end], in source order.
func (t *Table) FilterYears(start, end int64) *Table {
	var rows []Record
	for _, r := range t.records {
		if r.Year >= start && r.Year <= end {
			rows = append(rows, r)
		}
	}
	return &Table{indicators: t.indicators, index: t.index, records: rows}
}
