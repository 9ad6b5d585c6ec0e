package analysis

import (
	"fmt"

	"dashboard.nigeriaindicators.org/internal/indicators"
)

const NoDataMessage = "No data available for the selected range."

// Point is one year of a series. Value is the missing marker when unreported.
type Point struct {
	Year  int64
	Value float64
}

func (p Point) Missing() bool { return indicators.IsMissing(p.Value) }

type TrendView struct {
	Indicator string
	Start     int64
	End       int64
	Points    []Point
	Empty     bool
}

// Trend plots the chosen indicator over the selected years.
func Trend(table *indicators.Table, sel Selection) TrendView {
	filtered := table.FilterYears(sel.Start, sel.End)
	view := TrendView{
		Indicator: sel.Indicator,
		Start:     sel.Start,
		End:       sel.End,
		Empty:     filtered.Len() == 0,
	}

	i, known := filtered.IndexOf(sel.Indicator)
	for _, r := range filtered.Records() {
		v := indicators.Missing()
		if known {
			v = r.Value(i)
		}
		view.Points = append(view.Points, Point{Year: r.Year, Value: v})
	}
	return view
}

// Endpoint is one side of the year comparison.
type Endpoint struct {
	Year    int64
	Value   float64
	Present bool
	// Label is the formatted headline, or a "No data for <year>" notice.
	Label string
}

type ComparisonView struct {
	Indicator string
	Start     Endpoint
	End       Endpoint
	// Change is the percent change from start to end; HasChange is false
	// when either endpoint is absent or the start value is zero.
	Change      float64
	HasChange   bool
	ChangeLabel string
}

// Compare looks up the indicator at exactly the start and end years.
func Compare(table *indicators.Table, sel Selection) ComparisonView {
	start := endpoint(table, sel.Start, sel.Indicator)
	end := endpoint(table, sel.End, sel.Indicator)

	view := ComparisonView{Indicator: sel.Indicator, Start: start, End: end}
	if change, ok := PercentChange(start.Value, end.Value, start.Present, end.Present); ok {
		view.Change = change
		view.HasChange = true
		view.ChangeLabel = FormatPercent(change)
	}
	return view
}

func endpoint(table *indicators.Table, year int64, name string) Endpoint {
	v, ok := table.ValueAt(year, name)
	e := Endpoint{Year: year, Value: v, Present: ok}
	if ok {
		e.Label = FormatLargeNumbers(v)
	} else {
		e.Label = fmt.Sprintf("No data for %d", year)
	}
	return e
}

// BarLabel is the text drawn on the endpoint's bar.
func (e Endpoint) BarLabel() string {
	if !e.Present {
		return fmt.Sprintf("%d: %s", e.Year, FormatLargeNumbers(indicators.Missing()))
	}
	return fmt.Sprintf("%d: %s", e.Year, FormatLargeNumbers(e.Value))
}

// Series is one normalized indicator of the relationship view.
type Series struct {
	Indicator string
	Values    []float64
	// Scaled is false when the series was constant and passed through unscaled.
	Scaled bool
}

type RelationshipView struct {
	Start int64
	End   int64
	Years []int64
	X     Series
	Y     Series
	Empty bool
}

// Relationship min-max normalizes two indicators independently over the
// selected years so they can share one axis.
func Relationship(table *indicators.Table, sel Selection) RelationshipView {
	filtered := table.FilterYears(sel.Start, sel.End)
	return RelationshipView{
		Start: sel.Start,
		End:   sel.End,
		Years: filtered.Years(),
		X:     normalizedSeries(filtered, sel.X),
		Y:     normalizedSeries(filtered, sel.Y),
		Empty: filtered.Len() == 0,
	}
}

func normalizedSeries(table *indicators.Table, name string) Series {
	values, ok := table.Column(name)
	if !ok {
		values = make([]float64, table.Len())
		for i := range values {
			values[i] = indicators.Missing()
		}
	}
	normalized, scaled := minMaxNormalize(values)
	return Series{Indicator: name, Values: normalized, Scaled: scaled}
}
