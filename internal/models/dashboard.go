package models

import (
	"math"
	"strconv"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/indicators"
)

// NullableFloat maps the missing marker (and non-finite values) to JSON null.
func NullableFloat(v float64) *float64 {
	if indicators.IsMissing(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nullableFloats(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = NullableFloat(v)
	}
	return out
}

type SelectionModel struct {
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Indicator string `json:"indicator"`
	X         string `json:"x"`
	Y         string `json:"y"`
}

func NewSelectionModel(sel analysis.Selection) SelectionModel {
	return SelectionModel{Start: sel.Start, End: sel.End, Indicator: sel.Indicator, X: sel.X, Y: sel.Y}
}

// IndicatorsEntry describes what the controls may choose from.
type IndicatorsEntry struct {
	Indicators []string       `json:"indicators"`
	MinYear    int64          `json:"minYear"`
	MaxYear    int64          `json:"maxYear"`
	Defaults   SelectionModel `json:"defaults"`
}

func NewIndicatorsEntry(table *indicators.Table) IndicatorsEntry {
	minYear, maxYear, _ := table.YearBounds()
	return IndicatorsEntry{
		Indicators: table.Indicators(),
		MinYear:    minYear,
		MaxYear:    maxYear,
		Defaults:   NewSelectionModel(analysis.DefaultSelection(table)),
	}
}

// TableRow renders Year as text so clients do not apply number formatting to it.
type TableRow struct {
	Year   string     `json:"year"`
	Values []*float64 `json:"values"`
}

type TableModel struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

func NewTableModel(table *indicators.Table) TableModel {
	model := TableModel{
		Columns: table.Indicators(),
		Rows:    make([]TableRow, 0, table.Len()),
	}
	for _, r := range table.Records() {
		model.Rows = append(model.Rows, TableRow{
			Year:   strconv.FormatInt(r.Year, 10),
			Values: nullableFloats(r.Values),
		})
	}
	return model
}

type PointModel struct {
	Year  int64    `json:"year"`
	Value *float64 `json:"value"`
}

type TrendModel struct {
	Indicator string       `json:"indicator"`
	Start     int64        `json:"start"`
	End       int64        `json:"end"`
	Points    []PointModel `json:"points"`
	Empty     bool         `json:"empty"`
	Message   string       `json:"message,omitempty"`
}

func NewTrendModel(view analysis.TrendView) TrendModel {
	model := TrendModel{
		Indicator: view.Indicator,
		Start:     view.Start,
		End:       view.End,
		Points:    make([]PointModel, 0, len(view.Points)),
		Empty:     view.Empty,
	}
	for _, p := range view.Points {
		model.Points = append(model.Points, PointModel{Year: p.Year, Value: NullableFloat(p.Value)})
	}
	if view.Empty {
		model.Message = analysis.NoDataMessage
	}
	return model
}

type EndpointModel struct {
	Year     int64    `json:"year"`
	Value    *float64 `json:"value"`
	Label    string   `json:"label"`
	BarLabel string   `json:"barLabel"`
}

func newEndpointModel(e analysis.Endpoint) EndpointModel {
	model := EndpointModel{Year: e.Year, Label: e.Label, BarLabel: e.BarLabel()}
	if e.Present {
		model.Value = NullableFloat(e.Value)
	}
	return model
}

type ComparisonModel struct {
	Indicator          string        `json:"indicator"`
	Start              EndpointModel `json:"start"`
	End                EndpointModel `json:"end"`
	PercentChange      *float64      `json:"percentChange"`
	PercentChangeLabel string        `json:"percentChangeLabel,omitempty"`
}

func NewComparisonModel(view analysis.ComparisonView) ComparisonModel {
	model := ComparisonModel{
		Indicator: view.Indicator,
		Start:     newEndpointModel(view.Start),
		End:       newEndpointModel(view.End),
	}
	if view.HasChange {
		model.PercentChange = NullableFloat(view.Change)
		model.PercentChangeLabel = view.ChangeLabel
	}
	return model
}

type SeriesModel struct {
	Indicator string     `json:"indicator"`
	Values    []*float64 `json:"values"`
	Scaled    bool       `json:"scaled"`
}

type RelationshipModel struct {
	Start   int64       `json:"start"`
	End     int64       `json:"end"`
	Years   []int64     `json:"years"`
	X       SeriesModel `json:"x"`
	Y       SeriesModel `json:"y"`
	Empty   bool        `json:"empty"`
	Message string      `json:"message,omitempty"`
}

func NewRelationshipModel(view analysis.RelationshipView) RelationshipModel {
	model := RelationshipModel{
		Start: view.Start,
		End:   view.End,
		Years: append([]int64{}, view.Years...),
		X:     SeriesModel{Indicator: view.X.Indicator, Values: nullableFloats(view.X.Values), Scaled: view.X.Scaled},
		Y:     SeriesModel{Indicator: view.Y.Indicator, Values: nullableFloats(view.Y.Values), Scaled: view.Y.Scaled},
		Empty: view.Empty,
	}
	if view.Empty {
		model.Message = analysis.NoDataMessage
	}
	return model
}
