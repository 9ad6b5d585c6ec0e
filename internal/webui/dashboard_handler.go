package webui

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"net/http"
	"strconv"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/indicators"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type option struct {
	Value    string
	Selected bool
}

type metric struct {
	Label string
	Value string
	Delta string
}

type dashboardPage struct {
	Title         string
	SourceURL     string
	StartYears    []option
	EndYears      []option
	Indicators    []option
	XIndicators   []option
	YIndicators   []option
	RangeError    string
	NoDataMessage string

	Selection    analysis.Selection
	Trend        analysis.TrendView
	TrendChart   string
	Comparison   analysis.ComparisonView
	Metrics      []metric
	CompareChart string
	Relationship analysis.RelationshipView
	RelateChart  string

	Columns []string
	Rows    [][]string
}

func formatYear(year int64) string {
	return strconv.FormatInt(year, 10)
}

// formatCell renders a raw table cell; missing values stay blank.
func formatCell(v float64) string {
	if indicators.IsMissing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yearOptions(years []int64, selected int64) []option {
	options := make([]option, 0, len(years))
	for _, y := range years {
		options = append(options, option{Value: formatYear(y), Selected: y == selected})
	}
	return options
}

func indicatorOptions(names []string, selected string) []option {
	options := make([]option, 0, len(names))
	for _, n := range names {
		options = append(options, option{Value: n, Selected: n == selected})
	}
	return options
}

func hasPresentPoint(points []analysis.Point) bool {
	for _, p := range points {
		if !p.Missing() {
			return true
		}
	}
	return false
}

// hasPresentValue reports whether a relationship series has anything the
// chart can plot.
func hasPresentValue(values []float64) bool {
	for _, v := range values {
		if !indicators.IsMissing(v) && !math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func (webUI *WebUI) buildDashboard(table *indicators.Table, sel analysis.Selection) dashboardPage {
	years := table.Years()
	names := table.Indicators()

	page := dashboardPage{
		Title:         "Nigeria Economic and Demographic Indicators",
		SourceURL:     WorldBankURL,
		StartYears:    yearOptions(years, sel.Start),
		EndYears:      yearOptions(years, sel.End),
		Indicators:    indicatorOptions(names, sel.Indicator),
		XIndicators:   indicatorOptions(names, sel.X),
		YIndicators:   indicatorOptions(names, sel.Y),
		NoDataMessage: analysis.NoDataMessage,
		Selection:     sel,
		Columns:       append([]string{indicators.YearColumn}, names...),
	}

	for _, r := range table.Records() {
		row := make([]string, 0, len(r.Values)+1)
		row = append(row, formatYear(r.Year))
		for _, v := range r.Values {
			row = append(row, formatCell(v))
		}
		page.Rows = append(page.Rows, row)
	}

	if analysis.EndBeforeStart(sel.Start, sel.End) {
		page.RangeError = analysis.RangeMessage
		return page
	}

	query := selectionQuery(sel).Encode()

	page.Trend = analysis.Trend(table, sel)
	if !page.Trend.Empty && hasPresentPoint(page.Trend.Points) {
		page.TrendChart = "/charts/trend.svg?" + query
	}

	page.Comparison = analysis.Compare(table, sel)
	var delta string
	if page.Comparison.HasChange {
		delta = page.Comparison.ChangeLabel
	}
	page.Metrics = []metric{
		{Label: formatYear(sel.Start) + " Value", Value: page.Comparison.Start.Label},
		{Label: formatYear(sel.End) + " Value", Value: page.Comparison.End.Label, Delta: delta},
	}
	if page.Comparison.Start.Present || page.Comparison.End.Present {
		page.CompareChart = "/charts/comparison.svg?" + query
	}

	page.Relationship = analysis.Relationship(table, sel)
	if !page.Relationship.Empty &&
		(hasPresentValue(page.Relationship.X.Values) || hasPresentValue(page.Relationship.Y.Values)) {
		page.RelateChart = "/charts/relationship.svg?" + query
	}

	for _, view := range []string{"trend", "comparison", "relationship"} {
		webUI.observeView(view)
	}
	return page
}

func (webUI *WebUI) observeView(view string) {
	if webUI.Metrics != nil {
		webUI.Metrics.ObserveView(view)
	}
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	table, err := webUI.Table()
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	page := webUI.buildDashboard(table, selectionFromQuery(r.URL.Query(), table))

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		webUI.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
