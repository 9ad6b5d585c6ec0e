package charts

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/indicators"
)

// ErrNoData is returned when a view has nothing to plot.
var ErrNoData = errors.New("no data available for the selected range")

const (
	Width  = 960
	Height = 420

	maxYearTicks = 12
)

var (
	gridStyle = chart.Style{
		StrokeColor: drawing.ColorFromHex("e5e5e5"),
		StrokeWidth: 1,
	}
	seriesColors = []drawing.Color{chart.ColorBlue, chart.ColorOrange}
)

// lineStyle draws a connected series with point markers.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}

func background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24}}
}

func magnitudeFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return analysis.FormatLargeNumbers(f)
	}
	return fmt.Sprintf("%v", v)
}

func normalizedFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return fmt.Sprintf("%v", v)
}

// presentSeries drops missing values so gaps never reach the renderer.
func presentSeries(years []int64, values []float64) (xs, ys []float64) {
	for i, v := range values {
		if i >= len(years) || indicators.IsMissing(v) || math.IsInf(v, 0) {
			continue
		}
		xs = append(xs, float64(years[i]))
		ys = append(ys, v)
	}
	return xs, ys
}

// paddedRange spans values and never collapses to zero width, which the
// renderer rejects.
func paddedRange(values ...[]float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, series := range values {
		for _, v := range series {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	if hi == lo {
		pad := math.Max(math.Abs(lo)*0.1, 1)
		return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func yearAxis(xs []float64) chart.XAxis {
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	step := int(math.Ceil((hi - lo + 1) / maxYearTicks))
	step = max(step, 1)

	var ticks []chart.Tick
	for year := int(lo); year <= int(hi); year += step {
		ticks = append(ticks, chart.Tick{Value: float64(year), Label: fmt.Sprintf("%d", year)})
	}

	return chart.XAxis{
		Name:           indicators.YearColumn,
		Range:          &chart.ContinuousRange{Min: lo, Max: hi},
		Ticks:          ticks,
		GridMajorStyle: gridStyle,
	}
}

// RenderTrend writes the trend line of view as SVG.
func RenderTrend(w io.Writer, view analysis.TrendView) error {
	years := make([]int64, len(view.Points))
	values := make([]float64, len(view.Points))
	for i, p := range view.Points {
		years[i], values[i] = p.Year, p.Value
	}

	xs, ys := presentSeries(years, values)
	if view.Empty || len(xs) == 0 {
		return ErrNoData
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s Trend (%d-%d)", view.Indicator, view.Start, view.End),
		Width:      Width,
		Height:     Height,
		Background: background(),
		XAxis:      yearAxis(xs),
		YAxis: chart.YAxis{
			Name:           view.Indicator,
			Range:          paddedRange(ys),
			ValueFormatter: magnitudeFormatter,
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    view.Indicator,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(seriesColors[0]),
			},
		},
	}

	return graph.Render(chart.SVG, w)
}

// RenderComparison writes the two-bar start/end comparison as SVG. An
// absent endpoint is drawn as an empty bar labeled N/A.
func RenderComparison(w io.Writer, view analysis.ComparisonView) error {
	var values []float64
	bars := make([]chart.Value, 0, 2)
	for i, e := range []analysis.Endpoint{view.Start, view.End} {
		v := 0.0
		if e.Present {
			v = e.Value
		}
		values = append(values, v)
		bars = append(bars, chart.Value{
			Label: e.BarLabel(),
			Value: v,
			Style: chart.Style{
				FillColor:   seriesColors[i%len(seriesColors)],
				StrokeColor: seriesColors[i%len(seriesColors)],
				StrokeWidth: 1,
			},
		})
	}

	// bars grow from zero, so the range must include it
	yRange := paddedRange(values, []float64{0})

	graph := chart.BarChart{
		Title:        fmt.Sprintf("%s Comparison (%d vs %d)", view.Indicator, view.Start.Year, view.End.Year),
		Width:        Width,
		Height:       Height,
		BarWidth:     160,
		Background:   background(),
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Name:           view.Indicator + " Value",
			Range:          yRange,
			ValueFormatter: magnitudeFormatter,
			GridMajorStyle: gridStyle,
		},
		Bars: bars,
	}

	return graph.Render(chart.SVG, w)
}

// RenderRelationship writes both normalized series on one chart as SVG.
func RenderRelationship(w io.Writer, view analysis.RelationshipView) error {
	if view.Empty {
		return ErrNoData
	}

	var series []chart.Series
	var allX, allY [][]float64
	for i, s := range []analysis.Series{view.X, view.Y} {
		xs, ys := presentSeries(view.Years, s.Values)
		if len(xs) == 0 {
			continue
		}
		allX = append(allX, xs)
		allY = append(allY, ys)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Indicator,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(seriesColors[i]),
		})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	var xs []float64
	for _, x := range allX {
		xs = append(xs, x...)
	}

	yRange := &chart.ContinuousRange{Min: 0, Max: 1}
	if !view.X.Scaled || !view.Y.Scaled {
		yRange = paddedRange(allY...)
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s vs %s (Normalized)", view.X.Indicator, view.Y.Indicator),
		Width:      Width,
		Height:     Height,
		Background: background(),
		XAxis:      yearAxis(xs),
		YAxis: chart.YAxis{
			Name:           "Normalized Value",
			Range:          yRange,
			ValueFormatter: normalizedFormatter,
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.SVG, w)
}
