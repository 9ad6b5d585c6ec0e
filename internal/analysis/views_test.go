package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.nigeriaindicators.org/internal/indicators"
)

func TestTrend(t *testing.T) {
	table := fixtureTable()

	t.Run("filters inclusive range", func(t *testing.T) {
		view := Trend(table, Selection{Start: 1999, End: 2001, Indicator: indicators.GDP})

		assert.False(t, view.Empty)
		require.Len(t, view.Points, 3)
		assert.Equal(t, Point{Year: 1999, Value: 100}, view.Points[0])
		assert.Equal(t, Point{Year: 2000, Value: 120}, view.Points[1])
		assert.Equal(t, int64(2001), view.Points[2].Year)
		assert.True(t, view.Points[2].Missing())
	})

	t.Run("empty range", func(t *testing.T) {
		view := Trend(table, Selection{Start: 2010, End: 2015, Indicator: indicators.GDP})
		assert.True(t, view.Empty)
		assert.Empty(t, view.Points)
	})

	t.Run("unknown indicator yields missing points", func(t *testing.T) {
		view := Trend(table, Selection{Start: 1998, End: 1998, Indicator: "Inflation"})
		require.Len(t, view.Points, 1)
		assert.True(t, view.Points[0].Missing())
	})
}

func TestCompare(t *testing.T) {
	table := fixtureTable()

	t.Run("reports percent change", func(t *testing.T) {
		view := Compare(table, Selection{Start: 1999, End: 2002, Indicator: indicators.GDP})

		assert.True(t, view.Start.Present)
		assert.Equal(t, 100.0, view.Start.Value)
		assert.Equal(t, "100.00", view.Start.Label)
		assert.True(t, view.End.Present)
		assert.Equal(t, "150.00", view.End.Label)
		assert.True(t, view.HasChange)
		assert.InDelta(t, 50.0, view.Change, 1e-9)
		assert.Equal(t, "50.00%", view.ChangeLabel)
		assert.Equal(t, "1999: 100.00", view.Start.BarLabel())
		assert.Equal(t, "2002: 150.00", view.End.BarLabel())
	})

	t.Run("zero start value omits percent change", func(t *testing.T) {
		view := Compare(table, Selection{Start: 1998, End: 2002, Indicator: indicators.GDP})

		assert.True(t, view.Start.Present)
		assert.Equal(t, 0.0, view.Start.Value)
		assert.False(t, view.HasChange)
		assert.Empty(t, view.ChangeLabel)
	})

	t.Run("missing value is treated as absent", func(t *testing.T) {
		view := Compare(table, Selection{Start: 1999, End: 2001, Indicator: indicators.GDP})

		assert.False(t, view.End.Present)
		assert.Equal(t, "No data for 2001", view.End.Label)
		assert.Equal(t, "2001: N/A", view.End.BarLabel())
		assert.False(t, view.HasChange)
	})

	t.Run("absent year", func(t *testing.T) {
		view := Compare(table, Selection{Start: 1990, End: 2002, Indicator: indicators.GDP})

		assert.False(t, view.Start.Present)
		assert.Equal(t, "No data for 1990", view.Start.Label)
		assert.True(t, view.End.Present)
		assert.False(t, view.HasChange)
	})
}

func TestRelationship(t *testing.T) {
	table := fixtureTable()

	t.Run("normalizes both series independently", func(t *testing.T) {
		view := Relationship(table, Selection{Start: 1998, End: 2002, X: indicators.GDP, Y: indicators.PopulationGrowth})

		assert.False(t, view.Empty)
		assert.Equal(t, []int64{1998, 1999, 2000, 2001, 2002}, view.Years)

		assert.Equal(t, indicators.GDP, view.X.Indicator)
		assert.True(t, view.X.Scaled)
		require.Len(t, view.X.Values, 5)
		assert.InDelta(t, 0.0, view.X.Values[0], 1e-12)
		assert.InDelta(t, 100.0/150.0, view.X.Values[1], 1e-12)
		assert.True(t, indicators.IsMissing(view.X.Values[3]))
		assert.InDelta(t, 1.0, view.X.Values[4], 1e-12)

		assert.True(t, view.Y.Scaled)
		assert.InDeltaSlice(t, []float64{0, 0.5, 1, 0.5, 0}, view.Y.Values, 1e-12)
	})

	t.Run("normalizes over the filtered range only", func(t *testing.T) {
		view := Relationship(table, Selection{Start: 1999, End: 2000, X: indicators.GDP, Y: indicators.PopulationGrowth})
		assert.InDeltaSlice(t, []float64{0, 1}, view.X.Values, 1e-12)
	})

	t.Run("constant series passes through unscaled", func(t *testing.T) {
		view := Relationship(table, Selection{Start: 1998, End: 2002, X: indicators.FertilityRate, Y: indicators.GDP})
		assert.False(t, view.X.Scaled)
		assert.Equal(t, []float64{5, 5, 5, 5, 5}, view.X.Values)
	})

	t.Run("empty range", func(t *testing.T) {
		view := Relationship(table, Selection{Start: 2010, End: 2012, X: indicators.GDP, Y: indicators.PopulationGrowth})
		assert.True(t, view.Empty)
		assert.Empty(t, view.Years)
	})
}
