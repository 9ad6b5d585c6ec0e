package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dashboard.nigeriaindicators.org/internal/indicators"
)

func TestEndBeforeStart(t *testing.T) {
	assert.True(t, EndBeforeStart(2005, 2000))
	assert.False(t, EndBeforeStart(2000, 2005))
	assert.False(t, EndBeforeStart(2000, 2000))
}

func TestDefaultPair(t *testing.T) {
	t.Run("prefers GDP and population growth", func(t *testing.T) {
		x, y := DefaultPair(indicators.DisplayNames())
		assert.Equal(t, indicators.GDP, x)
		assert.Equal(t, indicators.PopulationGrowth, y)
	})

	t.Run("falls back to first two by display order", func(t *testing.T) {
		x, y := DefaultPair([]string{indicators.FertilityRate, indicators.LifeExpectancy, indicators.GDP})
		assert.Equal(t, indicators.FertilityRate, x)
		assert.Equal(t, indicators.LifeExpectancy, y)
	})

	t.Run("single indicator is used twice", func(t *testing.T) {
		x, y := DefaultPair([]string{indicators.GDP})
		assert.Equal(t, indicators.GDP, x)
		assert.Equal(t, indicators.GDP, y)
	})

	t.Run("no indicators", func(t *testing.T) {
		x, y := DefaultPair(nil)
		assert.Empty(t, x)
		assert.Empty(t, y)
	})
}

func TestDefaultSelectionClampsToObservedYears(t *testing.T) {
	sel := DefaultSelection(fixtureTable())

	assert.Equal(t, int64(1999), sel.Start)
	assert.Equal(t, int64(2002), sel.End)
	assert.Equal(t, indicators.FertilityRate, sel.Indicator)
	assert.Equal(t, indicators.GDP, sel.X)
	assert.Equal(t, indicators.PopulationGrowth, sel.Y)
}

func TestSelectionClamp(t *testing.T) {
	table := fixtureTable()

	sel := Selection{Start: 1900, End: 2100, Indicator: "Inflation", X: "nope", Y: indicators.FertilityRate}.Clamp(table)
	assert.Equal(t, int64(1998), sel.Start)
	assert.Equal(t, int64(2002), sel.End)
	assert.Equal(t, indicators.FertilityRate, sel.Indicator)
	assert.Equal(t, indicators.GDP, sel.X)
	assert.Equal(t, indicators.FertilityRate, sel.Y)

	inverted := Selection{Start: 2002, End: 1999, Indicator: indicators.GDP, X: indicators.GDP, Y: indicators.GDP}.Clamp(table)
	assert.True(t, EndBeforeStart(inverted.Start, inverted.End), "clamping keeps the range order")
}

func TestSelectionValidate(t *testing.T) {
	table := fixtureTable()
	valid := Selection{Start: 1999, End: 2001, Indicator: indicators.GDP, X: indicators.GDP, Y: indicators.PopulationGrowth}

	t.Run("valid selection", func(t *testing.T) {
		assert.Empty(t, valid.Validate(table))
	})

	t.Run("single year range is valid", func(t *testing.T) {
		sel := valid
		sel.End = sel.Start
		assert.Empty(t, sel.Validate(table))
	})

	t.Run("inverted range", func(t *testing.T) {
		sel := valid
		sel.Start, sel.End = 2001, 1999
		fieldErrors := sel.Validate(table)
		assert.Equal(t, []string{RangeMessage}, fieldErrors["end"])
		assert.NotContains(t, fieldErrors, "start")
	})

	t.Run("years outside observed bounds", func(t *testing.T) {
		sel := valid
		sel.Start, sel.End = 1990, 2010
		fieldErrors := sel.Validate(table)
		assert.Equal(t, []string{"Year must be between 1998 and 2002."}, fieldErrors["start"])
		assert.Equal(t, []string{"Year must be between 1998 and 2002."}, fieldErrors["end"])
	})

	t.Run("years without four digits", func(t *testing.T) {
		sel := valid
		sel.Start = 99
		fieldErrors := sel.Validate(table)
		assert.Equal(t, []string{"Year must have four digits."}, fieldErrors["start"])
	})

	t.Run("required indicators", func(t *testing.T) {
		sel := valid
		sel.Indicator = ""
		fieldErrors := sel.Validate(table)
		assert.Equal(t, []string{`Field "indicator" is required.`}, fieldErrors["indicator"])
	})

	t.Run("unknown indicators", func(t *testing.T) {
		sel := valid
		sel.X = "Inflation"
		fieldErrors := sel.Validate(table)
		assert.Equal(t, []string{`Unknown indicator "Inflation".`}, fieldErrors["x"])
	})
}
