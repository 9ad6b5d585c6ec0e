package analysis

import (
	"dashboard.nigeriaindicators.org/internal/indicators"
)

var missing = indicators.Missing()

// fixtureTable covers 1998-2002 with GDP, population growth and a constant fertility rate.
func fixtureTable() *indicators.Table {
	return indicators.NewTable(
		[]string{indicators.FertilityRate, indicators.GDP, indicators.PopulationGrowth},
		[]indicators.Record{
			{Year: 1998, Values: []float64{5, 0, 2.0}},
			{Year: 1999, Values: []float64{5, 100, 2.5}},
			{Year: 2000, Values: []float64{5, 120, 3.0}},
			{Year: 2001, Values: []float64{5, missing, 2.5}},
			{Year: 2002, Values: []float64{5, 150, 2.0}},
		},
	)
}
