package indicators

import "strings"

// YearColumn is the display name of the year field.
const YearColumn = "Year"

// MaskedYear is the most recent year in the source. Its zeros mean "not reported".
const MaskedYear = 2023

// Display names of the indicators, in display order.
const (
	FertilityRate      = "Fertility Rate"
	GDP                = "GDP (US$)"
	GDPGrowth          = "GDP Growth (%)"
	LifeExpectancy     = "Life Expectancy"
	FemalePopulation   = "Female Population (%)"
	MalePopulation     = "Male Population (%)"
	PopulationGrowth   = "Population Growth"
	UrbanGrowth        = "Urban Growth (%)"
	RuralGrowth        = "Rural Growth (%)"
	EmploymentRatio    = "Employment Ratio (%)"
	MaleEmployment     = "Male Employment (%)"
	FemaleEmployment   = "Female Employment (%)"
	FemaleUnemployment = "Female Unemployment (%)"
	MaleUnemployment   = "Male Unemployment (%)"
	Unemployment       = "Unemployment (%)"
)

type column struct {
	source  string
	display string
}

// schema is the fixed source-to-display mapping. Some World Bank headers carry
// trailing spaces in the source file; matching is done on trimmed names.
var schema = []column{
	{"Year", YearColumn},
	{"Fertility Rate", FertilityRate},
	{"GDP (current US$)", GDP},
	{"GDP Growth (annual %)", GDPGrowth},
	{"Life Expectancy (Years)", LifeExpectancy},
	{"Female Population (% Total)", FemalePopulation},
	{"Male Population (% Total)", MalePopulation},
	{"Population Growth (annual %)", PopulationGrowth},
	{"Urban Population Growth (annual %)", UrbanGrowth},
	{"Rural Population Growth (annual %)", RuralGrowth},
	{"Employment to population ratio, 15+, total (%) ", EmploymentRatio},
	{"Employment to population ratio, 15+, male (%) ", MaleEmployment},
	{"Employment to population ratio, 15+, female (%)", FemaleEmployment},
	{"Unemployment, female (% of female labor force) ", FemaleUnemployment},
	{"Unemployment, male (% of male labor force)", MaleUnemployment},
	{"Unemployment, total (% of total labor force) ", Unemployment},
}

// SourceHeaders returns the expected source headers in schema order.
func SourceHeaders() []string {
	headers := make([]string, len(schema))
	for i, c := range schema {
		headers[i] = c.source
	}
	return headers
}

// DisplayNames returns the indicator display names in display order, Year excluded.
func DisplayNames() []string {
	names := make([]string, 0, len(schema)-1)
	for _, c := range schema {
		if c.display == YearColumn {
			continue
		}
		names = append(names, c.display)
	}
	return names
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

// displayNameFor maps a raw source header to its display name.
func displayNameFor(header string) (string, bool) {
	key := normalizeHeader(header)
	for _, c := range schema {
		if normalizeHeader(c.source) == key {
			return c.display, true
		}
	}
	return "", false
}
