package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	names := []string{GDP, PopulationGrowth}
	return NewTable(names, []Record{
		{Year: 2001, Values: []float64{100, 2.5}},
		{Year: 2000, Values: []float64{80, 2.6}},
		{Year: 2002, Values: []float64{Missing(), 2.4}},
		{Year: 2001, Values: []float64{999, 9.9}},
	})
}

func TestTableAccessors(t *testing.T) {
	table := sampleTable()

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []string{GDP, PopulationGrowth}, table.Indicators())
	assert.Equal(t, []int64{2001, 2000, 2002, 2001}, table.Years())

	i, ok := table.IndexOf(PopulationGrowth)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = table.IndexOf("Inflation")
	assert.False(t, ok)
}

func TestTableYearBounds(t *testing.T) {
	minYear, maxYear, ok := sampleTable().YearBounds()
	require.True(t, ok)
	assert.Equal(t, int64(2000), minYear)
	assert.Equal(t, int64(2002), maxYear)
}

func TestTableValueAtUsesFirstMatch(t *testing.T) {
	table := sampleTable()

	v, ok := table.ValueAt(2001, GDP)
	require.True(t, ok)
	assert.Equal(t, 100.0, v)

	_, ok = table.ValueAt(2002, GDP)
	assert.False(t, ok, "missing marker is reported as absent")

	_, ok = table.ValueAt(1990, GDP)
	assert.False(t, ok)

	_, ok = table.ValueAt(2001, "Inflation")
	assert.False(t, ok)
}

func TestTableColumnIsACopy(t *testing.T) {
	table := sampleTable()

	column, ok := table.Column(GDP)
	require.True(t, ok)
	require.Len(t, column, 4)
	assert.True(t, IsMissing(column[2]))

	column[0] = -1
	again, _ := table.Column(GDP)
	assert.Equal(t, 100.0, again[0])

	_, ok = table.Column("Inflation")
	assert.False(t, ok)
}

func TestTableFilterYears(t *testing.T) {
	table := sampleTable()

	filtered := table.FilterYears(2001, 2002)
	assert.Equal(t, []int64{2001, 2002, 2001}, filtered.Years())
	assert.Equal(t, table.Indicators(), filtered.Indicators())

	assert.Equal(t, 0, table.FilterYears(2005, 2010).Len())
	assert.Equal(t, 0, table.FilterYears(2002, 2000).Len())
	assert.Equal(t, 4, table.Len(), "filtering leaves the source table untouched")
}

func TestNewTablePadsShortRecords(t *testing.T) {
	table := NewTable([]string{GDP, PopulationGrowth}, []Record{{Year: 2000, Values: []float64{1}}})

	_, ok := table.ValueAt(2000, PopulationGrowth)
	assert.False(t, ok)
}

func TestRecordValueOutOfRange(t *testing.T) {
	r := Record{Year: 2000, Values: []float64{1}}
	assert.True(t, IsMissing(r.Value(-1)))
	assert.True(t, IsMissing(r.Value(1)))
	assert.Equal(t, 1.0, r.Value(0))
}
