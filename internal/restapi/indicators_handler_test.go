package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.nigeriaindicators.org/internal/indicators"
)

func TestIndicatorsHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/indicators.json")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, 2, model.Version)

	entry := entryOf(t, model)
	assert.Equal(t, []interface{}{indicators.FertilityRate, indicators.GDP, indicators.PopulationGrowth}, entry["indicators"])
	assert.Equal(t, float64(1998), entry["minYear"])
	assert.Equal(t, float64(2002), entry["maxYear"])

	defaults, ok := entry["defaults"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1999), defaults["start"])
	assert.Equal(t, float64(2002), defaults["end"])
	assert.Equal(t, indicators.FertilityRate, defaults["indicator"])
	assert.Equal(t, indicators.GDP, defaults["x"])
	assert.Equal(t, indicators.PopulationGrowth, defaults["y"])
}

func TestDataHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/data.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	rows, ok := entry["rows"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 5)

	row := rows[3].(map[string]interface{})
	assert.Equal(t, "2001", row["year"], "year is serialized as text")
	values := row["values"].([]interface{})
	assert.Nil(t, values[1], "missing GDP is null")
	assert.Equal(t, 2.5, values[2])
}

func TestHealthHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "ok", entry["status"])
	assert.Equal(t, "memory", entry["source"])
	assert.Equal(t, float64(5), entry["rows"])
}
