package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/indicators"
)

func viewURL(view string, params url.Values) string {
	return "/api/views/" + view + ".json?" + params.Encode()
}

func TestTrendView(t *testing.T) {
	api := createTestApi(t)
	endpoint := viewURL(TrendView, url.Values{"start": {"1999"}, "end": {"2001"}, "indicator": {indicators.GDP}})

	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, indicators.GDP, entry["indicator"])
	assert.Equal(t, false, entry["empty"])

	points := entry["points"].([]interface{})
	require.Len(t, points, 3)
	assert.Equal(t, float64(1999), points[0].(map[string]interface{})["year"])
	assert.Equal(t, float64(100), points[0].(map[string]interface{})["value"])
	assert.Nil(t, points[2].(map[string]interface{})["value"])

	count, err := testutil.GatherAndCount(api.Metrics.Registry(), "nigeria_dashboard_view_renders_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTrendViewDefaults(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/views/trend.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, indicators.FertilityRate, entry["indicator"])
	assert.Equal(t, float64(1999), entry["start"])
	assert.Equal(t, float64(2002), entry["end"])
	assert.Len(t, entry["points"], 4)
}

func TestComparisonView(t *testing.T) {
	t.Run("reports percent change", func(t *testing.T) {
		endpoint := viewURL(ComparisonView, url.Values{"start": {"1999"}, "end": {"2002"}, "indicator": {indicators.GDP}})
		_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		entry := entryOf(t, model)
		assert.InDelta(t, 50.0, entry["percentChange"], 1e-9)
		assert.Equal(t, "50.00%", entry["percentChangeLabel"])

		start := entry["start"].(map[string]interface{})
		assert.Equal(t, "100.00", start["label"])
		assert.Equal(t, "1999: 100.00", start["barLabel"])
	})

	t.Run("zero start leaves percent null", func(t *testing.T) {
		endpoint := viewURL(ComparisonView, url.Values{"start": {"1998"}, "end": {"2002"}, "indicator": {indicators.GDP}})
		_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		entry := entryOf(t, model)
		assert.Nil(t, entry["percentChange"])
		assert.NotContains(t, entry, "percentChangeLabel")
	})

	t.Run("missing endpoint is reported", func(t *testing.T) {
		endpoint := viewURL(ComparisonView, url.Values{"start": {"2001"}, "end": {"2002"}, "indicator": {indicators.GDP}})
		_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		start := entryOf(t, model)["start"].(map[string]interface{})
		assert.Nil(t, start["value"])
		assert.Equal(t, "No data for 2001", start["label"])
	})
}

func TestRelationshipView(t *testing.T) {
	endpoint := viewURL(RelationshipView, url.Values{
		"start": {"1998"}, "end": {"2002"},
		"x": {indicators.GDP}, "y": {indicators.FertilityRate},
	})
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Len(t, entry["years"], 5)

	x := entry["x"].(map[string]interface{})
	values := x["values"].([]interface{})
	assert.Equal(t, 0.0, values[0])
	assert.Nil(t, values[3])
	assert.Equal(t, 1.0, values[4])

	y := entry["y"].(map[string]interface{})
	for _, v := range y["values"].([]interface{}) {
		f := v.(float64)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestViewValidation(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		resp, fieldErrors := retrieveFieldErrors(t, viewURL(TrendView, url.Values{"start": {"2002"}, "end": {"1999"}}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, fieldErrors["end"], analysis.RangeMessage)
	})

	t.Run("year out of observed range", func(t *testing.T) {
		resp, fieldErrors := retrieveFieldErrors(t, viewURL(TrendView, url.Values{"start": {"1990"}}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{"Year must be between 1998 and 2002."}, fieldErrors["start"])
	})

	t.Run("year is not a number", func(t *testing.T) {
		resp, fieldErrors := retrieveFieldErrors(t, viewURL(ComparisonView, url.Values{"end": {"later"}}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{`Invalid field value for field "end".`}, fieldErrors["end"])
	})

	t.Run("unknown indicator", func(t *testing.T) {
		resp, fieldErrors := retrieveFieldErrors(t, viewURL(RelationshipView, url.Values{"x": {"Inflation"}}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{`Unknown indicator "Inflation".`}, fieldErrors["x"])
	})
}

func TestUnknownView(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/views/histogram.json")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
}
