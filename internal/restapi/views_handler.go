package restapi

import (
	"net/http"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/indicators"
	"dashboard.nigeriaindicators.org/internal/models"
	"dashboard.nigeriaindicators.org/internal/utils"
)

const (
	TrendView        = "trend"
	ComparisonView   = "comparison"
	RelationshipView = "relationship"
)

// parseSelection reads the query over the default selection and validates
// the result. Out-of-range values are rejected here rather than clamped.
func parseSelection(r *http.Request, table *indicators.Table) (analysis.Selection, map[string][]string) {
	sel, fieldErrors := utils.ParseSelection(r.URL.Query(), analysis.DefaultSelection(table))
	return sel, utils.MergeFieldErrors(fieldErrors, sel.Validate(table))
}

func (api *RestAPI) viewHandler(w http.ResponseWriter, r *http.Request) {
	view := utils.ExtractIDFromParams(r, "view")
	switch view {
	case TrendView, ComparisonView, RelationshipView:
	default:
		api.sendNotFound(w, r)
		return
	}

	ctx := r.Context()
	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	table, err := api.Table()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	sel, fieldErrors := parseSelection(r, table)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	var entry interface{}
	switch view {
	case TrendView:
		entry = models.NewTrendModel(analysis.Trend(table, sel))
	case ComparisonView:
		entry = models.NewComparisonModel(analysis.Compare(table, sel))
	case RelationshipView:
		entry = models.NewRelationshipModel(analysis.Relationship(table, sel))
	}
	api.observeView(view)

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
