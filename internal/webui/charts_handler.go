package webui

import (
	"bytes"
	"errors"
	"net/http"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/charts"
	"dashboard.nigeriaindicators.org/internal/utils"
)

func (webUI *WebUI) chartHandler(w http.ResponseWriter, r *http.Request) {
	view := utils.ExtractIDFromParams(r, "view")

	table, err := webUI.Table()
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	sel := selectionFromQuery(r.URL.Query(), table)
	if analysis.EndBeforeStart(sel.Start, sel.End) {
		http.Error(w, analysis.RangeMessage, http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	switch view {
	case "trend":
		err = charts.RenderTrend(&buf, analysis.Trend(table, sel))
	case "comparison":
		err = charts.RenderComparison(&buf, analysis.Compare(table, sel))
	case "relationship":
		err = charts.RenderRelationship(&buf, analysis.Relationship(table, sel))
	default:
		http.NotFound(w, r)
		return
	}

	if errors.Is(err, charts.ErrNoData) {
		http.Error(w, analysis.NoDataMessage, http.StatusNotFound)
		return
	}
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = buf.WriteTo(w)
}
