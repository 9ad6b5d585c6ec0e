package webui

import (
	"net/url"

	"dashboard.nigeriaindicators.org/internal/analysis"
	"dashboard.nigeriaindicators.org/internal/app"
	"dashboard.nigeriaindicators.org/internal/indicators"
	"dashboard.nigeriaindicators.org/internal/utils"
)

// WorldBankURL is the data source credited on the dashboard.
const WorldBankURL = "https://data.worldbank.org/country/nigeria"

type WebUI struct {
	*app.Application
}

func New(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

// selectionFromQuery never rejects input: malformed values fall back to the
// defaults and out-of-range ones are clamped to what the controls offer.
func selectionFromQuery(query url.Values, table *indicators.Table) analysis.Selection {
	sel, _ := utils.ParseSelection(query, analysis.DefaultSelection(table))
	return sel.Clamp(table)
}

func selectionQuery(sel analysis.Selection) url.Values {
	return url.Values{
		"start":     {formatYear(sel.Start)},
		"end":       {formatYear(sel.End)},
		"indicator": {sel.Indicator},
		"x":         {sel.X},
		"y":         {sel.Y},
	}
}
