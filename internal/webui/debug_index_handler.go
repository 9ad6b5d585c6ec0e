package webui

import (
	"html/template"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var debugTemplate = template.Must(template.ParseFS(templateFS, "templates/debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

type debugStats struct {
	Source     string
	LoadedAt   string
	Rows       int
	Indicators int
	MinYear    int64
	MaxYear    int64
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	table, err := webUI.Table()
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	var data interface{}
	var title string

	switch dataType {
	case "table":
		data = table.Records()
		title = "Prepared Table - Records"
	case "indicators":
		data = table.Indicators()
		title = "Prepared Table - Indicators"
	case "stats":
		minYear, maxYear, _ := table.YearBounds()
		data = debugStats{
			Source:     webUI.Indicators.Source(),
			LoadedAt:   webUI.Indicators.LoadedAt().Format(time.RFC3339),
			Rows:       table.Len(),
			Indicators: len(table.Indicators()),
			MinYear:    minYear,
			MaxYear:    maxYear,
		}
		title = "Prepared Table - Statistics"
	default:
		data = map[string]string{
			"error": "Please use one of the following: table, indicators, stats.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
