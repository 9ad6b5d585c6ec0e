package restapi

import (
	"net/http"
	"time"

	"dashboard.nigeriaindicators.org/internal/models"
)

type healthEntry struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Rows     int    `json:"rows"`
	LoadedAt string `json:"loadedAt"`
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	table, err := api.Table()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := healthEntry{
		Status:   "ok",
		Source:   api.Indicators.Source(),
		Rows:     table.Len(),
		LoadedAt: api.Indicators.LoadedAt().UTC().Format(time.RFC3339),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
