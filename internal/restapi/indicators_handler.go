package restapi

import (
	"net/http"

	"dashboard.nigeriaindicators.org/internal/models"
)

func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	table, err := api.Table()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewIndicatorsEntry(table)))
}

func (api *RestAPI) dataHandler(w http.ResponseWriter, r *http.Request) {
	table, err := api.Table()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewTableModel(table)))
}
