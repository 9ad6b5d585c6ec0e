package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	api.get(router, "/api/indicators.json", api.indicatorsHandler)
	api.get(router, "/api/data.json", api.dataHandler)
	api.get(router, "/api/views/:view", api.viewHandler)
	api.get(router, "/api/export.xlsx", api.exportHandler)
	api.get(router, "/healthz", api.healthHandler)
}

func (api *RestAPI) get(router *httprouter.Router, path string, handler http.HandlerFunc) {
	router.Handler(http.MethodGet, path, api.WithMiddleware(path, handler))
}
