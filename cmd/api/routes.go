package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dashboard.nigeriaindicators.org/internal/metrics"
	"dashboard.nigeriaindicators.org/internal/restapi"
	"dashboard.nigeriaindicators.org/internal/webui"
)

func routes(api *restapi.RestAPI, ui *webui.WebUI, m *metrics.Metrics) http.Handler {
	router := httprouter.New()
	router.NotFound = api.WithMiddleware("not_found", api.NotFoundHandler())

	api.SetRoutes(router)
	ui.SetWebUIRoutes(router, api.WithPageMiddleware)
	router.Handler(http.MethodGet, "/metrics", api.WithSecurityHeaders(m.Handler()))

	return router
}
