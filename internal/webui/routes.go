package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Wrapper applies the server's middleware to a page handler registered under route.
type Wrapper func(route string, handler http.Handler) http.Handler

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router, wrap Wrapper) {
	if wrap == nil {
		wrap = func(_ string, handler http.Handler) http.Handler { return handler }
	}
	router.Handler(http.MethodGet, "/", wrap("/", http.HandlerFunc(webUI.dashboardHandler)))
	router.Handler(http.MethodGet, "/charts/:view", wrap("/charts/:view", http.HandlerFunc(webUI.chartHandler)))
	router.Handler(http.MethodGet, "/debug/", wrap("/debug/", http.HandlerFunc(webUI.debugIndexHandler)))
}
