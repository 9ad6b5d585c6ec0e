package webui

import (
	"log/slog"
	"net/http"

	"dashboard.nigeriaindicators.org/internal/logging"
)

func (webUI *WebUI) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContextOr(r.Context(), webUI.Logger), "page failed", err,
		slog.String("component", "webui"),
		slog.String("path", r.URL.Path))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
