package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dashboard.nigeriaindicators.org/internal/logging"
	"dashboard.nigeriaindicators.org/internal/models"
)

// writeJSON encodes v after the status line has been written; an encoder
// failure can only be logged at that point.
func writeJSON(w http.ResponseWriter, v interface{}, logger *slog.Logger) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LogError(logger, "failed to encode response", err,
			slog.String("component", "restapi"))
	}
}

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	body, err := json.Marshal(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(&w)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logging.LogError(api.Logger, "failed to write response", err,
			slog.String("component", "restapi"),
			slog.String("path", r.URL.Path))
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)

	response := models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "resource not found",
		Version:     2,
	}
	writeJSON(w, response, api.Logger)
}

// NotFoundHandler answers unknown routes with the JSON not-found envelope.
func (api *RestAPI) NotFoundHandler() http.Handler {
	return http.HandlerFunc(api.sendNotFound)
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
