package restapi

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dashboard.nigeriaindicators.org/internal/export"
	"dashboard.nigeriaindicators.org/internal/logging"
)

// exportHandler builds the workbook in memory so a failure can still be
// reported as a JSON error before any bytes are sent.
func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
	table, err := api.Table()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, table); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(api.Logger, "failed to write workbook", err,
			slog.String("component", "restapi"))
	}
}
