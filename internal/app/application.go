package app

import (
	"log/slog"

	"dashboard.nigeriaindicators.org/internal/appconf"
	"dashboard.nigeriaindicators.org/internal/indicators"
	"dashboard.nigeriaindicators.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config     appconf.Config
	Logger     *slog.Logger
	Indicators *indicators.Manager
	Metrics    *metrics.Metrics
}

// Table returns the prepared table. It is loaded at startup, so an error here
// means the manager was built without a successful load.
func (app *Application) Table() (*indicators.Table, error) {
	return app.Indicators.Table()
}
