package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashboard.nigeriaindicators.org/internal/app"
	"dashboard.nigeriaindicators.org/internal/appconf"
	"dashboard.nigeriaindicators.org/internal/indicators"
	"dashboard.nigeriaindicators.org/internal/logging"
	"dashboard.nigeriaindicators.org/internal/metrics"
	"dashboard.nigeriaindicators.org/internal/restapi"
	"dashboard.nigeriaindicators.org/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func parseConfig(args []string) (appconf.Config, error) {
	var cfg appconf.Config
	var env, logLevel string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", 4000, "API server port")
	fs.StringVar(&env, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&cfg.DataPath, "data", "data/nigeria_indicators_data.csv", "Path to the indicators CSV file")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per client IP (negative disables)")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.LogLevel = appconf.ParseLogLevel(logLevel)
	return cfg, nil
}

// buildApplication loads the prepared table up front so a bad source file
// stops the server before it binds a port.
func buildApplication(cfg appconf.Config, logger *slog.Logger, stats io.Writer) (*app.Application, error) {
	manager, err := indicators.InitManager(indicators.Config{DataPath: cfg.DataPath}, logger)
	if err != nil {
		return nil, logging.FatalStartupError(logger, "failed to initialize indicators", err)
	}
	manager.PrintStatistics(stats)

	m := metrics.New()
	if table, err := manager.Table(); err == nil {
		m.SetPreparedRows(table.Len())
	}

	return &app.Application{
		Config:     cfg,
		Logger:     logger,
		Indicators: manager,
		Metrics:    m,
	}, nil
}

func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.LogLevel)

	application, err := buildApplication(cfg, logger, os.Stdout)
	if err != nil {
		os.Exit(1)
	}

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()
	ui := webui.New(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(api, ui, application.Metrics),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("configured server", "env", cfg.Env.String(), "data", cfg.DataPath, "rate_limit", cfg.RateLimit)
	if err := serve(ctx, srv, logger); err != nil {
		logging.LogError(logger, "server stopped", err, slog.String("component", "startup"))
		api.Shutdown()
		os.Exit(1)
	}
	logger.Info("server stopped")
}
