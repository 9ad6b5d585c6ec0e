package indicators

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"dashboard.nigeriaindicators.org/internal/logging"
)

type Config struct {
	DataPath string
}

// Manager owns the prepared table. The source file is static, so the table
// is built once and shared read-only by every request.
type Manager struct {
	source   string
	logger   *slog.Logger
	loader   func(path string) (*Table, error)
	once     sync.Once
	table    *Table
	err      error
	loadedAt time.Time
}

// NewManager returns a manager that loads lazily on the first Table call.
func NewManager(config Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		source: config.DataPath,
		logger: logger.With(slog.String("component", "indicators")),
		loader: LoadFile,
	}
}

// InitManager creates a manager and loads the table immediately, so source
// problems surface at startup.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	manager := NewManager(config, logger)
	if _, err := manager.Table(); err != nil {
		return nil, err
	}
	return manager, nil
}

// NewManagerFromTable wraps an already prepared table.
func NewManagerFromTable(table *Table, logger *slog.Logger) *Manager {
	manager := NewManager(Config{DataPath: "memory"}, logger)
	manager.loader = func(string) (*Table, error) { return table, nil }
	return manager
}

// Table returns the prepared table, loading it on first use. Concurrent
// callers wait for the single load and share its result.
func (manager *Manager) Table() (*Table, error) {
	manager.once.Do(manager.load)
	return manager.table, manager.err
}

func (manager *Manager) load() {
	start := time.Now()
	table, err := manager.loader(manager.source)
	if err != nil {
		manager.err = fmt.Errorf("failed to load indicators from %s: %w", manager.source, err)
		logging.LogError(manager.logger, "failed to load indicators", err,
			slog.String("source", manager.source))
		return
	}

	manager.table = table
	manager.loadedAt = time.Now()

	minYear, maxYear, _ := table.YearBounds()
	logging.LogOperation(manager.logger, "indicators_loaded",
		slog.String("source", manager.source),
		slog.Int("rows", table.Len()),
		slog.Int("indicators", len(table.indicators)),
		slog.Int64("min_year", minYear),
		slog.Int64("max_year", maxYear),
		slog.Duration("duration", time.Since(start)))
}

func (manager *Manager) Source() string {
	return manager.source
}

// LoadedAt is the zero time until a load has succeeded.
func (manager *Manager) LoadedAt() time.Time {
	return manager.loadedAt
}

func (manager *Manager) PrintStatistics(w io.Writer) {
	table, err := manager.Table()
	fmt.Fprintf(w, "Source: %s\n", manager.source)
	if err != nil {
		fmt.Fprintf(w, "Load Error: %v\n", err)
		return
	}
	minYear, maxYear, _ := table.YearBounds()
	fmt.Fprintf(w, "Loaded At: %s\n", manager.loadedAt.Format(time.RFC3339))
	fmt.Fprintln(w, "Rows Count: ", table.Len())
	fmt.Fprintln(w, "Indicators Count: ", len(table.indicators))
	fmt.Fprintf(w, "Years: %d-%d\n", minYear, maxYear)
}
