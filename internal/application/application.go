package application

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/fuelcalc/internal/api"
	"github.com/eugenenazirov/fuelcalc/internal/config"
	"github.com/eugenenazirov/fuelcalc/internal/fuel"
	"github.com/eugenenazirov/fuelcalc/internal/input"
	"github.com/eugenenazirov/fuelcalc/internal/storage"
)

// App encapsulates the application dependencies and HTTP server for
// serve mode.
type App struct {
	storage storage.Storage
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided
// configuration. Masses, when supplied, seed the store so the API starts
// with the batch input already loaded.
func New(cfg config.Config, logger *zap.Logger, masses []fuel.Mass) (*App, error) {
	store := storage.NewMemoryStorage()
	if len(masses) > 0 {
		if err := store.SetMasses(masses); err != nil {
			return nil, fmt.Errorf("failed to load initial masses: %w", err)
		}
	}

	handler := api.NewHandler(store)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		storage: store,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  NewServer(cfg, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// ReadMasses loads the mass list from the configured input path, or from
// stdin when the path is empty or "-".
func ReadMasses(cfg config.Config, stdin io.Reader) ([]fuel.Mass, error) {
	if cfg.InputPath == "" || cfg.InputPath == "-" {
		return input.Parse(stdin)
	}
	return input.ReadFile(cfg.InputPath)
}

// RunBatch reads all module masses, computes both fuel totals, and writes
// the two answer lines to out. Nothing is written when the input fails to
// parse; the run aborts with the parse diagnostic instead.
func RunBatch(cfg config.Config, logger *zap.Logger, stdin io.Reader, out io.Writer) error {
	masses, err := ReadMasses(cfg, stdin)
	if err != nil {
		return err
	}

	report := fuel.Summarize(masses)
	logger.Debug("computed fuel requirements",
		zap.Int("masses", report.Masses),
		zap.Int64("fuel", int64(report.Direct)),
		zap.Int64("total_fuel", int64(report.Total)),
	)

	if _, err := fmt.Fprintf(out, "Part 1 answer: %d\n", report.Direct); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "Part 2 answer: %d\n", report.Total); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
