package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/fuelcalc/internal/application"
	"github.com/eugenenazirov/fuelcalc/internal/config"
	"github.com/eugenenazirov/fuelcalc/internal/fuel"
	"github.com/eugenenazirov/fuelcalc/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("fuelcalc", "Launch Fuel Calculator - computes fuel requirements for a list of module masses")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	inputPath := kingpinApp.Flag("input", "Path to the mass list file, \"-\" for stdin").String()
	serve := kingpinApp.Flag("serve", "Expose the calculator as an HTTP API instead of running the batch calculation").Bool()
	port := kingpinApp.Flag("port", "HTTP port exposed in serve mode").String()
	verboseFlag := kingpinApp.Flag("verbose", "Enable debug logging").Bool()
	rateLimitRPSFlag := kingpinApp.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := kingpinApp.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *port != "" {
		overrides.Port = port
	}

	if *inputPath != "" {
		overrides.InputPath = inputPath
	}

	if *verboseFlag {
		overrides.Verbose = verboseFlag
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if !*serve {
		if err := application.RunBatch(cfg, logger, os.Stdin, os.Stdout); err != nil {
			logger.Fatal("failed to compute fuel requirements", zap.Error(err))
		}
		return
	}

	// In serve mode the input file is optional; masses can also arrive
	// through the API.
	var masses []fuel.Mass
	if cfg.InputPath != "" {
		masses, err = application.ReadMasses(cfg, os.Stdin)
		if err != nil {
			logger.Fatal("failed to load masses", zap.Error(err))
		}
		logger.Info("loaded masses from input", zap.String("path", cfg.InputPath), zap.Int("count", len(masses)))
	}

	app, err := application.New(cfg, logger, masses)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
