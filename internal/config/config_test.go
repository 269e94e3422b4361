package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("INPUT_PATH", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.InputPath != "" {
		t.Fatalf("expected empty input path (stdin), got %s", cfg.InputPath)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS || cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("unexpected rate limit defaults: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("INPUT_PATH", "masses.txt")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "7")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.InputPath != "masses.txt" {
		t.Fatalf("expected overridden input path, got %s", cfg.InputPath)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 7 {
		t.Fatalf("unexpected rate limits: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("INPUT_PATH", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
port: "7070"
input_path: /data/masses.txt
verbose: true
shutdown_grace_period: 2s
enable_request_logging: false
rate_limit:
  rps: 3
  burst: 4
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected port 7070, got %s", cfg.Port)
	}
	if cfg.InputPath != "/data/masses.txt" {
		t.Fatalf("unexpected input path: %s", cfg.InputPath)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose to be enabled")
	}
	if cfg.ShutdownGracePeriod != 2*time.Second {
		t.Fatalf("unexpected grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging to be disabled")
	}
	if cfg.RateLimitRPS != 3 || cfg.RateLimitBurst != 4 {
		t.Fatalf("unexpected rate limits: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadCLIOverridesWinOverEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("INPUT_PATH", "env.txt")

	port := "6060"
	inputPath := "cli.txt"
	rps := 2.5
	burst := 9
	verbose := true

	cfg, err := Load(&CLIOverrides{
		Port:           &port,
		InputPath:      &inputPath,
		Verbose:        &verbose,
		RateLimitRPS:   &rps,
		RateLimitBurst: &burst,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "6060" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.InputPath != "cli.txt" {
		t.Fatalf("expected CLI input path to win, got %s", cfg.InputPath)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose override to apply")
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 9 {
		t.Fatalf("unexpected rate limits: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	_, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")})
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [notaport"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}
