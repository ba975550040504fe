package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Adriftdev/gemini-client/gemini"
	"github.com/Adriftdev/gemini-client/internal/cli"
	"github.com/Adriftdev/gemini-client/internal/config"
	"github.com/Adriftdev/gemini-client/internal/version"
)

func main() {
	if err := run(); err != nil {
		// Redact API keys from URLs in error messages before logging
		log.Println(gemini.RedactURLSecrets(err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Create cancellable context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "gemini",
		EnvPrefix:   "GEMINI",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured; set %s or apiKey in gemini.yaml", gemini.APIKeyEnvVar)
	}

	client := gemini.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}
	wireObservability(client, cfg.Observability)

	root := cli.NewRootCommand(cli.Dependencies{
		Client:       client,
		DefaultModel: cfg.Model,
		Version:      version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gemini"))
	}
	return paths
}

// wireObservability attaches logging, metrics, and pricing per configuration.
func wireObservability(client *gemini.Client, cfg config.ObservabilityConfig) {
	if cfg.Logging.Enabled {
		logLevel := gemini.LogLevelInfo
		switch cfg.Logging.Level {
		case "debug":
			logLevel = gemini.LogLevelDebug
		case "error":
			logLevel = gemini.LogLevelError
		}

		logFormat := gemini.LogFormatHuman
		if cfg.Logging.Format == "json" {
			logFormat = gemini.LogFormatJSON
		}

		client.SetLogger(gemini.NewDefaultLogger(logLevel, logFormat, cfg.Logging.RedactAPIKeys))
	}

	if cfg.Metrics.Enabled {
		client.SetMetrics(gemini.NewDefaultMetrics())
	}

	// Pricing is always attached; cost shows up in logs and metrics.
	client.SetPricing(gemini.NewDefaultPricing())
}

var _ cli.Generator = (*gemini.Client)(nil)
