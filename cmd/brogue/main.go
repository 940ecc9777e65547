// Package main is the entry point for BROGUE.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/brogue/internal/game"
	"github.com/samdwyer/brogue/internal/telemetry"
	"github.com/samdwyer/brogue/internal/ui"
)

var errorStyle = color.Style{color.FgRed, color.OpBold}

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	logFile, err := setupLogging(os.Getenv("BROGUE_LOG_FILE"), os.Getenv("BROGUE_LOG_LEVEL"))
	if err != nil {
		fatal("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	cfg := game.DefaultConfig()

	width, height, fits, err := ui.CheckTerminal(cfg.Width, cfg.Height)
	if err != nil {
		fatal("Cannot start: %v", err)
	}
	if !fits {
		log.WithFields(log.Fields{
			"terminal_width":  width,
			"terminal_height": height,
			"map_width":       cfg.Width,
			"map_height":      cfg.Height,
		}).Warn("terminal smaller than map, edges will be clipped")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if shutdown := setupTelemetry(ctx); shutdown != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("error shutting down telemetry")
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		fatal("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		fatal("Game error: %v", err)
	}
}

// setupTelemetry enables tracing when a Honeycomb API key is configured.
// It returns nil when telemetry is off.
func setupTelemetry(ctx context.Context) func(context.Context) error {
	apiKey := os.Getenv("HONEYCOMB_BROGUE_API_KEY")
	if apiKey == "" {
		log.Debug("HONEYCOMB_BROGUE_API_KEY not set, telemetry disabled")
		return nil
	}
	setupOTelEnv(apiKey)

	shutdown, err := telemetry.Setup(ctx, func(err error) {
		log.WithError(err).Warn("telemetry")
	})
	if err != nil {
		// Game still works without observability
		log.WithError(err).Warn("telemetry setup failed")
		return nil
	}

	log.WithField("session", telemetry.SessionID()).Info("telemetry enabled")
	return shutdown
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(apiKey string) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_BROGUE_DATASET")
	if dataset == "" {
		dataset = "brogue"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", otlpHeaders(apiKey, dataset))
}

// otlpHeaders builds the Honeycomb header list for the OTLP exporter.
func otlpHeaders(apiKey, dataset string) string {
	return fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset)
}

// fatal reports a startup failure on stderr and exits.
func fatal(format string, args ...any) {
	log.Errorf(format, args...)
	fmt.Fprintln(os.Stderr, errorStyle.Sprintf(format, args...))
	os.Exit(1)
}
