package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/6639835/vor-fix-calculator/internal/api"
	"github.com/6639835/vor-fix-calculator/internal/config"
	"github.com/6639835/vor-fix-calculator/internal/format"
	"github.com/6639835/vor-fix-calculator/internal/metrics"
	"github.com/6639835/vor-fix-calculator/internal/navdata"
	"github.com/6639835/vor-fix-calculator/internal/service"
	"github.com/peterbourgon/ff"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application. The default mode runs the HTTP
// API server; the waypoint, fix and search modes perform one calculation or
// lookup and print the result to stdout.
func main() {
	fs := flag.NewFlagSet("vorfix", flag.ExitOnError)
	var (
		mode        = fs.String("mode", "serve", "serve, waypoint, fix or search")
		navFile     = fs.String("nav-file", "", "NAV data file path (overrides VORFIX_NAV_FILE)")
		fixFile     = fs.String("fix-file", "", "FIX data file path (overrides VORFIX_FIX_FILE)")
		coordinates = fs.String("coordinates", "", "station or fix coordinates: 'latitude longitude'")
		ident       = fs.String("ident", "", "station identifier to look up in the data file")
		file        = fs.String("file", "NAV", "data file layout for lookups: NAV or FIX")
		bearing     = fs.String("bearing", "", "magnetic bearing in degrees")
		distance    = fs.String("distance", "", "distance in nautical miles")
		declination = fs.String("declination", "", "magnetic declination in degrees")
		airport     = fs.String("airport", "", "four-letter airport code")
		vor         = fs.String("vor", "", "optional VOR identifier")
		operation   = fs.String("operation", "Departure", "operation type label")
		runway      = fs.String("runway", "", "runway number, 0-99")
		fixType     = fs.String("fix-type", "", "fix type label")
		usage       = fs.String("usage", "", "fix usage label")
	)
	if err := ff.Parse(fs, os.Args[1:]); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Flags take precedence over the configured data file paths.
	if *navFile == "" {
		*navFile = cfg.NavFile
	}
	if *fixFile == "" {
		*fixFile = cfg.FixFile
	}

	// Create a separate registry for the application metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	reader := navdata.NewReader(logger)
	calc := service.NewCalculator(logger, reader, appMetrics, *navFile, *fixFile)

	ctx := context.Background()

	switch *mode {
	case "serve":
		runServer(logger, calc, reg, cfg.Port, *navFile, *fixFile)
	case "waypoint":
		output, err := calc.CalculateWaypoint(ctx, service.WaypointRequest{
			Coordinates:   *coordinates,
			Identifier:    *ident,
			FileFormat:    navdata.FileFormat(*file),
			Bearing:       *bearing,
			Distance:      *distance,
			Declination:   *declination,
			AirportCode:   *airport,
			VORIdentifier: *vor,
			Operation:     *operation,
		})
		printResult(output, err)
	case "fix":
		output, err := calc.CalculateFix(ctx, service.FixRequest{
			Coordinates: *coordinates,
			Runway:      *runway,
			AirportCode: *airport,
			FixType:     *fixType,
			Usage:       *usage,
			Operation:   *operation,
		})
		printResult(output, err)
	case "search":
		runSearch(ctx, calc, *ident, navdata.FileFormat(*file))
	default:
		log.Fatalf("Unknown mode %q: expected serve, waypoint, fix or search", *mode)
	}
}

// runServer starts the HTTP API and monitoring server and blocks until an
// interrupt signal triggers a graceful shutdown.
func runServer(
	logger *slog.Logger,
	calc *service.Calculator,
	reg *prometheus.Registry,
	port int,
	navFile, fixFile string,
) {
	// Create a context that will be canceled when an interrupt signal is
	// received. This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Pre-check the configured data files so a bad path shows up at startup
	// rather than on the first lookup.
	if navFile != "" {
		if msg := navdata.ValidatePath(navFile); msg != "" {
			logger.WarnContext(ctx, "NAV file check failed", "path", navFile, "reason", msg)
		}
	}
	if fixFile != "" {
		if msg := navdata.ValidatePath(fixFile); msg != "" {
			logger.WarnContext(ctx, "FIX file check failed", "path", fixFile, "reason", msg)
		}
	}

	readTimeout := 5
	writeTimeout := 10
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.NewRouter(logger, calc, reg),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	go func() {
		logger.InfoContext(ctx, "Starting HTTP server", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "HTTP server failed", "error", err)
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownTimeout := 5
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", "error", err)
	}

	logger.Info("Application stopped gracefully.")
}

// runSearch looks up an identifier in the data file and prints every match.
func runSearch(ctx context.Context, calc *service.Calculator, ident string, fileFormat navdata.FileFormat) {
	entries, err := calc.Search(ctx, service.SearchRequest{Identifier: ident, FileFormat: fileFormat})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Printf("Identifier '%s' not found.\n", ident)
		return
	}
	for _, entry := range entries {
		fmt.Println(format.NavAid(entry))
	}
}

// printResult prints a calculation outcome. An identifier that matched more
// than one station prints the disambiguation list so the user can retry with
// explicit coordinates.
func printResult(output string, err error) {
	if err == nil {
		fmt.Println(output)
		return
	}

	var amberr *service.AmbiguousIdentifierError
	if errors.As(err, &amberr) {
		fmt.Fprintln(os.Stderr, "Multiple entries found. Re-run with -coordinates set to one of:")
		for _, entry := range amberr.Entries {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", format.NavAid(entry), entry.Position())
		}
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
