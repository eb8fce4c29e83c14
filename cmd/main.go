package main

//
//  @title           fxpulse API
//  @version         1.0
//  @description     Concurrent exchange-rate history service over the PrivatBank public API.
//  @contact.name    API Support
//  @contact.url     https://github.com/dmytroh/fxpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        history
//  @tag.description Endpoints for querying multi-day exchange-rate history
//
//  @tag.name        ws
//  @tag.description Live chat/broadcast endpoint
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dmytroh/fxpulse/config"
	_ "github.com/dmytroh/fxpulse/docs" // swagger docs
	"github.com/dmytroh/fxpulse/internal/app"
	"github.com/dmytroh/fxpulse/internal/domain/models"
	"github.com/dmytroh/fxpulse/internal/exchange"
	"github.com/dmytroh/fxpulse/internal/history"
	"github.com/dmytroh/fxpulse/internal/logger"
	"github.com/dmytroh/fxpulse/internal/render"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine and returns the server instance for shutdown handling.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs cleanup when an OS
// interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runFetch performs one aggregation and prints the plain-text rendering.
// Returns the process exit code.
func runFetch(ctx context.Context, days int, currencies []string) int {
	cfg := config.AppConfig

	if len(currencies) == 0 {
		currencies = cfg.Exchange.DefaultCurrencies
	}

	client := exchange.NewClient(cfg.Exchange.BaseURL, cfg.Exchange.Timeout)
	agg := history.NewAggregator(client, cfg.Exchange.MaxDays)

	res, err := agg.History(ctx, days, models.NewCurrencyFilter(currencies))
	if err != nil {
		if errors.Is(err, history.ErrDepthExceeded) {
			fmt.Fprintf(os.Stderr, "You can get exchange history only within the last %d days.\n", cfg.Exchange.MaxDays)
			return 1
		}
		logger.L().Error().Err(err).Msg("history request failed")
		return 1
	}

	fmt.Print(render.PlainText(res))
	if res.Status == models.StatusEmpty {
		return 1
	}
	return 0
}

// main is the entry point of the fxpulse application.
//
// Modes (selected via --mode flag):
//   - serve: starts the REST API + websocket broadcast server.
//   - fetch: runs one history aggregation and prints it to stdout.
//
// Flags:
//   - --mode:       Execution mode ("serve" or "fetch"). Default: "serve".
//   - --port:       Port for serve mode. Defaults to SERVER_PORT from config.
//   - --days:       Days of history for fetch mode (1-10). Default: 3.
//   - --currencies: Comma-separated currency codes for fetch mode.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "serve", "Mode: serve or fetch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for serve mode")
	days := flag.Int("days", 3, "Days of history for fetch mode (1-10)")
	currencies := flag.String("currencies", "", "Comma-separated currency codes for fetch mode")
	flag.Parse()

	switch *mode {
	case "serve":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "fetch":
		var codes []string
		for _, part := range strings.Split(*currencies, ",") {
			if code := strings.ToUpper(strings.TrimSpace(part)); code != "" {
				codes = append(codes, code)
			}
		}
		os.Exit(runFetch(ctx, *days, codes))

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
