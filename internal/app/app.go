package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmytroh/fxpulse/config"
	"github.com/dmytroh/fxpulse/internal/api"
	"github.com/dmytroh/fxpulse/internal/auditlog"
	"github.com/dmytroh/fxpulse/internal/exchange"
	"github.com/dmytroh/fxpulse/internal/history"
	"github.com/dmytroh/fxpulse/internal/metrics"
	"github.com/dmytroh/fxpulse/internal/ws"
)

// metricsRegisterer is an indirection for unit tests, which register on a
// throwaway registry instead of the process-global one.
var metricsRegisterer prometheus.Registerer = prometheus.DefaultRegisterer

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Opens the audit log sink.
//   - Builds the exchange client and the history aggregator over it.
//   - Creates the HTTP handler and websocket hub layers.
//   - Configures the Gin router with all routes and health probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	m := metrics.NewMetrics(metricsRegisterer)

	audit, err := auditlog.NewSink(cfg.Audit.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize audit log: %w", err)
	}

	client := exchange.NewClient(cfg.Exchange.BaseURL, cfg.Exchange.Timeout)
	agg := history.NewAggregator(client, cfg.Exchange.MaxDays)

	handler := api.NewHandler(agg, cfg.Exchange.DefaultCurrencies, audit, m)
	hub := ws.NewHub(agg, cfg.Exchange.DefaultCurrencies, cfg.Exchange.MaxDays, audit, m)

	router := api.NewRouter(handler, hub, m)

	healthHandler := api.NewHealthHandler(remotePing(cfg.Exchange.BaseURL))
	healthHandler.Register(router)

	cleanup := func() {
		audit.Close()
	}

	return router, cleanup, nil
}

// remotePing returns a readiness probe that checks the exchange host is
// reachable. Any HTTP answer counts as reachable; only transport failures
// degrade readiness.
func remotePing(baseURL string) func() error {
	probeClient := &http.Client{Timeout: 3 * time.Second}
	return func() error {
		req, err := http.NewRequest(http.MethodHead, baseURL, nil)
		if err != nil {
			return err
		}
		resp, err := probeClient.Do(req)
		if err != nil {
			return err
		}
		_ = resp.Body.Close()
		return nil
	}
}
