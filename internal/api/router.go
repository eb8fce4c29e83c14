package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dmytroh/fxpulse/internal/metrics"
	"github.com/dmytroh/fxpulse/internal/middleware"
	"github.com/dmytroh/fxpulse/internal/ws"
)

// NewRouter creates a Gin engine with all routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler,
//     RateLimiter, Metrics).
//   - Mounts swagger docs (/swagger/*any), prometheus (/metrics) and the
//     websocket endpoint (/ws).
//   - Configures API v1 routes (/api/v1) with a request timeout. The
//     timeout is scoped to the API group so it cannot kill long-lived
//     websocket connections.
//
// Health and readiness endpoints (/healthz, /readyz) are registered in
// app.InitializeApp().
func NewRouter(handler *Handler, hub *ws.Hub, m *metrics.Metrics) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
		middleware.Metrics(m),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", hub.Handle)

	v1 := router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		// one concurrent round trip to the remote plus headroom
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	{
		v1.GET("/history", handler.GetHistory)
	}

	return router
}
