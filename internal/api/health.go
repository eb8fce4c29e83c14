package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints.
//
//   - /healthz: basic liveness probe (always 200).
//   - /readyz: readiness probe, depends on the remote exchange host being
//     reachable.
type HealthHandler struct {
	remotePing func() error
}

// NewHealthHandler constructs a HealthHandler with the provided probe.
// Typically the probe issues a cheap request against the exchange base URL.
func NewHealthHandler(remotePing func() error) *HealthHandler {
	return &HealthHandler{remotePing: remotePing}
}

// Register mounts the health and readiness endpoints on the router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Description  Returns ready if the remote exchange API is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.remotePing != nil && h.remotePing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
