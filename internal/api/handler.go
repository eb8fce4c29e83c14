package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmytroh/fxpulse/internal/auditlog"
	"github.com/dmytroh/fxpulse/internal/domain/dto"
	"github.com/dmytroh/fxpulse/internal/domain/models"
	"github.com/dmytroh/fxpulse/internal/history"
	"github.com/dmytroh/fxpulse/internal/metrics"
)

// Handler provides the HTTP handlers for the history endpoint.
//
// Responsibilities:
//   - Validate incoming query parameters
//   - Run the history aggregation
//   - Translate the aggregate result into response DTOs
type Handler struct {
	agg               history.Aggregator
	defaultCurrencies []string
	audit             *auditlog.Sink
	metrics           *metrics.Metrics
}

// NewHandler constructs a Handler. defaultCurrencies is used when the
// request names no currencies.
func NewHandler(agg history.Aggregator, defaultCurrencies []string, audit *auditlog.Sink, m *metrics.Metrics) *Handler {
	return &Handler{
		agg:               agg,
		defaultCurrencies: defaultCurrencies,
		audit:             audit,
		metrics:           m,
	}
}

// GetHistory handles GET /api/v1/history requests.
//
// GetHistory godoc
// @Summary      Get exchange-rate history
// @Description  Fetches daily exchange rates for the N days before today, concurrently, and returns them oldest first. Failed days are listed under failures.
// @Tags         history
// @Produce      json
// @Param        days        query     int     true   "Number of past days (1-10)" example(5)
// @Param        currencies  query     string  false  "Comma-separated currency codes (default USD,EUR)" example(USD,EUR)
// @Success      200         {object}  dto.HistoryResponse  "Complete or partial history"
// @Failure      400         {object}  dto.ErrorResponse    "Invalid days or currencies"
// @Failure      502         {object}  dto.HistoryResponse  "Every requested day failed"
// @Router       /api/v1/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	daysParam := c.Query("days")
	if daysParam == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("days is required", nil))
		return
	}
	days, err := strconv.Atoi(daysParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("days must be an integer", err))
		return
	}

	currencies := h.defaultCurrencies
	if raw := c.Query("currencies"); raw != "" {
		currencies = nil
		for _, part := range strings.Split(raw, ",") {
			code := strings.ToUpper(strings.TrimSpace(part))
			if code != "" {
				currencies = append(currencies, code)
			}
		}
		if len(currencies) == 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("currencies must contain at least one code", nil))
			return
		}
	}

	h.audit.Write("api history days=" + daysParam + " currencies=" + strings.Join(currencies, ","))

	res, err := h.agg.History(c.Request.Context(), days, models.NewCurrencyFilter(currencies))
	if err != nil {
		if errors.Is(err, history.ErrDepthExceeded) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("days is out of the supported range", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch history", err))
		return
	}

	h.metrics.ObserveHistory(res)
	if raw, err := json.Marshal(res); err == nil {
		h.audit.Write(string(raw))
	}

	resp := dto.NewHistoryResponse(res, days, currencies)

	// Every requested day failed upstream; the body still carries the
	// failure breakdown so callers can tell why.
	if res.Status == models.StatusEmpty {
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
