// Package ws implements the live-broadcast layer: a websocket chat hub
// where any message is relayed to every connected client and messages
// starting with "exchange" trigger a history aggregation whose rendered
// result is broadcast to the room.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/dmytroh/fxpulse/internal/auditlog"
	"github.com/dmytroh/fxpulse/internal/domain/models"
	"github.com/dmytroh/fxpulse/internal/history"
	"github.com/dmytroh/fxpulse/internal/logger"
	"github.com/dmytroh/fxpulse/internal/metrics"
	"github.com/dmytroh/fxpulse/internal/render"
)

const requestNotice = "Making a request to the exchange API..."

// Hub tracks connected clients and fans messages out to all of them.
// Broadcasting to an empty room is a no-op.
type Hub struct {
	agg               history.Aggregator
	defaultCurrencies []string
	maxDays           int
	audit             *auditlog.Sink
	metrics           *metrics.Metrics

	mu      sync.RWMutex
	clients map[*client]struct{}

	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewHub builds a hub over the given aggregator. defaultCurrencies is the
// filter applied when an exchange command names no codes; maxDays is only
// used for the depth-violation message shown to clients.
func NewHub(agg history.Aggregator, defaultCurrencies []string, maxDays int, audit *auditlog.Sink, m *metrics.Metrics) *Hub {
	return &Hub{
		agg:               agg,
		defaultCurrencies: defaultCurrencies,
		maxDays:           maxDays,
		audit:             audit,
		metrics:           m,
		clients:           make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the chat endpoint is open; origin policy is left to the proxy
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: logger.With("ws_hub"),
	}
}

// Handle upgrades a request to a websocket and runs the client's read loop
// until the connection drops.
//
// Handle godoc
// @Summary      Websocket chat endpoint
// @Description  Upgrades to a websocket. Messages are relayed to all clients; "exchange <days> [CUR...]" broadcasts a rate history.
// @Tags         ws
// @Router       /ws [get]
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	cl := &client{
		name: "guest-" + uuid.NewString()[:8],
		conn: conn,
		send: make(chan string, sendQueue),
	}
	go cl.writePump()

	h.register(cl)
	defer h.unregister(cl)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.metrics.WSMessagesTotal.Inc()
		h.handleMessage(c.Request.Context(), cl, string(data))
	}
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	h.metrics.WSClients.Inc()
	h.log.Info().Str("client", cl.name).Str("addr", cl.conn.RemoteAddr().String()).Msg("client connected")
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()

	h.metrics.WSClients.Dec()
	h.log.Info().Str("client", cl.name).Msg("client disconnected")
}

// Broadcast sends message to every connected client. Clients whose queue is
// full are skipped; the connection-level write pump will catch up or die.
func (h *Hub) Broadcast(message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for cl := range h.clients {
		select {
		case cl.send <- message:
		default:
			h.log.Warn().Str("client", cl.name).Msg("send queue full, message dropped")
		}
	}
}

// handleMessage relays a chat line and runs the exchange command when the
// line asks for one. Every response, including error hints, goes to the
// whole room, matching chat semantics.
func (h *Hub) handleMessage(ctx context.Context, cl *client, text string) {
	h.Broadcast(cl.name + ": " + text)

	lowered := strings.ToLower(strings.TrimSpace(text))
	if !strings.HasPrefix(lowered, "exchange") {
		return
	}

	h.Broadcast(requestNotice)
	if reply := h.runExchange(ctx, lowered); reply != "" {
		h.Broadcast(reply)
	}
}

// runExchange executes one aggregation for a parsed exchange command and
// returns the message to broadcast.
func (h *Hub) runExchange(ctx context.Context, command string) string {
	h.audit.Write(command)

	days, currencies, err := parseCommand(command)
	if err != nil {
		return usageHint
	}
	if len(currencies) == 0 {
		currencies = h.defaultCurrencies
	}

	res, err := h.agg.History(ctx, days, models.NewCurrencyFilter(currencies))
	if err != nil {
		if errors.Is(err, history.ErrDepthExceeded) {
			return fmt.Sprintf("You can get exchange history only within the last %d days.", h.maxDays)
		}
		h.log.Error().Err(err).Msg("history request failed")
		return "Exchange history is unavailable right now."
	}

	h.metrics.ObserveHistory(res)
	if raw, err := json.Marshal(res); err == nil {
		h.audit.Write(string(raw))
	}

	if res.Status == models.StatusEmpty {
		return "No exchange data could be retrieved for the requested days."
	}

	fragment, err := render.HTMLFragment(res)
	if err != nil {
		h.log.Error().Err(err).Msg("render failed")
		return "Exchange history is unavailable right now."
	}
	return fragment
}
