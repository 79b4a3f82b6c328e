package handler

import (
	"net/http"

	"github.com/dafibh/tripfund/tripfund-backend/internal/service"
	"github.com/dafibh/tripfund/tripfund-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler serves live calculator sessions over WebSocket
type WebSocketHandler struct {
	hub             *websocket.Hub
	tripFundService *service.TripFundService
	allowedOrigins  map[string]bool
	upgrader        ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, tripFundService *service.TripFundService, allowedOrigins []string) *WebSocketHandler {
	// Build origin lookup map
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:             hub,
		tripFundService: tripFundService,
		allowedOrigins:  originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Allow requests with no Origin header (e.g., same-origin or non-browser clients)
		return true
	}

	if h.allowedOrigins[origin] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS handles WebSocket connection requests at GET /ws/trip-fund.
// Each connection gets its own calculator session.
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	session := service.NewCalculatorSession(h.tripFundService)
	client := websocket.NewClient(conn, h.hub, session)
	h.hub.Register(client)

	log.Info().
		Str("client_id", client.ID()).
		Msg("WebSocket client connected")

	if err := client.SendEvent(websocket.SessionReady(client.ID(), session.Snapshot())); err != nil {
		log.Warn().Err(err).Str("client_id", client.ID()).Msg("Failed to send session ready event")
	}

	// Start read/write pumps in goroutines
	go client.WritePump()
	go client.ReadPump()

	return nil
}
