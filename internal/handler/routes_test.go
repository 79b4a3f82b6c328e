package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dafibh/tripfund/tripfund-backend/internal/middleware"
	"github.com/dafibh/tripfund/tripfund-backend/internal/service"
	"github.com/dafibh/tripfund/tripfund-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes_WebSocketUpgradeIsRateLimited(t *testing.T) {
	e := echo.New()
	rateLimiter := middleware.NewRateLimiterWithConfig(1, 1)
	defer rateLimiter.Stop()

	tripFundService := service.NewTripFundService(0)
	RegisterRoutes(e, rateLimiter,
		NewTripFundHandler(tripFundService),
		NewWebSocketHandler(websocket.NewHub(), tripFundService, testAllowedOrigins))

	// First attempt reaches the handler and fails the handshake
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/trip-fund", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/trip-fund", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRegisterRoutes_CalculateSharesLimit(t *testing.T) {
	e := echo.New()
	rateLimiter := middleware.NewRateLimiterWithConfig(1, 1)
	defer rateLimiter.Stop()

	tripFundService := service.NewTripFundService(0)
	RegisterRoutes(e, rateLimiter,
		NewTripFundHandler(tripFundService),
		NewWebSocketHandler(websocket.NewHub(), tripFundService, testAllowedOrigins))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trip-fund/calculate?baseCost=1000&currentSavings=500&monthlyDeposit=200", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/trip-fund", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
