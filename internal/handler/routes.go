package handler

import (
	"github.com/dafibh/tripfund/tripfund-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, tripFundHandler *TripFundHandler, webSocketHandler *WebSocketHandler) {
	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API version 1
	api := e.Group("/api/v1")
	api.GET("/openapi.json", ServeOpenAPI3Spec)

	// Trip fund calculator routes (rate limited per client)
	tripFund := api.Group("/trip-fund")
	tripFund.Use(middleware.RateLimitMiddleware(rateLimiter))
	tripFund.POST("/calculate", tripFundHandler.Calculate)
	tripFund.GET("/calculate", tripFundHandler.CalculateQuery)
	tripFund.GET("/timeline", tripFundHandler.GetTimeline)

	// Live calculator sessions; upgrades share the per-client limit
	e.GET("/ws/trip-fund", webSocketHandler.HandleWS, middleware.RateLimitMiddleware(rateLimiter))
}
