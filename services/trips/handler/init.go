package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/pkg/middleware"
	"github.com/velora/dispatch/services/trips"
)

// TripHandler handles requests for the trip lifecycle service
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// RegisterRoutes registers all trip HTTP routes. All routes are for
// service-to-service communication and require an API key.
func (h *TripHandler) RegisterRoutes(e *echo.Echo) {
	internal := e.Group("/internal")

	trips := internal.Group("/trips", middleware.ValidateAPIKey("trip-service", "rider-gateway", "driver-gateway"))
	trips.GET("/:tripID", h.GetTrip)
	trips.POST("/:tripID/transition", h.TransitionTrip)
	trips.POST("/:tripID/settle", h.CompleteSettlement)
}
