package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/pkg/middleware"
	"github.com/velora/dispatch/services/dispatch"
)

// DispatchHandler handles requests for the dispatch service
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// RegisterRoutes registers all dispatch HTTP routes. All routes are for
// service-to-service communication and require an API key.
func (h *DispatchHandler) RegisterRoutes(e *echo.Echo) {
	internal := e.Group("/internal")

	trips := internal.Group("/trips", middleware.ValidateAPIKey("trip-service", "driver-gateway"))
	trips.POST("/:tripID/dispatch", h.StartDispatch)
	trips.POST("/:tripID/offer/accept", h.AcceptOffer)
	trips.POST("/:tripID/offer/reject", h.RejectOffer)
}
