package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/pkg/middleware"
	"github.com/velora/dispatch/services/location"
)

// LocationHandler handles requests for the location integrity service
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// RegisterRoutes registers all location HTTP routes.
func (h *LocationHandler) RegisterRoutes(e *echo.Echo) {
	internal := e.Group("/internal")

	drivers := internal.Group("/drivers", middleware.ValidateAPIKey("driver-gateway", "location-service"))
	drivers.POST("/:driverID/location", h.ReportLocation)
}
