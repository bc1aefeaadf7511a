package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/utils"
	"github.com/velora/dispatch/services/location"
)

// ReportLocationRequest is one driver position report.
type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ReportLocation evaluates a driver position report.
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	report, err := h.locationUC.ReportLocation(c.Request().Context(), driverID, req.Latitude, req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidCoordinates):
			return utils.BadRequestResponse(c, "Invalid coordinates")
		case errors.Is(err, location.ErrDriverNotFound):
			return utils.NotFoundResponse(c, "Driver not found")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to process location report")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location report processed", report)
}
