package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/internal/utils"
	"github.com/velora/dispatch/services/dispatch"
)

// OfferResponseRequest identifies the driver answering their active offer.
type OfferResponseRequest struct {
	DriverID string `json:"driver_id"`
}

// StartDispatch runs a dispatch round for a trip.
func (h *DispatchHandler) StartDispatch(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	offer, err := h.dispatchUC.StartDispatch(c.Request().Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, dispatch.ErrTripNotDispatchable):
			return utils.ConflictResponse(c, "Trip is not in a dispatchable state")
		case errors.Is(err, dispatch.ErrNoCandidates):
			return utils.SuccessResponse(c, http.StatusOK, "No drivers available", nil)
		default:
			return utils.InternalServerErrorResponse(c, "Failed to start dispatch round")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispatch round started", offer)
}

// AcceptOffer settles a driver's acceptance of their active offer.
func (h *DispatchHandler) AcceptOffer(c echo.Context) error {
	tripID, driverID, err := h.bindOfferResponse(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	settlement, err := h.dispatchUC.AcceptOffer(c.Request().Context(), tripID, driverID)
	if err != nil {
		var insufficient *models.InsufficientCreditsError
		switch {
		case errors.As(err, &insufficient):
			return utils.UnprocessableEntityResponse(c, fmt.Sprintf(
				"Insufficient credits: required %d, available %d", insufficient.Required, insufficient.Available))
		case errors.Is(err, dispatch.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, dispatch.ErrNotOfferedDriver):
			return utils.ForbiddenResponse(c, "Driver does not hold the active offer")
		case errors.Is(err, dispatch.ErrOfferNotActive), errors.Is(err, dispatch.ErrOfferConflict), errors.Is(err, dispatch.ErrTripNotDispatchable):
			return utils.ConflictResponse(c, "Offer is no longer available")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to accept offer")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Offer accepted", settlement)
}

// RejectOffer records a driver's rejection and advances the round.
func (h *DispatchHandler) RejectOffer(c echo.Context) error {
	tripID, driverID, err := h.bindOfferResponse(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.dispatchUC.RejectOffer(c.Request().Context(), tripID, driverID); err != nil {
		switch {
		case errors.Is(err, dispatch.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, dispatch.ErrNotOfferedDriver):
			return utils.ForbiddenResponse(c, "Driver does not hold the active offer")
		case errors.Is(err, dispatch.ErrOfferNotActive), errors.Is(err, dispatch.ErrOfferConflict):
			return utils.ConflictResponse(c, "Offer is no longer available")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to reject offer")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Offer rejected", nil)
}

func (h *DispatchHandler) bindOfferResponse(c echo.Context) (tripID, driverID uuid.UUID, err error) {
	tripID, err = uuid.Parse(c.Param("tripID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid trip ID")
	}

	var req OfferResponseRequest
	if err := c.Bind(&req); err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid request body")
	}
	driverID, err = uuid.Parse(req.DriverID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid driver ID")
	}
	return tripID, driverID, nil
}
