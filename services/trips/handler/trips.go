package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/internal/utils"
	"github.com/velora/dispatch/services/trips"
)

// TransitionRequest carries the actor and the status they request.
type TransitionRequest struct {
	ActorID   string            `json:"actor_id"`
	ActorRole models.ActorRole  `json:"actor_role"`
	Status    models.TripStatus `json:"status"`
}

// GetTrip returns a trip by ID.
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", trip)
}

// TransitionTrip applies a guarded lifecycle transition on behalf of an
// actor.
func (h *TripHandler) TransitionTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid actor ID")
	}
	switch req.ActorRole {
	case models.ActorRider, models.ActorDriver, models.ActorSystem:
	default:
		return utils.BadRequestResponse(c, "Invalid actor role")
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	actor := models.Actor{ID: actorID, Role: req.ActorRole}
	trip, err := h.tripUC.TransitionTrip(c.Request().Context(), tripID, actor, req.Status)
	if err != nil {
		var invalid *trips.InvalidTransitionError
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, trips.ErrForbidden):
			return utils.ForbiddenResponse(c, "Actor is not allowed to transition this trip")
		case errors.As(err, &invalid):
			return utils.UnprocessableEntityResponse(c, invalid.Error())
		case errors.Is(err, trips.ErrTransitionConflict):
			return utils.ConflictResponse(c, "Trip was modified concurrently")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to transition trip")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip transitioned", trip)
}

// CompleteSettlement settles a finished trip.
func (h *TripHandler) CompleteSettlement(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	result, err := h.tripUC.CompleteSettlement(c.Request().Context(), tripID)
	if err != nil {
		var invalid *trips.InvalidTransitionError
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.As(err, &invalid):
			return utils.UnprocessableEntityResponse(c, invalid.Error())
		case errors.Is(err, trips.ErrTransitionConflict):
			return utils.ConflictResponse(c, "Trip was modified concurrently")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to settle trip")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip settled", result)
}
