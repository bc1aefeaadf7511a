package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/utils"
	"github.com/velora/dispatch/services/ledger"
)

// AddCreditsRequest is an admin top-up.
type AddCreditsRequest struct {
	Amount      int64      `json:"amount"`
	PackageName string     `json:"package_name,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// DeductCreditsRequest is a generic admin deduction.
type DeductCreditsRequest struct {
	Amount int64  `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// RefundCreditsRequest returns credits taken for a trip.
type RefundCreditsRequest struct {
	Amount int64  `json:"amount"`
	TripID string `json:"trip_id"`
}

// AddCredits handles an admin credit top-up.
func (h *LedgerHandler) AddCredits(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req AddCreditsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	entry, err := h.ledgerUC.AddCredits(c.Request().Context(), driverID, req.Amount, req.PackageName, req.ExpiresAt)
	if err != nil {
		return h.mapError(c, err, "Failed to add credits")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Credits added", entry)
}

// DeductCredits handles a generic admin deduction.
func (h *LedgerHandler) DeductCredits(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req DeductCreditsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	entry, err := h.ledgerUC.DeductCredits(c.Request().Context(), driverID, req.Amount, req.Note)
	if err != nil {
		return h.mapError(c, err, "Failed to deduct credits")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Credits deducted", entry)
}

// RefundCredits returns credits taken for a trip.
func (h *LedgerHandler) RefundCredits(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req RefundCreditsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	entry, err := h.ledgerUC.RefundCredits(c.Request().Context(), driverID, tripID, req.Amount)
	if err != nil {
		return h.mapError(c, err, "Failed to refund credits")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Credits refunded", entry)
}

// GetBalance reads the driver's current prepaid balance.
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	balance, err := h.ledgerUC.GetBalance(c.Request().Context(), driverID)
	if err != nil {
		return h.mapError(c, err, "Failed to get balance")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", echo.Map{
		"driver_id": driverID,
		"balance":   balance,
	})
}

// GetHistory lists the driver's ledger entries, newest first. Accepts
// optional RFC3339 from/to query params and a limit.
func (h *LedgerHandler) GetHistory(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var from, to time.Time
	if v := c.QueryParam("from"); v != "" {
		if from, err = time.Parse(time.RFC3339, v); err != nil {
			return utils.BadRequestResponse(c, "Invalid from timestamp")
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if to, err = time.Parse(time.RFC3339, v); err != nil {
			return utils.BadRequestResponse(c, "Invalid to timestamp")
		}
	}
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
	}

	entries, err := h.ledgerUC.GetHistory(c.Request().Context(), driverID, from, to, limit)
	if err != nil {
		return h.mapError(c, err, "Failed to get ledger history")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ledger history retrieved", entries)
}

func (h *LedgerHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, ledger.ErrDriverNotFound):
		return utils.NotFoundResponse(c, "Driver not found")
	case errors.Is(err, ledger.ErrInvalidAmount):
		return utils.BadRequestResponse(c, "Amount must be positive")
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return utils.UnprocessableEntityResponse(c, "Deduction would make the balance negative")
	default:
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
