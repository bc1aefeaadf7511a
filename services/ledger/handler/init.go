package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/velora/dispatch/internal/pkg/middleware"
	"github.com/velora/dispatch/services/ledger"
)

// LedgerHandler handles requests for the credit ledger service
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// RegisterRoutes registers all ledger HTTP routes. Credit mutations are
// restricted to the admin service.
func (h *LedgerHandler) RegisterRoutes(e *echo.Echo) {
	internal := e.Group("/internal")

	credits := internal.Group("/drivers/:driverID/credits", middleware.ValidateAPIKey("admin-service"))
	credits.POST("", h.AddCredits)
	credits.POST("/deduct", h.DeductCredits)
	credits.POST("/refund", h.RefundCredits)
	credits.GET("", h.GetBalance)
	credits.GET("/history", h.GetHistory)
}
