package usecase

import (
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/ledger"
)

// LedgerUC implements the credit ledger use case interface
type LedgerUC struct {
	cfg        *models.Config
	ledgerRepo ledger.LedgerRepo
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(cfg *models.Config, ledgerRepo ledger.LedgerRepo) *LedgerUC {
	return &LedgerUC{
		cfg:        cfg,
		ledgerRepo: ledgerRepo,
	}
}
