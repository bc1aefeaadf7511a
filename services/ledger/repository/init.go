package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/velora/dispatch/internal/pkg/models"
)

// LedgerRepo implements credit ledger data access against postgres
type LedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(cfg *models.Config, db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{
		cfg: cfg,
		db:  db,
	}
}
