package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// LedgerUC defines the interface for credit ledger business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/velora/dispatch/services/ledger LedgerUC
type LedgerUC interface {
	// AddCredits handles an admin top-up, optionally recording a credit
	// package name and extending the expiry.
	AddCredits(ctx context.Context, driverID uuid.UUID, amount int64, packageName string, expiresAt *time.Time) (*models.CreditLedgerEntry, error)

	// DeductCredits handles a generic admin deduction.
	DeductCredits(ctx context.Context, driverID uuid.UUID, amount int64, note string) (*models.CreditLedgerEntry, error)

	// RefundCredits returns credits taken for a trip.
	RefundCredits(ctx context.Context, driverID, tripID uuid.UUID, amount int64) (*models.CreditLedgerEntry, error)

	// GetBalance reads the driver's current prepaid balance.
	GetBalance(ctx context.Context, driverID uuid.UUID) (int64, error)

	// GetHistory lists the driver's ledger entries in a time range.
	GetHistory(ctx context.Context, driverID uuid.UUID, from, to time.Time, limit int) ([]*models.CreditLedgerEntry, error)
}
