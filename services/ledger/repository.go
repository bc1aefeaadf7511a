package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// LedgerRepo defines the interface for credit ledger data access. Every
// balance mutation commits together with exactly one ledger entry whose
// balance_after matches the post-mutation balance.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/velora/dispatch/services/ledger LedgerRepo
type LedgerRepo interface {
	// AddCredits tops up the driver's prepaid balance, optionally moving
	// the credit expiry.
	AddCredits(ctx context.Context, driverID uuid.UUID, amount int64, expiresAt *time.Time, note, actor string) (*models.CreditLedgerEntry, error)

	// DeductCredits removes credits, failing with ErrInsufficientBalance
	// rather than letting the balance go negative.
	DeductCredits(ctx context.Context, driverID uuid.UUID, amount int64, note, actor string) (*models.CreditLedgerEntry, error)

	// RefundCredits returns credits taken for a trip.
	RefundCredits(ctx context.Context, driverID uuid.UUID, tripID *uuid.UUID, amount int64, note, actor string) (*models.CreditLedgerEntry, error)

	// GetBalance reads the cached balance field.
	GetBalance(ctx context.Context, driverID uuid.UUID) (int64, error)

	// GetHistory lists ledger entries for audit, newest first.
	GetHistory(ctx context.Context, driverID uuid.UUID, from, to time.Time, limit int) ([]*models.CreditLedgerEntry, error)
}
