package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/ledger"
)

const defaultHistoryLimit = 100

// AddCredits handles an admin top-up. A package name, when given, is kept
// on the entry's note for audit.
func (uc *LedgerUC) AddCredits(ctx context.Context, driverID uuid.UUID, amount int64, packageName string, expiresAt *time.Time) (*models.CreditLedgerEntry, error) {
	if amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}

	note := "admin credit top-up"
	if packageName != "" {
		note = fmt.Sprintf("credit package %q", packageName)
	}

	entry, err := uc.ledgerRepo.AddCredits(ctx, driverID, amount, expiresAt, note, "admin")
	if err != nil {
		return nil, err
	}

	logger.Info("Credits added",
		logger.String("driver_id", driverID.String()),
		logger.Int64("amount", amount),
		logger.Int64("balance_after", entry.BalanceAfter))
	return entry, nil
}

// DeductCredits handles a generic admin deduction.
func (uc *LedgerUC) DeductCredits(ctx context.Context, driverID uuid.UUID, amount int64, note string) (*models.CreditLedgerEntry, error) {
	if amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	if note == "" {
		note = "admin credit deduction"
	}

	entry, err := uc.ledgerRepo.DeductCredits(ctx, driverID, amount, note, "admin")
	if err != nil {
		return nil, err
	}

	logger.Info("Credits deducted",
		logger.String("driver_id", driverID.String()),
		logger.Int64("amount", amount),
		logger.Int64("balance_after", entry.BalanceAfter))
	return entry, nil
}

// RefundCredits returns credits taken for a trip.
func (uc *LedgerUC) RefundCredits(ctx context.Context, driverID, tripID uuid.UUID, amount int64) (*models.CreditLedgerEntry, error) {
	if amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}

	entry, err := uc.ledgerRepo.RefundCredits(ctx, driverID, &tripID, amount,
		"credit refund", "admin")
	if err != nil {
		return nil, err
	}

	logger.Info("Credits refunded",
		logger.String("driver_id", driverID.String()),
		logger.String("trip_id", tripID.String()),
		logger.Int64("amount", amount))
	return entry, nil
}

// GetBalance reads the driver's current prepaid balance.
func (uc *LedgerUC) GetBalance(ctx context.Context, driverID uuid.UUID) (int64, error) {
	return uc.ledgerRepo.GetBalance(ctx, driverID)
}

// GetHistory lists the driver's ledger entries. Zero times default to an
// unbounded range; a non-positive limit gets the default page size.
func (uc *LedgerUC) GetHistory(ctx context.Context, driverID uuid.UUID, from, to time.Time, limit int) ([]*models.CreditLedgerEntry, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return uc.ledgerRepo.GetHistory(ctx, driverID, from, to, limit)
}
