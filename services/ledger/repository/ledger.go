package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/ledger"
)

const entryColumns = `id, driver_id, trip_id, delta, balance_after,
	action, amount, note, actor, created_at`

// AddCredits tops up the driver's balance and appends the entry in one
// transaction. A non-nil expiresAt replaces the current credit expiry.
func (r *LedgerRepo) AddCredits(ctx context.Context, driverID uuid.UUID, amount int64, expiresAt *time.Time, note, actor string) (*models.CreditLedgerEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	var balance int64
	query := `
		UPDATE drivers
		SET credit_balance = credit_balance + $1,
		    credit_expires_at = COALESCE($2, credit_expires_at),
		    updated_at = $3
		WHERE id = $4
		RETURNING credit_balance
	`
	err = tx.QueryRowContext(ctx, query, amount, expiresAt, now, driverID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to add credits: %w", err)
	}

	entry, err := r.insertEntry(ctx, tx, &models.CreditLedgerEntry{
		DriverID:     driverID,
		Delta:        amount,
		BalanceAfter: balance,
		Action:       models.LedgerActionAdminAdd,
		Amount:       &amount,
		Note:         note,
		Actor:        actor,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit top-up: %w", err)
	}
	return entry, nil
}

// DeductCredits removes credits under a non-negative balance guard.
func (r *LedgerRepo) DeductCredits(ctx context.Context, driverID uuid.UUID, amount int64, note, actor string) (*models.CreditLedgerEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	var balance int64
	query := `
		UPDATE drivers
		SET credit_balance = credit_balance - $1, updated_at = $2
		WHERE id = $3 AND credit_balance >= $1
		RETURNING credit_balance
	`
	err = tx.QueryRowContext(ctx, query, amount, now, driverID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var current int64
			checkErr := tx.QueryRowContext(ctx,
				`SELECT credit_balance FROM drivers WHERE id = $1`, driverID).Scan(&current)
			if errors.Is(checkErr, sql.ErrNoRows) {
				return nil, ledger.ErrDriverNotFound
			}
			return nil, ledger.ErrInsufficientBalance
		}
		return nil, fmt.Errorf("failed to deduct credits: %w", err)
	}

	entry, err := r.insertEntry(ctx, tx, &models.CreditLedgerEntry{
		DriverID:     driverID,
		Delta:        -amount,
		BalanceAfter: balance,
		Action:       models.LedgerActionAdminDeduct,
		Amount:       &amount,
		Note:         note,
		Actor:        actor,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit deduction: %w", err)
	}
	return entry, nil
}

// RefundCredits returns credits taken for a trip.
func (r *LedgerRepo) RefundCredits(ctx context.Context, driverID uuid.UUID, tripID *uuid.UUID, amount int64, note, actor string) (*models.CreditLedgerEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	var balance int64
	query := `
		UPDATE drivers
		SET credit_balance = credit_balance + $1, updated_at = $2
		WHERE id = $3
		RETURNING credit_balance
	`
	err = tx.QueryRowContext(ctx, query, amount, now, driverID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to refund credits: %w", err)
	}

	entry, err := r.insertEntry(ctx, tx, &models.CreditLedgerEntry{
		DriverID:     driverID,
		TripID:       tripID,
		Delta:        amount,
		BalanceAfter: balance,
		Action:       models.LedgerActionRefund,
		Amount:       &amount,
		Note:         note,
		Actor:        actor,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit refund: %w", err)
	}
	return entry, nil
}

// GetBalance reads the cached balance field.
func (r *LedgerRepo) GetBalance(ctx context.Context, driverID uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance,
		`SELECT credit_balance FROM drivers WHERE id = $1`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ledger.ErrDriverNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// GetHistory lists ledger entries for audit, newest first.
func (r *LedgerRepo) GetHistory(ctx context.Context, driverID uuid.UUID, from, to time.Time, limit int) ([]*models.CreditLedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM credit_ledger_entries
		WHERE driver_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC
		LIMIT $4
	`
	var entries []*models.CreditLedgerEntry
	if err := r.db.SelectContext(ctx, &entries, query, driverID, from, to, limit); err != nil {
		return nil, fmt.Errorf("failed to get ledger history: %w", err)
	}
	return entries, nil
}

func (r *LedgerRepo) insertEntry(ctx context.Context, tx *sqlx.Tx, entry *models.CreditLedgerEntry) (*models.CreditLedgerEntry, error) {
	query := `
		INSERT INTO credit_ledger_entries (
			driver_id, trip_id, delta, balance_after, action, amount, note, actor, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := tx.QueryRowContext(ctx, query,
		entry.DriverID, entry.TripID, entry.Delta, entry.BalanceAfter,
		entry.Action, entry.Amount, entry.Note, entry.Actor, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to write ledger entry: %w", err)
	}
	return entry, nil
}
