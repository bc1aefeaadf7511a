package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/trips"
)

const tripColumns = `id, rider_id, driver_id,
	pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	service_type, fare, platform_commission, driver_earnings,
	payment_method, status, requested_at, accepted_at,
	arrived_at, started_at, completed_at, cancelled_at`

// statusTimestampColumns maps a target status to the lifecycle timestamp it
// stamps. ACCEPTED and COMPLETED are absent: those statuses are only written
// inside their settlement transactions.
var statusTimestampColumns = map[models.TripStatus]string{
	models.TripStatusArrived:    "arrived_at",
	models.TripStatusInProgress: "started_at",
	models.TripStatusCancelled:  "cancelled_at",
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	if err := r.db.GetContext(ctx, &trip, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// TransitionTrip conditionally moves a trip between statuses, stamping the
// target status's lifecycle timestamp. Zero rows means a concurrent writer
// got there first.
func (r *TripRepo) TransitionTrip(ctx context.Context, tripID uuid.UUID, from, to models.TripStatus) (*models.Trip, error) {
	column, ok := statusTimestampColumns[to]
	if !ok {
		return nil, &trips.InvalidTransitionError{From: from, To: to}
	}

	var trip models.Trip
	query := `
		UPDATE trips
		SET status = $1, ` + column + ` = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + tripColumns + `
	`
	err := r.db.GetContext(ctx, &trip, query, to, time.Now(), tripID, from)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTransitionConflict
		}
		return nil, fmt.Errorf("failed to transition trip: %w", err)
	}
	return &trip, nil
}

// CancelTrip cancels a trip, retires the round's remaining pending offers,
// frees the assigned driver and, when refund > 0, returns the acceptance
// commission to the driver's credit balance with a matching ledger entry.
// All of it commits or none does.
func (r *TripRepo) CancelTrip(ctx context.Context, trip *models.Trip, refund int64) (*models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	var cancelled models.Trip
	cancelQuery := `
		UPDATE trips
		SET status = $1, cancelled_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + tripColumns + `
	`
	err = tx.GetContext(ctx, &cancelled, cancelQuery,
		models.TripStatusCancelled, now, trip.ID, trip.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTransitionConflict
		}
		return nil, fmt.Errorf("failed to cancel trip: %w", err)
	}

	// Retire any offers still waiting in the round so none outlives the trip.
	offerQuery := `
		UPDATE trip_offers
		SET status = $1, responded_at = $2
		WHERE trip_id = $3 AND status = $4
	`
	if _, err := tx.ExecContext(ctx, offerQuery,
		models.OfferStatusCancelled, now, trip.ID, models.OfferStatusPending); err != nil {
		return nil, fmt.Errorf("failed to cancel pending offers: %w", err)
	}

	if trip.DriverID != nil {
		var balance int64
		freeQuery := `
			UPDATE drivers
			SET status = $1, credit_balance = credit_balance + $2, updated_at = $3
			WHERE id = $4
			RETURNING credit_balance
		`
		err = tx.QueryRowContext(ctx, freeQuery,
			models.DriverStatusOnline, refund, now, *trip.DriverID).Scan(&balance)
		if err != nil {
			return nil, fmt.Errorf("failed to release driver: %w", err)
		}

		if refund > 0 {
			ledgerQuery := `
				INSERT INTO credit_ledger_entries (
					driver_id, trip_id, delta, balance_after, action, amount, note, actor, created_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`
			if _, err := tx.ExecContext(ctx, ledgerQuery,
				*trip.DriverID, trip.ID, refund, balance,
				models.LedgerActionRefund, refund,
				"commission refund on trip cancellation", "system", now); err != nil {
				return nil, fmt.Errorf("failed to write refund ledger entry: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}
	return &cancelled, nil
}

// CompleteSettlement closes a trip and applies the fare split: the rider's
// settleable balance is debited by the fare, the driver's earnings balance
// is credited, and the ledger records an audit note of the commission
// already collected at acceptance. One transaction, all or nothing.
func (r *TripRepo) CompleteSettlement(ctx context.Context, trip *models.Trip, commission, earnings int64) (*models.SettlementResult, error) {
	if trip.DriverID == nil {
		return nil, &trips.InvalidTransitionError{From: trip.Status, To: models.TripStatusCompleted}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	completeQuery := `
		UPDATE trips
		SET status = $1, completed_at = $2, platform_commission = $3, driver_earnings = $4
		WHERE id = $5 AND status = $6
	`
	result, err := tx.ExecContext(ctx, completeQuery,
		models.TripStatusCompleted, now, commission, earnings,
		trip.ID, models.TripStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to complete trip: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return nil, trips.ErrTransitionConflict
	}

	riderQuery := `
		UPDATE riders
		SET balance = balance - $1, updated_at = $2
		WHERE id = $3
	`
	result, err = tx.ExecContext(ctx, riderQuery, trip.Fare, now, trip.RiderID)
	if err != nil {
		return nil, fmt.Errorf("failed to debit rider: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return nil, fmt.Errorf("rider %s not found for settlement", trip.RiderID)
	}

	var creditBalance int64
	driverQuery := `
		UPDATE drivers
		SET earnings_balance = earnings_balance + $1, status = $2, updated_at = $3
		WHERE id = $4
		RETURNING credit_balance
	`
	err = tx.QueryRowContext(ctx, driverQuery,
		earnings, models.DriverStatusOnline, now, *trip.DriverID).Scan(&creditBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to credit driver earnings: %w", err)
	}

	// Audit note only. The commission left the driver's credits at
	// acceptance, so the delta here is zero.
	noteQuery := `
		INSERT INTO credit_ledger_entries (
			driver_id, trip_id, delta, balance_after, action, amount, note, actor, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := tx.ExecContext(ctx, noteQuery,
		*trip.DriverID, trip.ID, int64(0), creditBalance,
		models.LedgerActionSettlementNote, commission,
		"commission collected at acceptance", "system", now); err != nil {
		return nil, fmt.Errorf("failed to write settlement note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	return &models.SettlementResult{
		TripID:         trip.ID.String(),
		Fare:           trip.Fare,
		Commission:     commission,
		DriverEarnings: earnings,
	}, nil
}
