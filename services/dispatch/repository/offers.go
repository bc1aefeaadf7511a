package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
)

const offerColumns = `
	id, trip_id, driver_id, status, score, eta_seconds, distance_meters,
	sent_at, expires_at, responded_at, created_at
`

// CreateOffers inserts the ranked offers of a dispatch round in one
// transaction so a crashed round never leaves a partial ranking.
func (r *DispatchRepo) CreateOffers(ctx context.Context, offers []*models.TripOffer) error {
	if len(offers) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO trip_offers (
			id, trip_id, driver_id, status, score,
			eta_seconds, distance_meters, created_at
		) VALUES (
			:id, :trip_id, :driver_id, :status, :score,
			:eta_seconds, :distance_meters, :created_at
		)
	`
	for _, offer := range offers {
		if _, err := tx.NamedExecContext(ctx, insertQuery, offer); err != nil {
			return fmt.Errorf("failed to insert offer: %w", err)
		}
	}

	return tx.Commit()
}

// GetOffer retrieves an offer by ID
func (r *DispatchRepo) GetOffer(ctx context.Context, offerID uuid.UUID) (*models.TripOffer, error) {
	var offer models.TripOffer
	query := `SELECT ` + offerColumns + ` FROM trip_offers WHERE id = $1`
	if err := r.db.GetContext(ctx, &offer, query, offerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrOfferNotActive
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// GetActiveOffer returns the trip's PENDING offer that has been sent to its
// driver and not yet resolved.
func (r *DispatchRepo) GetActiveOffer(ctx context.Context, tripID uuid.UUID) (*models.TripOffer, error) {
	var offer models.TripOffer
	query := `
		SELECT ` + offerColumns + `
		FROM trip_offers
		WHERE trip_id = $1 AND status = $2 AND sent_at IS NOT NULL
		ORDER BY score DESC, eta_seconds, driver_id
		LIMIT 1
	`
	if err := r.db.GetContext(ctx, &offer, query, tripID, models.OfferStatusPending); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrOfferNotActive
		}
		return nil, fmt.Errorf("failed to get active offer: %w", err)
	}
	return &offer, nil
}

// GetNextPendingOffer returns the best-ranked offer of the trip that has not
// been sent yet. Score ties break on lower ETA then driver ID so the order
// is stable.
func (r *DispatchRepo) GetNextPendingOffer(ctx context.Context, tripID uuid.UUID) (*models.TripOffer, error) {
	var offer models.TripOffer
	query := `
		SELECT ` + offerColumns + `
		FROM trip_offers
		WHERE trip_id = $1 AND status = $2 AND sent_at IS NULL
		ORDER BY score DESC, eta_seconds, driver_id
		LIMIT 1
	`
	if err := r.db.GetContext(ctx, &offer, query, tripID, models.OfferStatusPending); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get next pending offer: %w", err)
	}
	return &offer, nil
}

// MarkOfferSent stamps the offer's delivery window. Only an unsent PENDING
// offer can be marked, so a sweep and a live round cannot both send it.
func (r *DispatchRepo) MarkOfferSent(ctx context.Context, offerID uuid.UUID, sentAt, expiresAt time.Time) error {
	query := `
		UPDATE trip_offers
		SET sent_at = $1, expires_at = $2
		WHERE id = $3 AND status = $4 AND sent_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, sentAt, expiresAt, offerID, models.OfferStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark offer sent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return dispatch.ErrOfferConflict
	}
	return nil
}

// TransitionOfferStatus moves an offer between states with a conditional
// update. A zero row count means another actor resolved the offer first.
func (r *DispatchRepo) TransitionOfferStatus(ctx context.Context, offerID uuid.UUID, from, to models.OfferStatus) error {
	query := `
		UPDATE trip_offers
		SET status = $1, responded_at = $2
		WHERE id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query, to, time.Now(), offerID, from)
	if err != nil {
		return fmt.Errorf("failed to transition offer status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return dispatch.ErrOfferConflict
	}
	return nil
}

// ListExpiredSentOffers returns sent PENDING offers whose window has passed.
// Used by the sweep to catch offers whose in-process timer was lost.
func (r *DispatchRepo) ListExpiredSentOffers(ctx context.Context, limit int) ([]*models.TripOffer, error) {
	var offers []*models.TripOffer
	query := `
		SELECT ` + offerColumns + `
		FROM trip_offers
		WHERE status = $1 AND expires_at IS NOT NULL AND expires_at < $2
		ORDER BY expires_at
		LIMIT $3
	`
	if err := r.db.SelectContext(ctx, &offers, query, models.OfferStatusPending, time.Now(), limit); err != nil {
		return nil, fmt.Errorf("failed to list expired offers: %w", err)
	}
	return offers, nil
}

// GetTrip retrieves a trip by ID
func (r *DispatchRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	query := `
		SELECT id, rider_id, driver_id,
		       pickup_latitude, pickup_longitude,
		       dropoff_latitude, dropoff_longitude,
		       service_type, fare, platform_commission, driver_earnings,
		       payment_method, status, requested_at, accepted_at,
		       arrived_at, started_at, completed_at, cancelled_at
		FROM trips
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &trip, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// AcceptOffer performs acceptance settlement in a single transaction: the
// offer is claimed, sibling offers are cancelled, the trip is assigned, the
// commission is debited from the driver's prepaid credits and the ledger
// records the debit. Any failed step rolls the whole settlement back.
func (r *DispatchRepo) AcceptOffer(ctx context.Context, offer *models.TripOffer, trip *models.Trip, commission int64) (*models.AcceptanceSettlement, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	// Claim the offer. Zero rows means it expired or was resolved first.
	claimQuery := `
		UPDATE trip_offers
		SET status = $1, responded_at = $2
		WHERE id = $3 AND status = $4
	`
	result, err := tx.ExecContext(ctx, claimQuery,
		models.OfferStatusAccepted, now, offer.ID, models.OfferStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to claim offer: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return nil, dispatch.ErrOfferConflict
	}

	// Cancel every other unresolved offer of the round.
	cancelQuery := `
		UPDATE trip_offers
		SET status = $1, responded_at = $2
		WHERE trip_id = $3 AND id != $4 AND status = $5
	`
	if _, err := tx.ExecContext(ctx, cancelQuery,
		models.OfferStatusCancelled, now, offer.TripID, offer.ID, models.OfferStatusPending); err != nil {
		return nil, fmt.Errorf("failed to cancel sibling offers: %w", err)
	}

	// Assign the trip. Guarded on REQUESTED so two acceptances of
	// different rounds cannot both win.
	tripQuery := `
		UPDATE trips
		SET status = $1, driver_id = $2, accepted_at = $3,
		    platform_commission = $4, driver_earnings = $5
		WHERE id = $6 AND status = $7
	`
	result, err = tx.ExecContext(ctx, tripQuery,
		models.TripStatusAccepted, offer.DriverID, now,
		commission, trip.Fare-commission, offer.TripID, models.TripStatusRequested)
	if err != nil {
		return nil, fmt.Errorf("failed to assign trip: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return nil, dispatch.ErrOfferConflict
	}

	// Debit the commission. The balance guard makes the debit atomic with
	// the eligibility check that happened at candidate selection.
	var remaining int64
	debitQuery := `
		UPDATE drivers
		SET credit_balance = credit_balance - $1, status = $2, updated_at = $3
		WHERE id = $4 AND credit_balance >= $1
		RETURNING credit_balance
	`
	err = tx.QueryRowContext(ctx, debitQuery,
		commission, models.DriverStatusBusy, now, offer.DriverID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var available int64
			_ = tx.QueryRowContext(ctx,
				`SELECT credit_balance FROM drivers WHERE id = $1`,
				offer.DriverID).Scan(&available)
			return nil, &models.InsufficientCreditsError{
				Required:  commission,
				Available: available,
				Fare:      trip.Fare,
			}
		}
		return nil, fmt.Errorf("failed to debit commission: %w", err)
	}

	ledgerQuery := `
		INSERT INTO credit_ledger_entries (
			driver_id, trip_id, delta, balance_after, action, amount, note, actor, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := tx.ExecContext(ctx, ledgerQuery,
		offer.DriverID, offer.TripID, -commission, remaining,
		models.LedgerActionTripDeduction, commission,
		"commission on trip acceptance", "system", now); err != nil {
		return nil, fmt.Errorf("failed to write ledger entry: %w", err)
	}

	statsQuery := `
		INSERT INTO driver_acceptance_stats (driver_id, offers_received, offers_accepted)
		VALUES ($1, 0, 1)
		ON CONFLICT (driver_id)
		DO UPDATE SET offers_accepted = driver_acceptance_stats.offers_accepted + 1
	`
	if _, err := tx.ExecContext(ctx, statsQuery, offer.DriverID); err != nil {
		return nil, fmt.Errorf("failed to update acceptance stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit acceptance: %w", err)
	}

	return &models.AcceptanceSettlement{
		TripID:           offer.TripID.String(),
		DriverID:         offer.DriverID.String(),
		Commission:       commission,
		RemainingCredits: remaining,
	}, nil
}
