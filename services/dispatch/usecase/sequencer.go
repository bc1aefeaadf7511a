package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
)

// errPushFailed marks a send whose real-time delivery failed. The sequencer
// treats it as an immediate advance to the next candidate.
var errPushFailed = errors.New("offer push delivery failed")

// expiredSweepBatch bounds how many overdue offers one sweep tick resolves.
const expiredSweepBatch = 50

// sendNextOffer walks the trip's remaining PENDING offers in rank order
// until one is successfully sent. When the round is exhausted it notifies
// the rider and returns ErrNoCandidates.
func (uc *DispatchUC) sendNextOffer(ctx context.Context, trip *models.Trip) (*models.TripOffer, error) {
	for {
		offer, err := uc.dispatchRepo.GetNextPendingOffer(ctx, trip.ID)
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("Dispatch round exhausted all candidates",
				logger.String("trip_id", trip.ID.String()))
			uc.notifyNoDrivers(ctx, trip)
			return nil, dispatch.ErrNoCandidates
		}
		if err != nil {
			return nil, err
		}

		switch err := uc.sendOffer(ctx, trip, offer); {
		case err == nil:
			return offer, nil
		case errors.Is(err, dispatch.ErrOfferConflict), errors.Is(err, errPushFailed):
			// Offer resolved by a concurrent actor, or undeliverable.
			// Either way the round moves on.
			continue
		default:
			return nil, err
		}
	}
}

// sendOffer marks the offer sent, pushes it to the driver and arms the
// expiry timer. The sent marker is a conditional write so a concurrently
// resolved offer cannot be re-sent.
func (uc *DispatchUC) sendOffer(ctx context.Context, trip *models.Trip, offer *models.TripOffer) error {
	sentAt := time.Now()
	expiresAt := sentAt.Add(uc.cfg.Dispatch.OfferTimeout)

	if err := uc.dispatchRepo.MarkOfferSent(ctx, offer.ID, sentAt, expiresAt); err != nil {
		return err
	}
	offer.SentAt = &sentAt
	offer.ExpiresAt = &expiresAt

	if err := uc.dispatchRepo.MarkDriverOffered(ctx, trip.ID, offer.DriverID); err != nil {
		logger.Warn("Failed to record offered driver",
			logger.String("trip_id", trip.ID.String()),
			logger.String("driver_id", offer.DriverID.String()),
			logger.Err(err))
	}
	if err := uc.dispatchRepo.IncrementOffersReceived(ctx, offer.DriverID); err != nil {
		logger.Warn("Failed to increment offers received",
			logger.String("driver_id", offer.DriverID.String()),
			logger.Err(err))
	}

	event := models.OfferEvent{
		OfferID:        offer.ID.String(),
		TripID:         trip.ID.String(),
		DriverID:       offer.DriverID.String(),
		Pickup:         trip.Pickup(),
		Dropoff:        trip.Dropoff(),
		Fare:           trip.Fare,
		EtaSeconds:     offer.EtaSeconds,
		DistanceMeters: offer.DistanceMeters,
		ExpiresAt:      expiresAt,
	}
	if err := uc.dispatchGW.PublishOfferPushed(ctx, event); err != nil {
		logger.Warn("Failed to push offer to driver, advancing to next candidate",
			logger.String("offer_id", offer.ID.String()),
			logger.String("driver_id", offer.DriverID.String()),
			logger.Err(err))
		if expErr := uc.dispatchRepo.TransitionOfferStatus(ctx, offer.ID, models.OfferStatusPending, models.OfferStatusExpired); expErr != nil && !errors.Is(expErr, dispatch.ErrOfferConflict) {
			logger.Error("Failed to expire undeliverable offer",
				logger.String("offer_id", offer.ID.String()),
				logger.Err(expErr))
		}
		return errPushFailed
	}

	uc.scheduleExpiry(offer.ID, trip.ID)

	logger.Info("Offer sent",
		logger.String("offer_id", offer.ID.String()),
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", offer.DriverID.String()),
		logger.Float64("score", offer.Score))
	return nil
}

// scheduleExpiry arms a one-shot timer for the offer window. The callback
// runs on its own goroutine with a fresh context since the request context
// that sent the offer is long gone by then.
func (uc *DispatchUC) scheduleExpiry(offerID, tripID uuid.UUID) {
	time.AfterFunc(uc.cfg.Dispatch.OfferTimeout, func() {
		uc.expireOffer(context.Background(), offerID, tripID)
	})
}

// expireOffer conditionally moves an offer PENDING→EXPIRED and advances the
// round. An offer already resolved by accept or reject is left alone.
func (uc *DispatchUC) expireOffer(ctx context.Context, offerID, tripID uuid.UUID) {
	err := uc.dispatchRepo.TransitionOfferStatus(ctx, offerID, models.OfferStatusPending, models.OfferStatusExpired)
	if errors.Is(err, dispatch.ErrOfferConflict) {
		return
	}
	if err != nil {
		logger.Error("Failed to expire offer",
			logger.String("offer_id", offerID.String()),
			logger.Err(err))
		return
	}

	logger.Info("Offer expired without response",
		logger.String("offer_id", offerID.String()),
		logger.String("trip_id", tripID.String()))

	if offer, err := uc.dispatchRepo.GetOffer(ctx, offerID); err == nil {
		if pubErr := uc.dispatchGW.PublishOfferExpired(ctx, offer); pubErr != nil {
			logger.Warn("Failed to publish offer expiry",
				logger.String("offer_id", offerID.String()),
				logger.Err(pubErr))
		}
	}

	uc.advanceRound(ctx, tripID)
}

// advanceRound sends the next ranked offer for a trip that is still waiting
// on a driver. Trips already accepted or cancelled end the round quietly.
func (uc *DispatchUC) advanceRound(ctx context.Context, tripID uuid.UUID) {
	trip, err := uc.dispatchRepo.GetTrip(ctx, tripID)
	if err != nil {
		logger.Error("Failed to load trip while advancing dispatch round",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
		return
	}
	if trip.Status != models.TripStatusRequested {
		return
	}

	if _, err := uc.sendNextOffer(ctx, trip); err != nil && !errors.Is(err, dispatch.ErrNoCandidates) {
		logger.Error("Failed to advance dispatch round",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
}

// RunExpirySweeper resolves sent offers whose window lapsed without a
// response, catching timers lost to a process restart. It blocks until the
// context is cancelled and is meant to run on its own goroutine.
func (uc *DispatchUC) RunExpirySweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			offers, err := uc.dispatchRepo.ListExpiredSentOffers(ctx, expiredSweepBatch)
			if err != nil {
				logger.Error("Failed to list overdue offers", logger.Err(err))
				continue
			}
			for _, offer := range offers {
				uc.expireOffer(ctx, offer.ID, offer.TripID)
			}
		}
	}
}
