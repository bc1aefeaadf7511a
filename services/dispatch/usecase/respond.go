package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
)

// AcceptOffer settles a driver's acceptance of the trip's active offer. The
// offer claim, sibling cancellation, trip assignment, commission debit and
// ledger entry commit as one unit; the caller gets either the settlement or
// an error with nothing applied.
func (uc *DispatchUC) AcceptOffer(ctx context.Context, tripID, driverID uuid.UUID) (*models.AcceptanceSettlement, error) {
	offer, err := uc.dispatchRepo.GetActiveOffer(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if offer.DriverID != driverID {
		return nil, dispatch.ErrNotOfferedDriver
	}
	if offer.ExpiresAt != nil && time.Now().After(*offer.ExpiresAt) {
		// The timer will resolve it; the accept is simply too late.
		return nil, dispatch.ErrOfferNotActive
	}

	trip, err := uc.dispatchRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusRequested {
		return nil, dispatch.ErrTripNotDispatchable
	}

	commission := models.CommissionFor(trip.Fare, uc.cfg.Dispatch.CommissionRate)

	settlement, err := uc.dispatchRepo.AcceptOffer(ctx, offer, trip, commission)
	if err != nil {
		var insufficient *models.InsufficientCreditsError
		if errors.As(err, &insufficient) {
			// The driver cannot fund the commission: retire their offer
			// and move the round along before surfacing the error.
			uc.retireOffer(ctx, offer, tripID)
		}
		return nil, err
	}

	if err := uc.dispatchRepo.RemoveDriverAvailability(ctx, driverID); err != nil {
		logger.Warn("Failed to remove accepted driver from available pool",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	if err := uc.dispatchGW.PublishOfferAccepted(ctx, *settlement); err != nil {
		logger.Warn("Failed to publish offer acceptance",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	logger.Info("Offer accepted",
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Int64("commission", settlement.Commission))

	return settlement, nil
}

// RejectOffer records an explicit rejection and advances the round to the
// next ranked candidate.
func (uc *DispatchUC) RejectOffer(ctx context.Context, tripID, driverID uuid.UUID) error {
	offer, err := uc.dispatchRepo.GetActiveOffer(ctx, tripID)
	if err != nil {
		return err
	}
	if offer.DriverID != driverID {
		return dispatch.ErrNotOfferedDriver
	}

	if err := uc.dispatchRepo.TransitionOfferStatus(ctx, offer.ID, models.OfferStatusPending, models.OfferStatusRejected); err != nil {
		if errors.Is(err, dispatch.ErrOfferConflict) {
			return dispatch.ErrOfferNotActive
		}
		return err
	}

	logger.Info("Offer rejected",
		logger.String("offer_id", offer.ID.String()),
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", driverID.String()))

	uc.advanceRound(ctx, tripID)
	return nil
}

// retireOffer cancels an offer that can no longer be accepted and advances
// the round. Used when settlement rejects the accepting driver.
func (uc *DispatchUC) retireOffer(ctx context.Context, offer *models.TripOffer, tripID uuid.UUID) {
	err := uc.dispatchRepo.TransitionOfferStatus(ctx, offer.ID, models.OfferStatusPending, models.OfferStatusCancelled)
	if err != nil && !errors.Is(err, dispatch.ErrOfferConflict) {
		logger.Error("Failed to cancel unfundable offer",
			logger.String("offer_id", offer.ID.String()),
			logger.Err(err))
		return
	}
	uc.advanceRound(ctx, tripID)
}
