package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/trips"
)

// GetTrip returns the trip for status inspection.
func (uc *TripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, tripID)
}

// TransitionTrip applies a guarded lifecycle transition. Authorization runs
// before legality so an unrelated actor learns nothing about the trip's
// current state.
func (uc *TripUC) TransitionTrip(ctx context.Context, tripID uuid.UUID, actor models.Actor, desired models.TripStatus) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if err := authorize(actor, trip, desired); err != nil {
		return nil, err
	}

	// Acceptance is never a bare status write: it only happens inside the
	// offer settlement transaction.
	if desired == models.TripStatusAccepted {
		return nil, &trips.InvalidTransitionError{From: trip.Status, To: desired}
	}
	if !models.CanTransition(trip.Status, desired) {
		return nil, &trips.InvalidTransitionError{From: trip.Status, To: desired}
	}

	var updated *models.Trip
	switch desired {
	case models.TripStatusCompleted:
		// Completion always settles; the status write and the money moves
		// share one transaction.
		result, err := uc.settle(ctx, trip)
		if err != nil {
			return nil, err
		}
		trip.Status = models.TripStatusCompleted
		trip.PlatformCommission = &result.Commission
		trip.DriverEarnings = &result.DriverEarnings
		updated = trip
	case models.TripStatusCancelled:
		updated, err = uc.tripRepo.CancelTrip(ctx, trip, uc.cancellationRefund(trip))
		if err != nil {
			return nil, err
		}
	default:
		updated, err = uc.tripRepo.TransitionTrip(ctx, tripID, trip.Status, desired)
		if err != nil {
			return nil, err
		}
	}

	uc.publishTripEvent(ctx, updated)
	return updated, nil
}

// CompleteSettlement settles a finished trip on behalf of the system actor.
func (uc *TripUC) CompleteSettlement(ctx context.Context, tripID uuid.UUID) (*models.SettlementResult, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusInProgress {
		return nil, &trips.InvalidTransitionError{From: trip.Status, To: models.TripStatusCompleted}
	}

	result, err := uc.settle(ctx, trip)
	if err != nil {
		return nil, err
	}

	trip.Status = models.TripStatusCompleted
	uc.publishTripEvent(ctx, trip)
	return result, nil
}

// settle performs the completion fare split. The commission was fixed at
// acceptance; earnings are always fare minus commission, never re-rounded.
func (uc *TripUC) settle(ctx context.Context, trip *models.Trip) (*models.SettlementResult, error) {
	var commission int64
	if trip.PlatformCommission != nil {
		commission = *trip.PlatformCommission
	} else {
		commission = models.CommissionFor(trip.Fare, uc.cfg.Dispatch.CommissionRate)
	}
	earnings := trip.Fare - commission

	result, err := uc.tripRepo.CompleteSettlement(ctx, trip, commission, earnings)
	if err != nil {
		return nil, err
	}

	if err := uc.tripGW.PublishSettlement(ctx, *result); err != nil {
		logger.Warn("Failed to publish settlement",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	logger.Info("Trip settled",
		logger.String("trip_id", trip.ID.String()),
		logger.Int64("fare", result.Fare),
		logger.Int64("commission", result.Commission),
		logger.Int64("driver_earnings", result.DriverEarnings))
	return result, nil
}

// cancellationRefund returns the commission to refund for a cancellation.
// Only a trip cancelled after acceptance but before arrival gets one.
func (uc *TripUC) cancellationRefund(trip *models.Trip) int64 {
	if trip.Status != models.TripStatusAccepted || trip.PlatformCommission == nil {
		return 0
	}
	return *trip.PlatformCommission
}

func (uc *TripUC) publishTripEvent(ctx context.Context, trip *models.Trip) {
	event := models.TripEvent{
		TripID:    trip.ID.String(),
		RiderID:   trip.RiderID.String(),
		Status:    trip.Status,
		Timestamp: time.Now(),
	}
	if trip.DriverID != nil {
		event.DriverID = trip.DriverID.String()
	}
	if err := uc.tripGW.PublishTripEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.String("status", string(trip.Status)),
			logger.Err(err))
	}
}

// authorize checks the actor's relationship to the trip against the
// transition they request. The rider on the trip may cancel; the driver on
// the trip may advance it or cancel; the system may do anything.
func authorize(actor models.Actor, trip *models.Trip, desired models.TripStatus) error {
	switch actor.Role {
	case models.ActorSystem:
		return nil
	case models.ActorRider:
		if actor.ID != trip.RiderID {
			return trips.ErrForbidden
		}
		if desired != models.TripStatusCancelled {
			return trips.ErrForbidden
		}
		return nil
	case models.ActorDriver:
		if trip.DriverID == nil || actor.ID != *trip.DriverID {
			return trips.ErrForbidden
		}
		switch desired {
		case models.TripStatusArrived, models.TripStatusInProgress,
			models.TripStatusCompleted, models.TripStatusCancelled:
			return nil
		}
		return trips.ErrForbidden
	}
	return trips.ErrForbidden
}
