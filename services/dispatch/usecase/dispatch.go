package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
)

// StartDispatch runs one dispatch round for a REQUESTED trip: collect the
// candidate pool, rank it, create the round's offers and send the first one.
// It returns the offer that was sent, or ErrNoCandidates after notifying the
// rider that nobody is in range.
func (uc *DispatchUC) StartDispatch(ctx context.Context, tripID uuid.UUID) (*models.TripOffer, error) {
	trip, err := uc.dispatchRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusRequested {
		return nil, dispatch.ErrTripNotDispatchable
	}

	candidates, err := uc.collectCandidates(ctx, trip)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		uc.notifyNoDrivers(ctx, trip)
		return nil, dispatch.ErrNoCandidates
	}

	offers := make([]*models.TripOffer, 0, len(candidates))
	now := time.Now()
	for _, c := range candidates {
		offers = append(offers, &models.TripOffer{
			ID:             uuid.New(),
			TripID:         trip.ID,
			DriverID:       c.driver.ID,
			Status:         models.OfferStatusPending,
			Score:          c.score,
			EtaSeconds:     c.estimate.EtaSeconds,
			DistanceMeters: c.estimate.DistanceMeters,
			CreatedAt:      now,
		})
	}
	if err := uc.dispatchRepo.CreateOffers(ctx, offers); err != nil {
		return nil, fmt.Errorf("failed to create offers: %w", err)
	}

	logger.Info("Dispatch round started",
		logger.String("trip_id", trip.ID.String()),
		logger.Int("candidates", len(candidates)))

	return uc.sendNextOffer(ctx, trip)
}

// collectCandidates builds the scored candidate list for the trip: geo
// search around the pickup, eligibility filter against driver records, ETA
// estimates in one matrix call and acceptance stats in one aggregation.
func (uc *DispatchUC) collectCandidates(ctx context.Context, trip *models.Trip) ([]scoredCandidate, error) {
	nearby, err := uc.dispatchRepo.FindNearbyDrivers(ctx, trip.Pickup(), uc.cfg.Dispatch.SearchRadiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby drivers: %w", err)
	}

	candidateIDs := make([]uuid.UUID, 0, len(nearby))
	for _, n := range nearby {
		offered, err := uc.dispatchRepo.WasDriverOffered(ctx, trip.ID, n.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check offered set: %w", err)
		}
		if !offered {
			candidateIDs = append(candidateIDs, n.ID)
		}
	}
	if len(candidateIDs) == 0 {
		return nil, nil
	}

	drivers, err := uc.dispatchRepo.GetEligibleDrivers(ctx, candidateIDs, uc.cfg.Location.AnomalyCap)
	if err != nil {
		return nil, fmt.Errorf("failed to load eligible drivers: %w", err)
	}
	if len(drivers) == 0 {
		return nil, nil
	}

	origins := make([]models.Location, len(drivers))
	for i, d := range drivers {
		origins[i] = d.Location()
	}
	estimates, err := uc.matrix.Estimates(ctx, origins, trip.Pickup())
	if err != nil {
		return nil, fmt.Errorf("failed to estimate driver ETAs: %w", err)
	}

	stats, err := uc.dispatchRepo.GetAcceptanceStats(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load acceptance stats: %w", err)
	}

	return uc.rankCandidates(trip, drivers, estimates, stats), nil
}

// notifyNoDrivers tells the rider the round found nobody. Delivery failure
// is logged, not returned: the round outcome stands either way.
func (uc *DispatchUC) notifyNoDrivers(ctx context.Context, trip *models.Trip) {
	event := models.NoDriversEvent{
		TripID:    trip.ID.String(),
		RiderID:   trip.RiderID.String(),
		Timestamp: time.Now(),
	}
	if err := uc.dispatchGW.NotifyNoDrivers(ctx, event); err != nil {
		logger.Warn("Failed to notify rider of exhausted dispatch round",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
}
