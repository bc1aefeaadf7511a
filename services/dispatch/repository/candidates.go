package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/velora/dispatch/internal/pkg/constants"
	"github.com/velora/dispatch/internal/pkg/models"
)

// offeredKeyTTL keeps the offered-driver set alive slightly longer than any
// realistic dispatch round so abandoned rounds clean themselves up.
const offeredKeyTTL = 30 * time.Minute

// FindNearbyDrivers returns available drivers within the radius of the
// pickup point, nearest first.
func (r *DispatchRepo) FindNearbyDrivers(ctx context.Context, pickup models.Location, radiusKm float64) ([]*models.NearbyDriver, error) {
	results, err := r.redisClient.GeoRadius(
		ctx,
		constants.KeyDriverGeo,
		pickup.Longitude,
		pickup.Latitude,
		radiusKm,
		"km",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo index: %w", err)
	}

	nearby := make([]*models.NearbyDriver, 0, len(results))
	for _, result := range results {
		isAvailable, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, result.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check driver availability: %w", err)
		}
		if !isAvailable {
			continue
		}

		driverID, err := uuid.Parse(result.Name)
		if err != nil {
			continue
		}

		nearby = append(nearby, &models.NearbyDriver{
			ID: driverID,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
				Timestamp: time.Now(),
			},
			DistanceKm: result.Dist,
		})
	}

	return nearby, nil
}

// GetEligibleDrivers filters the geo candidates against the authoritative
// driver records: online, below the anomaly cap, holding a positive and
// unexpired credit balance. Insufficient credit for the actual commission is
// caught at acceptance, not here.
func (r *DispatchRepo) GetEligibleDrivers(ctx context.Context, driverIDs []uuid.UUID, anomalyCap int) ([]*models.Driver, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, status, vehicle_type, latitude, longitude, rating,
		       credit_balance, credit_expires_at, earnings_balance,
		       anomaly_count, updated_at
		FROM drivers
		WHERE id = ANY($1)
		  AND status = $2
		  AND anomaly_count < $3
		  AND credit_balance > 0
		  AND (credit_expires_at IS NULL OR credit_expires_at > $4)
	`

	var drivers []*models.Driver
	err := r.db.SelectContext(ctx, &drivers, query,
		pq.Array(driverIDs), models.DriverStatusOnline, anomalyCap, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible drivers: %w", err)
	}

	return drivers, nil
}

// GetAcceptanceStats loads offer statistics for all candidates in one query.
// Drivers with no history are absent from the result map.
func (r *DispatchRepo) GetAcceptanceStats(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]models.AcceptanceStats, error) {
	if len(driverIDs) == 0 {
		return map[uuid.UUID]models.AcceptanceStats{}, nil
	}

	query := `
		SELECT driver_id, offers_received, offers_accepted
		FROM driver_acceptance_stats
		WHERE driver_id = ANY($1)
	`

	var rows []models.AcceptanceStats
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(driverIDs)); err != nil {
		return nil, fmt.Errorf("failed to query acceptance stats: %w", err)
	}

	stats := make(map[uuid.UUID]models.AcceptanceStats, len(rows))
	for _, row := range rows {
		stats[row.DriverID] = row
	}

	return stats, nil
}

// MarkDriverOffered records that a driver has been offered this trip so a
// retried round never offers the same driver twice.
func (r *DispatchRepo) MarkDriverOffered(ctx context.Context, tripID, driverID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyTripOffered, tripID.String())
	if err := r.redisClient.SAdd(ctx, key, driverID.String()); err != nil {
		return fmt.Errorf("failed to mark driver offered: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, offeredKeyTTL); err != nil {
		return fmt.Errorf("failed to set offered key expiry: %w", err)
	}
	return nil
}

// WasDriverOffered reports whether a driver already received an offer for
// this trip.
func (r *DispatchRepo) WasDriverOffered(ctx context.Context, tripID, driverID uuid.UUID) (bool, error) {
	key := fmt.Sprintf(constants.KeyTripOffered, tripID.String())
	isMember, err := r.redisClient.SIsMember(ctx, key, driverID.String())
	if err != nil {
		return false, fmt.Errorf("failed to check offered set: %w", err)
	}
	return isMember, nil
}

// RemoveDriverAvailability pulls an accepted driver out of the candidate
// pool so concurrent rounds stop seeing them.
func (r *DispatchRepo) RemoveDriverAvailability(ctx context.Context, driverID uuid.UUID) error {
	id := driverID.String()
	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, id); err != nil {
		return fmt.Errorf("failed to remove driver from available set: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, id); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	return nil
}

// IncrementOffersReceived bumps a driver's received counter, creating the
// stats row on first offer.
func (r *DispatchRepo) IncrementOffersReceived(ctx context.Context, driverID uuid.UUID) error {
	query := `
		INSERT INTO driver_acceptance_stats (driver_id, offers_received, offers_accepted)
		VALUES ($1, 1, 0)
		ON CONFLICT (driver_id)
		DO UPDATE SET offers_received = driver_acceptance_stats.offers_received + 1
	`
	if _, err := r.db.ExecContext(ctx, query, driverID); err != nil {
		return fmt.Errorf("failed to increment offers received: %w", err)
	}
	return nil
}
