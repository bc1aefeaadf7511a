package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/constants"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/location"
)

// positionTTL expires stale positions so the geo pool self-cleans when a
// driver stops reporting.
const positionTTL = 10 * time.Minute

// GetDriver loads the authoritative driver record.
func (r *LocationRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	query := `
		SELECT id, status, vehicle_type, latitude, longitude, rating,
		       credit_balance, credit_expires_at, earnings_balance,
		       anomaly_count, updated_at
		FROM drivers
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &driver, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, location.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// GetLastPosition reads the driver's last stored position hash. A missing
// hash means no history and returns nil without error.
func (r *LocationRepo) GetLastPosition(ctx context.Context, driverID uuid.UUID) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID.String())
	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read last position: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt latitude in position hash: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt longitude in position hash: %w", err)
	}
	ts, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt timestamp in position hash: %w", err)
	}

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.UnixMilli(ts),
	}, nil
}

// StorePosition writes the position hash and geo index entry, and refreshes
// the availability set for an online driver.
func (r *LocationRepo) StorePosition(ctx context.Context, driverID uuid.UUID, loc models.Location, available bool) error {
	id := driverID.String()
	key := fmt.Sprintf(constants.KeyDriverLocation, id)

	err := r.redisClient.HMSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:  loc.Latitude,
		constants.FieldLongitude: loc.Longitude,
		constants.FieldTimestamp: loc.Timestamp.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to store position hash: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, positionTTL); err != nil {
		return fmt.Errorf("failed to expire position hash: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, id); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	if available {
		if err := r.redisClient.SAdd(ctx, constants.KeyAvailableDrivers, id); err != nil {
			return fmt.Errorf("failed to refresh availability: %w", err)
		}
	}
	return nil
}

// AdjustAnomalyCount moves the counter by delta with a zero floor.
func (r *LocationRepo) AdjustAnomalyCount(ctx context.Context, driverID uuid.UUID, delta int) (int, error) {
	var count int
	query := `
		UPDATE drivers
		SET anomaly_count = GREATEST(anomaly_count + $1, 0), updated_at = $2
		WHERE id = $3
		RETURNING anomaly_count
	`
	err := r.db.QueryRowContext(ctx, query, delta, time.Now(), driverID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, location.ErrDriverNotFound
		}
		return 0, fmt.Errorf("failed to adjust anomaly count: %w", err)
	}
	return count, nil
}

// ForceOffline sets the driver OFFLINE and removes every trace of them from
// the candidate pool.
func (r *LocationRepo) ForceOffline(ctx context.Context, driverID uuid.UUID) error {
	id := driverID.String()

	result, err := r.db.ExecContext(ctx, `
		UPDATE drivers
		SET status = $1, updated_at = $2
		WHERE id = $3
	`, models.DriverStatusOffline, time.Now(), driverID)
	if err != nil {
		return fmt.Errorf("failed to set driver offline: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return location.ErrDriverNotFound
	}

	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, id); err != nil {
		return fmt.Errorf("failed to remove driver from available set: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, id); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverLocation, id)); err != nil {
		return fmt.Errorf("failed to delete position hash: %w", err)
	}
	return nil
}
