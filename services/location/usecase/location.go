package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/internal/utils"
	"github.com/velora/dispatch/services/location"
)

// ReportLocation evaluates one driver position report. The implied speed
// against the last stored position drives the anomaly counter: above the
// threshold it goes up, otherwise down with a zero floor. At the cap the
// driver is forced offline.
func (uc *LocationUC) ReportLocation(ctx context.Context, driverID uuid.UUID, latitude, longitude float64) (*models.LocationReport, error) {
	if err := utils.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, location.ErrInvalidCoordinates
	}

	driver, err := uc.locationRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	raw := models.Location{Latitude: latitude, Longitude: longitude, Timestamp: time.Now()}

	prev, err := uc.locationRepo.GetLastPosition(ctx, driverID)
	if err != nil {
		return nil, err
	}

	var speed float64
	if prev != nil {
		speed = utils.ImpliedSpeedKmh(*prev, raw)
	}
	anomalous := speed > uc.cfg.Location.AnomalySpeedKmh

	delta := -1
	if anomalous {
		delta = 1
	}
	count, err := uc.locationRepo.AdjustAnomalyCount(ctx, driverID, delta)
	if err != nil {
		return nil, err
	}

	report := &models.LocationReport{
		DriverID:        driverID.String(),
		Accepted:        true,
		AnomalyCount:    count,
		ImpliedSpeedKmh: speed,
	}

	if anomalous && count >= uc.cfg.Location.AnomalyCap {
		if err := uc.locationRepo.ForceOffline(ctx, driverID); err != nil {
			return nil, err
		}
		report.ForcedOffline = true
		report.Stored = raw

		logger.Warn("Driver forced offline after repeated anomalous positions",
			logger.String("driver_id", driverID.String()),
			logger.Float64("implied_speed_kmh", speed),
			logger.Int("anomaly_count", count))

		event := models.DriverOfflineEvent{
			DriverID:     driverID.String(),
			AnomalyCount: count,
			Reason:       "implausible movement speed",
			Timestamp:    time.Now(),
		}
		if err := uc.locationGW.PublishDriverOffline(ctx, event); err != nil {
			logger.Warn("Failed to publish forced-offline event",
				logger.String("driver_id", driverID.String()),
				logger.Err(err))
		}
		return report, nil
	}

	stored := uc.snap(ctx, raw)
	report.Stored = stored
	report.DeviationMeters = utils.DistanceMeters(raw, stored)

	available := driver.Status == models.DriverStatusOnline
	if err := uc.locationRepo.StorePosition(ctx, driverID, stored, available); err != nil {
		return nil, err
	}
	return report, nil
}

// snap adjusts a raw coordinate to a plausible road position. Best effort:
// any provider failure stores the raw coordinate with zero deviation.
func (uc *LocationUC) snap(ctx context.Context, raw models.Location) models.Location {
	if uc.snapper == nil {
		return raw
	}
	snapped, err := uc.snapper.SnapToRoad(ctx, raw)
	if err != nil {
		logger.Debug("Road snapping unavailable, storing raw coordinate",
			logger.Err(err))
		return raw
	}
	snapped.Timestamp = raw.Timestamp
	return snapped
}
