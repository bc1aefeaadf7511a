package matrix

import (
	"context"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/internal/utils"
)

// FallbackEstimator estimates travel using straight-line distance at an
// assumed average speed. It never fails, which makes it the terminal
// provider behind the circuit breaker.
type FallbackEstimator struct {
	speedKmh float64
}

// NewFallbackEstimator creates a haversine-based estimator
func NewFallbackEstimator(speedKmh float64) *FallbackEstimator {
	return &FallbackEstimator{speedKmh: speedKmh}
}

// Estimates returns straight-line estimates marked as Estimated
func (f *FallbackEstimator) Estimates(_ context.Context, origins []models.Location, destination models.Location) ([]Estimate, error) {
	estimates := make([]Estimate, len(origins))
	for i, origin := range origins {
		distanceKm := utils.CalculateDistance(
			utils.GeoPointFromLocation(origin),
			utils.GeoPointFromLocation(destination),
		)
		estimates[i] = Estimate{
			EtaSeconds:     distanceKm / f.speedKmh * 3600.0,
			DistanceMeters: distanceKm * 1000.0,
			Estimated:      true,
		}
	}
	return estimates, nil
}
