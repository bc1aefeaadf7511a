// Package matrix estimates travel time and distance from driver positions to
// a pickup point. The primary provider is the Google Distance Matrix API,
// wrapped with a Redis cache and a circuit breaker; when the provider is
// unavailable the estimator falls back to straight-line distance at an
// assumed speed.
package matrix

import (
	"context"

	"github.com/velora/dispatch/internal/pkg/models"
)

// Estimate is a single origin-to-destination travel estimate
type Estimate struct {
	EtaSeconds     float64 `json:"eta_seconds"`
	DistanceMeters float64 `json:"distance_meters"`
	// Estimated is true when the value came from the fallback estimator
	// rather than the matrix provider.
	Estimated bool `json:"estimated"`
}

// Provider estimates travel from each origin to a single destination.
// Implementations must return one estimate per origin, in origin order.
type Provider interface {
	Estimates(ctx context.Context, origins []models.Location, destination models.Location) ([]Estimate, error)
}

// Snapper adjusts a raw coordinate to the nearest plausible road position.
type Snapper interface {
	SnapToRoad(ctx context.Context, location models.Location) (models.Location, error)
}
