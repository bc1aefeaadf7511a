package matrix

import (
	"context"
	"time"

	"github.com/velora/dispatch/internal/pkg/circuitbreaker"
	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
)

// ResilientProvider wraps the primary provider with a circuit breaker and
// degrades to the fallback estimator whenever the primary fails or the
// breaker is open. It never returns an error: a dispatch round proceeds on
// estimated values rather than aborting.
type ResilientProvider struct {
	primary  Provider
	fallback *FallbackEstimator
	breaker  *circuitbreaker.CircuitBreaker
}

// NewResilientProvider creates a breaker-protected provider
func NewResilientProvider(primary Provider, fallback *FallbackEstimator, l *logger.ZapLogger) *ResilientProvider {
	config := circuitbreaker.DefaultConfig("matrix-provider")
	config.Timeout = 30 * time.Second
	config.FailureThreshold = 3

	return &ResilientProvider{
		primary:  primary,
		fallback: fallback,
		breaker:  circuitbreaker.New(config, l),
	}
}

// BreakerState reports the current breaker state for health checks
func (r *ResilientProvider) BreakerState() circuitbreaker.State {
	return r.breaker.State()
}

// Estimates queries the primary provider under breaker protection, falling
// back to straight-line estimates on any failure.
func (r *ResilientProvider) Estimates(ctx context.Context, origins []models.Location, destination models.Location) ([]Estimate, error) {
	var estimates []Estimate

	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		estimates, execErr = r.primary.Estimates(ctx, origins, destination)
		return execErr
	})
	if err == nil {
		return estimates, nil
	}

	logger.Warn("Matrix provider unavailable, using fallback estimates",
		logger.Int("origins", len(origins)),
		logger.String("breaker_state", r.breaker.State().String()),
		logger.Err(err))

	return r.fallback.Estimates(ctx, origins, destination)
}
