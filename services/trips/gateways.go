package trips

import (
	"context"

	"github.com/velora/dispatch/internal/pkg/models"
)

// TripGW defines the trip gateway interface
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/velora/dispatch/services/trips TripGW
type TripGW interface {
	// PublishTripEvent announces a lifecycle transition to riders and
	// drivers following the trip.
	PublishTripEvent(ctx context.Context, event models.TripEvent) error

	// PublishSettlement delivers the completion fare split.
	PublishSettlement(ctx context.Context, result models.SettlementResult) error
}
