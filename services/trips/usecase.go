package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// TripUC defines the interface for trip lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/velora/dispatch/services/trips TripUC
type TripUC interface {
	// GetTrip returns the trip for status inspection.
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)

	// TransitionTrip validates the actor's relationship to the trip and
	// the legality of the requested transition, then applies it.
	// Requesting ACCEPTED here always fails: acceptance only happens
	// through the offer settlement path.
	TransitionTrip(ctx context.Context, tripID uuid.UUID, actor models.Actor, desired models.TripStatus) (*models.Trip, error)

	// CompleteSettlement settles a finished trip: debits the rider,
	// credits the driver's earnings and closes the trip.
	CompleteSettlement(ctx context.Context, tripID uuid.UUID) (*models.SettlementResult, error)
}
