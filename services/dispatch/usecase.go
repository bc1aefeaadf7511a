package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// DispatchUC defines the interface for dispatch business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/velora/dispatch/services/dispatch DispatchUC
type DispatchUC interface {
	// StartDispatch runs a dispatch round for a REQUESTED trip: ranks
	// nearby eligible drivers and begins offering the trip one driver at
	// a time.
	StartDispatch(ctx context.Context, tripID uuid.UUID) (*models.TripOffer, error)

	// AcceptOffer settles a driver's acceptance of their active offer.
	AcceptOffer(ctx context.Context, tripID, driverID uuid.UUID) (*models.AcceptanceSettlement, error)

	// RejectOffer records a driver's rejection and advances the round to
	// the next ranked candidate.
	RejectOffer(ctx context.Context, tripID, driverID uuid.UUID) error
}
