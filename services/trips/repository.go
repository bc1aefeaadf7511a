package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/velora/dispatch/services/trips TripRepo
type TripRepo interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)

	// TransitionTrip conditionally moves the trip from one status to
	// another, stamping the lifecycle timestamp of the target status.
	// Returns ErrTransitionConflict when the trip is no longer in the
	// expected status.
	TransitionTrip(ctx context.Context, tripID uuid.UUID, from, to models.TripStatus) (*models.Trip, error)

	// CancelTrip cancels the trip in one transaction: the conditional
	// status change, freeing the assigned driver if any, and a commission
	// refund with its ledger entry when refund > 0.
	CancelTrip(ctx context.Context, trip *models.Trip, refund int64) (*models.Trip, error)

	// CompleteSettlement performs completion settlement in one
	// transaction: trip IN_PROGRESS to COMPLETED, rider balance debited
	// by the fare, driver earnings credited, and an audit note of the
	// commission already collected at acceptance.
	CompleteSettlement(ctx context.Context, trip *models.Trip, commission, earnings int64) (*models.SettlementResult, error)
}
