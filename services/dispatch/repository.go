package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// DispatchRepo defines the interface for dispatch data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/velora/dispatch/services/dispatch DispatchRepo
type DispatchRepo interface {
	// Candidate pool operations
	FindNearbyDrivers(ctx context.Context, pickup models.Location, radiusKm float64) ([]*models.NearbyDriver, error)
	GetEligibleDrivers(ctx context.Context, driverIDs []uuid.UUID, anomalyCap int) ([]*models.Driver, error)
	GetAcceptanceStats(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]models.AcceptanceStats, error)

	// Offered-driver tracking for a dispatch round
	MarkDriverOffered(ctx context.Context, tripID, driverID uuid.UUID) error
	WasDriverOffered(ctx context.Context, tripID, driverID uuid.UUID) (bool, error)
	RemoveDriverAvailability(ctx context.Context, driverID uuid.UUID) error

	// Offer persistence
	CreateOffers(ctx context.Context, offers []*models.TripOffer) error
	GetOffer(ctx context.Context, offerID uuid.UUID) (*models.TripOffer, error)
	GetActiveOffer(ctx context.Context, tripID uuid.UUID) (*models.TripOffer, error)
	GetNextPendingOffer(ctx context.Context, tripID uuid.UUID) (*models.TripOffer, error)
	MarkOfferSent(ctx context.Context, offerID uuid.UUID, sentAt, expiresAt time.Time) error
	TransitionOfferStatus(ctx context.Context, offerID uuid.UUID, from, to models.OfferStatus) error
	ListExpiredSentOffers(ctx context.Context, limit int) ([]*models.TripOffer, error)
	IncrementOffersReceived(ctx context.Context, driverID uuid.UUID) error

	// AcceptOffer atomically accepts the offer, cancels sibling offers,
	// moves the trip to ACCEPTED, debits the driver's commission and writes
	// the ledger entry. Returns the settled commission amount.
	AcceptOffer(ctx context.Context, offer *models.TripOffer, trip *models.Trip, commission int64) (*models.AcceptanceSettlement, error)

	// Trip lookups used during a dispatch round
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
}
