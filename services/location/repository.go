package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// LocationRepo defines the interface for driver position data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/velora/dispatch/services/location LocationRepo
type LocationRepo interface {
	// GetDriver loads the authoritative driver record.
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)

	// GetLastPosition returns the driver's last stored position, or nil
	// when none exists.
	GetLastPosition(ctx context.Context, driverID uuid.UUID) (*models.Location, error)

	// StorePosition writes the position to the geo index and the driver's
	// position hash, and refreshes availability for an online driver.
	StorePosition(ctx context.Context, driverID uuid.UUID, loc models.Location, available bool) error

	// AdjustAnomalyCount moves the anomaly counter by delta, floored at
	// zero, and returns the new value.
	AdjustAnomalyCount(ctx context.Context, driverID uuid.UUID, delta int) (int, error)

	// ForceOffline sets the driver OFFLINE and removes them from the
	// candidate pool.
	ForceOffline(ctx context.Context, driverID uuid.UUID) error
}
