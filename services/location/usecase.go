package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/models"
)

// LocationUC defines the interface for location integrity business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/velora/dispatch/services/location LocationUC
type LocationUC interface {
	// ReportLocation evaluates one driver position report: implausible
	// movement raises the anomaly counter, plausible movement lowers it,
	// and a driver at the cap is forced offline.
	ReportLocation(ctx context.Context, driverID uuid.UUID, latitude, longitude float64) (*models.LocationReport, error)
}
