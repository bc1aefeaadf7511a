package location

import (
	"context"

	"github.com/velora/dispatch/internal/pkg/models"
)

// LocationGW defines the location gateway interface
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/velora/dispatch/services/location LocationGW
type LocationGW interface {
	// PublishDriverOffline announces that the integrity monitor forced a
	// driver offline.
	PublishDriverOffline(ctx context.Context, event models.DriverOfflineEvent) error
}
