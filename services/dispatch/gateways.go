package dispatch

import (
	"context"

	"github.com/velora/dispatch/internal/pkg/models"
)

// DispatchGW defines the dispatch gateway interface
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/velora/dispatch/services/dispatch DispatchGW
type DispatchGW interface {
	// PublishOfferPushed pushes an offer to the driver's real-time channel
	PublishOfferPushed(ctx context.Context, event models.OfferEvent) error

	// PublishOfferExpired notifies the driver their offer window closed
	PublishOfferExpired(ctx context.Context, offer *models.TripOffer) error

	// PublishOfferAccepted announces a settled acceptance
	PublishOfferAccepted(ctx context.Context, settlement models.AcceptanceSettlement) error

	// NotifyNoDrivers tells the rider the round exhausted all candidates
	NotifyNoDrivers(ctx context.Context, event models.NoDriversEvent) error
}
