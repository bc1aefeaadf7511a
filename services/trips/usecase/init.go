package usecase

import (
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/trips"
)

// TripUC implements the trip lifecycle use case interface
type TripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
) *TripUC {
	return &TripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}
