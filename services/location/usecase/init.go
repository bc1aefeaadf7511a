package usecase

import (
	"github.com/velora/dispatch/internal/pkg/matrix"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/location"
)

// LocationUC implements the location integrity use case interface
type LocationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	snapper      matrix.Snapper
}

// NewLocationUC creates a new location use case. The snapper is optional;
// without one, raw coordinates are stored as reported.
func NewLocationUC(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	locationGW location.LocationGW,
	snapper matrix.Snapper,
) *LocationUC {
	return &LocationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		locationGW:   locationGW,
		snapper:      snapper,
	}
}
