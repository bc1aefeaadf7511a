package usecase

import (
	"github.com/velora/dispatch/internal/pkg/matrix"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	dispatchRepo dispatch.DispatchRepo
	dispatchGW   dispatch.DispatchGW
	matrix       matrix.Provider
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	dispatchRepo dispatch.DispatchRepo,
	dispatchGW dispatch.DispatchGW,
	matrixProvider matrix.Provider,
) *DispatchUC {
	return &DispatchUC{
		cfg:          cfg,
		dispatchRepo: dispatchRepo,
		dispatchGW:   dispatchGW,
		matrix:       matrixProvider,
	}
}
