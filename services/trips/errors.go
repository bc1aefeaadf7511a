package trips

import (
	"errors"
	"fmt"

	"github.com/velora/dispatch/internal/pkg/models"
)

// Trip state machine errors. Handlers map these onto HTTP status codes.
var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrForbidden          = errors.New("actor is not allowed to transition this trip")
	ErrTransitionConflict = errors.New("trip was modified concurrently")
)

// InvalidTransitionError names the current and requested states so callers
// can render a precise message.
type InvalidTransitionError struct {
	From models.TripStatus
	To   models.TripStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid trip transition from %s to %s", e.From, e.To)
}
