package dispatch

import "errors"

// Dispatch round errors. Handlers map these onto HTTP status codes.
var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrTripNotDispatchable = errors.New("trip is not in a dispatchable state")
	ErrNoCandidates        = errors.New("no eligible drivers in range")
	ErrOfferNotActive      = errors.New("offer is not active")
	ErrOfferConflict       = errors.New("offer was already resolved")
	ErrNotOfferedDriver    = errors.New("driver does not hold the active offer")
)
