package location

import "errors"

// Location integrity errors. Handlers map these onto HTTP status codes.
var (
	ErrDriverNotFound     = errors.New("driver not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
