package ledger

import "errors"

// Credit ledger errors. Handlers map these onto HTTP status codes.
var (
	ErrDriverNotFound      = errors.New("driver not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("deduction would make the balance negative")
)
