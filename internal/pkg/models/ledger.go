package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// LedgerAction represents the business reason for a credit-balance mutation
type LedgerAction string

const (
	LedgerActionAdminAdd      LedgerAction = "ADMIN_ADD"
	LedgerActionAdminDeduct   LedgerAction = "ADMIN_DEDUCT"
	LedgerActionTripDeduction LedgerAction = "TRIP_DEDUCTION"
	LedgerActionRefund        LedgerAction = "REFUND"

	// LedgerActionSettlementNote is an audit-only entry written at trip
	// completion. Its delta is always zero: the commission was collected
	// at acceptance.
	LedgerActionSettlementNote LedgerAction = "SETTLEMENT_NOTE"
)

// CreditLedgerEntry is an immutable record of a single credit-balance
// mutation. Entries are append-only and are the sole source of truth for
// balance reconstruction and audit.
type CreditLedgerEntry struct {
	ID           int64        `json:"id" db:"id"`
	DriverID     uuid.UUID    `json:"driver_id" db:"driver_id"`
	TripID       *uuid.UUID   `json:"trip_id,omitempty" db:"trip_id"`
	Delta        int64        `json:"delta" db:"delta"`
	BalanceAfter int64        `json:"balance_after" db:"balance_after"`
	Action       LedgerAction `json:"action" db:"action"`
	Amount       *int64       `json:"amount,omitempty" db:"amount"`
	Note         string       `json:"note" db:"note"`
	Actor        string       `json:"actor" db:"actor"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// CommissionFor computes the platform commission for a fare. Ceiling rounding
// keeps the platform from under-collecting on fractional units; driver
// earnings are always derived as fare minus commission, never rounded
// independently.
func CommissionFor(fare int64, rate float64) int64 {
	if fare <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(fare) * rate))
}

// AcceptanceSettlement reports the commission debited from a driver's
// prepaid credits when they accept an offer.
type AcceptanceSettlement struct {
	TripID           string `json:"trip_id"`
	DriverID         string `json:"driver_id"`
	Commission       int64  `json:"commission"`
	RemainingCredits int64  `json:"remaining_credits"`
}

// InsufficientCreditsError reports a failed commission debit with the exact
// amounts so callers can render a precise message.
type InsufficientCreditsError struct {
	Required  int64
	Available int64
	Fare      int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %d, available %d (fare %d)",
		e.Required, e.Available, e.Fare)
}
