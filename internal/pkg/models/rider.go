package models

import (
	"time"

	"github.com/google/uuid"
)

// Rider holds the settleable balance debited at trip completion. The record
// is owned by rider management; this core only debits the balance.
type Rider struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Balance   int64     `json:"balance" db:"balance"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
