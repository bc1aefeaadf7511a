package models

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus represents the state of a single trip offer
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "PENDING"
	OfferStatusAccepted  OfferStatus = "ACCEPTED"
	OfferStatusRejected  OfferStatus = "REJECTED"
	OfferStatusExpired   OfferStatus = "EXPIRED"
	OfferStatusCancelled OfferStatus = "CANCELLED"
)

// TripOffer is a time-boxed proposal of a specific trip to a specific driver
// during a dispatch round. Offers for a round are created in batch; at most
// one per trip ever reaches ACCEPTED.
type TripOffer struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	TripID         uuid.UUID   `json:"trip_id" db:"trip_id"`
	DriverID       uuid.UUID   `json:"driver_id" db:"driver_id"`
	Status         OfferStatus `json:"status" db:"status"`
	Score          float64     `json:"score" db:"score"`
	EtaSeconds     float64     `json:"eta_seconds" db:"eta_seconds"`
	DistanceMeters float64     `json:"distance_meters" db:"distance_meters"`
	SentAt         *time.Time  `json:"sent_at,omitempty" db:"sent_at"`
	ExpiresAt      *time.Time  `json:"expires_at,omitempty" db:"expires_at"`
	RespondedAt    *time.Time  `json:"responded_at,omitempty" db:"responded_at"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
}

// OfferEvent is the payload pushed to a driver over the real-time channel
// when an offer is sent to them.
type OfferEvent struct {
	OfferID        string    `json:"offer_id"`
	TripID         string    `json:"trip_id"`
	DriverID       string    `json:"driver_id"`
	Pickup         Location  `json:"pickup"`
	Dropoff        Location  `json:"dropoff"`
	Fare           int64     `json:"fare"`
	EtaSeconds     float64   `json:"eta_seconds"`
	DistanceMeters float64   `json:"distance_meters"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// NoDriversEvent notifies a rider that a dispatch round exhausted all
// candidates without an acceptance.
type NoDriversEvent struct {
	TripID    string    `json:"trip_id"`
	RiderID   string    `json:"rider_id"`
	Timestamp time.Time `json:"timestamp"`
}
