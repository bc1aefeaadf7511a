package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusRequested  TripStatus = "REQUESTED"
	TripStatusAccepted   TripStatus = "ACCEPTED"
	TripStatusArrived    TripStatus = "ARRIVED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// AllowedTransitions encodes the trip lifecycle as an adjacency list.
// COMPLETED and CANCELLED are terminal.
var AllowedTransitions = map[TripStatus][]TripStatus{
	TripStatusRequested:  {TripStatusAccepted, TripStatusCancelled},
	TripStatusAccepted:   {TripStatusArrived, TripStatusCancelled},
	TripStatusArrived:    {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted, TripStatusCancelled},
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another.
func CanTransition(from, to TripStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Trip represents a ride-sharing trip. Created by trip intake; exclusively
// mutated by the trip state machine and the settlement engine.
type Trip struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	RiderID            uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID           *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	PickupLatitude     float64    `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude    float64    `json:"pickup_longitude" db:"pickup_longitude"`
	DropoffLatitude    float64    `json:"dropoff_latitude" db:"dropoff_latitude"`
	DropoffLongitude   float64    `json:"dropoff_longitude" db:"dropoff_longitude"`
	ServiceType        string     `json:"service_type" db:"service_type"`
	Fare               int64      `json:"fare" db:"fare"`
	PlatformCommission *int64     `json:"platform_commission,omitempty" db:"platform_commission"`
	DriverEarnings     *int64     `json:"driver_earnings,omitempty" db:"driver_earnings"`
	PaymentMethod      string     `json:"payment_method" db:"payment_method"`
	Status             TripStatus `json:"status" db:"status"`
	RequestedAt        time.Time  `json:"requested_at" db:"requested_at"`
	AcceptedAt         *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	ArrivedAt          *time.Time `json:"arrived_at,omitempty" db:"arrived_at"`
	StartedAt          *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// Pickup returns the trip's pickup coordinate.
func (t *Trip) Pickup() Location {
	return Location{Latitude: t.PickupLatitude, Longitude: t.PickupLongitude}
}

// Dropoff returns the trip's dropoff coordinate.
func (t *Trip) Dropoff() Location {
	return Location{Latitude: t.DropoffLatitude, Longitude: t.DropoffLongitude}
}

// ActorRole identifies who is requesting a trip transition
type ActorRole string

const (
	ActorRider  ActorRole = "rider"
	ActorDriver ActorRole = "driver"
	ActorSystem ActorRole = "system"
)

// Actor carries the caller's relationship to a trip so the state machine can
// reject unauthorized transition requests before checking legality.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role ActorRole `json:"role"`
}

// TripEvent is published on lifecycle transitions so riders and drivers can
// follow trip progress in real time.
type TripEvent struct {
	TripID    string     `json:"trip_id"`
	RiderID   string     `json:"rider_id"`
	DriverID  string     `json:"driver_id,omitempty"`
	Status    TripStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}

// SettlementResult reports the money split recorded by completion
// settlement. DriverEarnings is always Fare minus Commission.
type SettlementResult struct {
	TripID         string `json:"trip_id"`
	Fare           int64  `json:"fare"`
	Commission     int64  `json:"commission"`
	DriverEarnings int64  `json:"driver_earnings"`
}
