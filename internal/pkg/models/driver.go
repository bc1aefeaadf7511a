package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus represents the live availability of a driver
type DriverStatus string

const (
	DriverStatusOnline  DriverStatus = "ONLINE"
	DriverStatusOffline DriverStatus = "OFFLINE"
	DriverStatusBusy    DriverStatus = "BUSY"
)

// Driver represents a driver as seen by the dispatch core. The record is
// owned by driver management; this core reads it for candidate selection and
// mutates only the credit balance, anomaly counter and status.
type Driver struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	Status          DriverStatus `json:"status" db:"status"`
	VehicleType     string       `json:"vehicle_type" db:"vehicle_type"`
	Latitude        float64      `json:"latitude" db:"latitude"`
	Longitude       float64      `json:"longitude" db:"longitude"`
	Rating          float64      `json:"rating" db:"rating"`
	CreditBalance   int64        `json:"credit_balance" db:"credit_balance"`
	CreditExpiresAt *time.Time   `json:"credit_expires_at,omitempty" db:"credit_expires_at"`
	EarningsBalance int64        `json:"earnings_balance" db:"earnings_balance"`
	AnomalyCount    int          `json:"anomaly_count" db:"anomaly_count"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`
}

// Location returns the driver's last known position.
func (d *Driver) Location() Location {
	return Location{Latitude: d.Latitude, Longitude: d.Longitude, Timestamp: d.UpdatedAt}
}

// NearbyDriver is a driver position returned from the geo index
type NearbyDriver struct {
	ID         uuid.UUID `json:"id"`
	Location   Location  `json:"location"`
	DistanceKm float64   `json:"distance_km"`
}

// AcceptanceStats holds the historical offer statistics for one driver,
// produced by a single batched aggregation over all candidates of a round.
type AcceptanceStats struct {
	DriverID       uuid.UUID `db:"driver_id"`
	OffersReceived int64     `db:"offers_received"`
	OffersAccepted int64     `db:"offers_accepted"`
}

// Rate returns the historical acceptance rate, defaulting to 0.5 for drivers
// with no offer history.
func (s AcceptanceStats) Rate() float64 {
	if s.OffersReceived == 0 {
		return 0.5
	}
	return float64(s.OffersAccepted) / float64(s.OffersReceived)
}
