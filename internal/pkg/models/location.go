package models

import "time"

// Location represents a geographical coordinate with an optional timestamp
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// LocationReport is the outcome of evaluating one driver position report
// against the integrity monitor.
type LocationReport struct {
	DriverID        string   `json:"driver_id"`
	Accepted        bool     `json:"accepted"`
	AnomalyCount    int      `json:"anomaly_count"`
	ForcedOffline   bool     `json:"forced_offline"`
	ImpliedSpeedKmh float64  `json:"implied_speed_kmh"`
	Stored          Location `json:"stored_location"`
	DeviationMeters float64  `json:"deviation_meters"`
}

// DriverOfflineEvent is published when the integrity monitor forces a driver
// offline after repeated implausible position reports.
type DriverOfflineEvent struct {
	DriverID     string    `json:"driver_id"`
	AnomalyCount int       `json:"anomaly_count"`
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
}
