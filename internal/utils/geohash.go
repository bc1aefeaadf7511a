package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/velora/dispatch/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// ValidateCoordinates rejects coordinates outside the WGS84 range
func ValidateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return fmt.Errorf("coordinates must be numeric")
	}
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude out of range: %v", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude out of range: %v", longitude)
	}
	return nil
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadius * c

	return distance
}

// DistanceMeters calculates the Haversine distance between two locations in meters
func DistanceMeters(from, to models.Location) float64 {
	return CalculateDistance(GeoPointFromLocation(from), GeoPointFromLocation(to)) * 1000.0
}

// ImpliedSpeedKmh derives the travel speed implied by two timestamped
// positions. Returns 0 when the reports are not strictly ordered in time.
func ImpliedSpeedKmh(prev, next models.Location) float64 {
	elapsed := next.Timestamp.Sub(prev.Timestamp)
	if elapsed <= 0 {
		return 0
	}
	distanceKm := CalculateDistance(GeoPointFromLocation(prev), GeoPointFromLocation(next))
	return distanceKm / elapsed.Hours()
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
