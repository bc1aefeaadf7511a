package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/models"
)

func TestValidateCoordinates(t *testing.T) {
	testCases := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid jakarta", -6.175392, 106.827153, false},
		{"valid boundary", 90, 180, false},
		{"valid negative boundary", -90, -180, false},
		{"latitude too high", 90.1, 0, true},
		{"latitude too low", -90.1, 0, true},
		{"longitude too high", 0, 180.1, true},
		{"longitude too low", 0, -180.1, true},
		{"nan latitude", math.NaN(), 0, true},
		{"nan longitude", 0, math.NaN(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCoordinates(tc.latitude, tc.longitude)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateDistance_KnownDistance(t *testing.T) {
	// Monas to Kota Tua, roughly 4.5km apart
	monas := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}
	kotaTua := GeoPoint{Latitude: -6.137550, Longitude: 106.817287}

	distance := CalculateDistance(monas, kotaTua)

	assert.InDelta(t, 4.3, distance, 0.5)
	// Symmetric
	assert.Equal(t, distance, CalculateDistance(kotaTua, monas))
}

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	point := models.Location{Latitude: -6.2, Longitude: 106.8}
	assert.Equal(t, 0.0, DistanceMeters(point, point))
}

func TestImpliedSpeedKmh(t *testing.T) {
	now := time.Now()

	// About 1.1km of latitude covered in one minute: ~67 km/h
	prev := models.Location{Latitude: -6.20, Longitude: 106.80, Timestamp: now.Add(-time.Minute)}
	next := models.Location{Latitude: -6.19, Longitude: 106.80, Timestamp: now}

	speed := ImpliedSpeedKmh(prev, next)

	assert.InDelta(t, 67, speed, 3)
}

func TestImpliedSpeedKmh_UnorderedReportsYieldZero(t *testing.T) {
	now := time.Now()

	prev := models.Location{Latitude: -6.20, Longitude: 106.80, Timestamp: now}
	next := models.Location{Latitude: -6.10, Longitude: 106.80, Timestamp: now.Add(-time.Second)}

	assert.Equal(t, 0.0, ImpliedSpeedKmh(prev, next))
	// Identical timestamps are also not strictly ordered
	next.Timestamp = now
	assert.Equal(t, 0.0, ImpliedSpeedKmh(prev, next))
}

func TestEncodeLocation_RoundTrip(t *testing.T) {
	location := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeLocation(location, 9)
	latitude, longitude := DecodeGeohash(hash)

	assert.InDelta(t, location.Latitude, latitude, 0.001)
	assert.InDelta(t, location.Longitude, longitude, 0.001)
}
