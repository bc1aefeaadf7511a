package matrix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/models"
)

func TestFallbackEstimator_StraightLineAtConfiguredSpeed(t *testing.T) {
	estimator := NewFallbackEstimator(30.0)

	origins := []models.Location{
		{Latitude: -6.175392, Longitude: 106.827153},
	}
	destination := models.Location{Latitude: -6.185392, Longitude: 106.827153}

	estimates, err := estimator.Estimates(context.Background(), origins, destination)

	assert.NoError(t, err)
	assert.Len(t, estimates, 1)
	assert.True(t, estimates[0].Estimated)
	// Roughly 1.1km of latitude at 30 km/h is a bit over two minutes
	assert.InDelta(t, 1112, estimates[0].DistanceMeters, 20)
	assert.InDelta(t, 133, estimates[0].EtaSeconds, 5)
}

func TestFallbackEstimator_OneEstimatePerOrigin(t *testing.T) {
	estimator := NewFallbackEstimator(40.0)

	origins := []models.Location{
		{Latitude: -6.17, Longitude: 106.82},
		{Latitude: -6.18, Longitude: 106.83},
		{Latitude: -6.19, Longitude: 106.84},
	}
	destination := models.Location{Latitude: -6.20, Longitude: 106.85}

	estimates, err := estimator.Estimates(context.Background(), origins, destination)

	assert.NoError(t, err)
	assert.Len(t, estimates, 3)
	// Closer origins get shorter ETAs
	assert.Greater(t, estimates[0].EtaSeconds, estimates[1].EtaSeconds)
	assert.Greater(t, estimates[1].EtaSeconds, estimates[2].EtaSeconds)
}
