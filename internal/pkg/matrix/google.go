package matrix

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/velora/dispatch/internal/pkg/models"
)

// GoogleProvider implements Provider against the Google Distance Matrix API
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a new Google Maps matrix provider
func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleProvider{client: client}, nil
}

// Estimates queries the Distance Matrix API with all origins in one request
func (g *GoogleProvider) Estimates(ctx context.Context, origins []models.Location, destination models.Location) ([]Estimate, error) {
	if len(origins) == 0 {
		return nil, nil
	}

	originStrs := make([]string, len(origins))
	for i, origin := range origins {
		originStrs[i] = fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude)
	}

	req := &maps.DistanceMatrixRequest{
		Origins:      originStrs,
		Destinations: []string{fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude)},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := g.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}

	if len(resp.Rows) != len(origins) {
		return nil, fmt.Errorf("distance matrix returned %d rows for %d origins", len(resp.Rows), len(origins))
	}

	estimates := make([]Estimate, len(origins))
	for i, row := range resp.Rows {
		if len(row.Elements) == 0 {
			return nil, fmt.Errorf("distance matrix row %d has no elements", i)
		}
		element := row.Elements[0]
		if element.Status != "OK" {
			return nil, fmt.Errorf("distance matrix element status %q for origin %d", element.Status, i)
		}
		estimates[i] = Estimate{
			EtaSeconds:     element.Duration.Seconds(),
			DistanceMeters: float64(element.Distance.Meters),
		}
	}

	return estimates, nil
}

// SnapToRoad aligns a raw GPS point to the nearest road segment. Returns the
// input unchanged when the Roads API has no snap for it.
func (g *GoogleProvider) SnapToRoad(ctx context.Context, location models.Location) (models.Location, error) {
	resp, err := g.client.SnapToRoad(ctx, &maps.SnapToRoadRequest{
		Path: []maps.LatLng{{Lat: location.Latitude, Lng: location.Longitude}},
	})
	if err != nil {
		return location, fmt.Errorf("snap to road request failed: %w", err)
	}

	if len(resp.SnappedPoints) == 0 {
		return location, nil
	}

	snapped := resp.SnappedPoints[0]
	return models.Location{
		Latitude:  snapped.Location.Lat,
		Longitude: snapped.Location.Lng,
		Timestamp: location.Timestamp,
	}, nil
}
