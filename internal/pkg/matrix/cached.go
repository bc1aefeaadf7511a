package matrix

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/velora/dispatch/internal/pkg/constants"
	"github.com/velora/dispatch/internal/pkg/database"
	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/internal/utils"
)

// geohashPrecision rounds cache keys to roughly 150m cells so nearby origins
// share an estimate within the cache TTL.
const geohashPrecision = 7

// CachedProvider wraps a Provider with a short-lived Redis cache keyed by
// rounded origin and destination coordinates.
type CachedProvider struct {
	provider Provider
	redis    *database.RedisClient
	ttl      time.Duration
}

// NewCachedProvider creates a caching wrapper around the given provider
func NewCachedProvider(provider Provider, redis *database.RedisClient, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		redis:    redis,
		ttl:      ttl,
	}
}

func (c *CachedProvider) cacheKey(origin, destination models.Location) string {
	return fmt.Sprintf(constants.KeyMatrixEta,
		utils.EncodeLocation(origin, geohashPrecision),
		utils.EncodeLocation(destination, geohashPrecision),
	)
}

// Estimates serves cached estimates where possible and queries the wrapped
// provider for the remaining origins in a single batch.
func (c *CachedProvider) Estimates(ctx context.Context, origins []models.Location, destination models.Location) ([]Estimate, error) {
	estimates := make([]Estimate, len(origins))
	var missing []models.Location
	var missingIdx []int

	for i, origin := range origins {
		cached, err := c.redis.Get(ctx, c.cacheKey(origin, destination))
		if err != nil {
			missing = append(missing, origin)
			missingIdx = append(missingIdx, i)
			continue
		}
		var estimate Estimate
		if err := json.Unmarshal([]byte(cached), &estimate); err != nil {
			missing = append(missing, origin)
			missingIdx = append(missingIdx, i)
			continue
		}
		estimates[i] = estimate
	}

	if len(missing) == 0 {
		return estimates, nil
	}

	fresh, err := c.provider.Estimates(ctx, missing, destination)
	if err != nil {
		return nil, err
	}

	for j, estimate := range fresh {
		estimates[missingIdx[j]] = estimate

		// Fallback values are not cached so a recovered provider takes
		// over immediately.
		if estimate.Estimated {
			continue
		}
		payload, err := json.Marshal(estimate)
		if err != nil {
			continue
		}
		key := c.cacheKey(missing[j], destination)
		if err := c.redis.Set(ctx, key, payload, c.ttl); err != nil {
			logger.Warn("Failed to cache matrix estimate",
				logger.String("key", key),
				logger.Err(err))
		}
	}

	return estimates, nil
}
