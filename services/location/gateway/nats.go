package gateway

import (
	"context"
	"fmt"

	"github.com/velora/dispatch/internal/pkg/constants"
	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
)

// PublishDriverOffline announces a forced-offline decision and notifies the
// driver through the notification queue.
func (g *LocationGW) PublishDriverOffline(ctx context.Context, event models.DriverOfflineEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectDriverOffline, event); err != nil {
		return fmt.Errorf("failed to publish forced-offline event: %w", err)
	}

	if g.nsqProducer != nil {
		if err := g.nsqProducer.Publish(constants.TopicDriverNotifications, event); err != nil {
			logger.Warn("Failed to publish forced-offline notification",
				logger.String("driver_id", event.DriverID),
				logger.Err(err))
		}
	}
	return nil
}
