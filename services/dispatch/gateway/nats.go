package gateway

import (
	"context"
	"fmt"

	"github.com/velora/dispatch/internal/pkg/constants"
	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
)

// PublishOfferPushed delivers an offer to the driver's real-time channel and
// mirrors it onto the driver notification topic.
func (g *DispatchGW) PublishOfferPushed(ctx context.Context, event models.OfferEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectOfferPush, event); err != nil {
		return fmt.Errorf("failed to publish offer push: %w", err)
	}
	g.notify(constants.TopicDriverNotifications, event)
	return nil
}

// PublishOfferExpired announces that an offer window closed unanswered.
func (g *DispatchGW) PublishOfferExpired(ctx context.Context, offer *models.TripOffer) error {
	if err := g.natsClient.PublishJSON(constants.SubjectOfferExpired, offer); err != nil {
		return fmt.Errorf("failed to publish offer expiry: %w", err)
	}
	g.notify(constants.TopicDriverNotifications, offer)
	return nil
}

// PublishOfferAccepted announces a settled acceptance so the trip side can
// progress and the rider learns their driver.
func (g *DispatchGW) PublishOfferAccepted(ctx context.Context, settlement models.AcceptanceSettlement) error {
	if err := g.natsClient.PublishJSON(constants.SubjectOfferAccepted, settlement); err != nil {
		return fmt.Errorf("failed to publish offer acceptance: %w", err)
	}
	g.notify(constants.TopicRiderNotifications, settlement)
	return nil
}

// NotifyNoDrivers tells the rider the dispatch round exhausted its
// candidates.
func (g *DispatchGW) NotifyNoDrivers(ctx context.Context, event models.NoDriversEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectNoDrivers, event); err != nil {
		return fmt.Errorf("failed to publish no-drivers event: %w", err)
	}
	g.notify(constants.TopicRiderNotifications, event)
	return nil
}

// notify mirrors an event onto an NSQ notification topic. Notification
// delivery is at-least-once and best-effort from this side; failures are
// logged, never returned.
func (g *DispatchGW) notify(topic string, message interface{}) {
	if g.nsqProducer == nil {
		return
	}
	if err := g.nsqProducer.Publish(topic, message); err != nil {
		logger.Warn("Failed to publish notification",
			logger.String("topic", topic),
			logger.Err(err))
	}
}
