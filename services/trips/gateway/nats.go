package gateway

import (
	"context"
	"fmt"

	"github.com/velora/dispatch/internal/pkg/constants"
	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/models"
)

// lifecycleSubjects maps a trip status to the NATS subject announcing it.
var lifecycleSubjects = map[models.TripStatus]string{
	models.TripStatusAccepted:   constants.SubjectTripAccepted,
	models.TripStatusArrived:    constants.SubjectTripArrived,
	models.TripStatusInProgress: constants.SubjectTripStarted,
	models.TripStatusCompleted:  constants.SubjectTripCompleted,
	models.TripStatusCancelled:  constants.SubjectTripCancelled,
}

// PublishTripEvent announces a lifecycle transition on the status's subject
// and mirrors it onto both notification topics.
func (g *TripGW) PublishTripEvent(ctx context.Context, event models.TripEvent) error {
	subject, ok := lifecycleSubjects[event.Status]
	if !ok {
		return fmt.Errorf("no subject for trip status %s", event.Status)
	}
	if err := g.natsClient.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish trip event: %w", err)
	}

	g.notify(constants.TopicRiderNotifications, event)
	if event.DriverID != "" {
		g.notify(constants.TopicDriverNotifications, event)
	}
	return nil
}

// PublishSettlement delivers the completion fare split to the rider's
// receipt queue.
func (g *TripGW) PublishSettlement(ctx context.Context, result models.SettlementResult) error {
	if err := g.natsClient.PublishJSON(constants.SubjectTripCompleted, result); err != nil {
		return fmt.Errorf("failed to publish settlement: %w", err)
	}
	g.notify(constants.TopicRiderNotifications, result)
	return nil
}

func (g *TripGW) notify(topic string, message interface{}) {
	if g.nsqProducer == nil {
		return
	}
	if err := g.nsqProducer.Publish(topic, message); err != nil {
		logger.Warn("Failed to publish notification",
			logger.String("topic", topic),
			logger.Err(err))
	}
}
