package gateway

import (
	"github.com/velora/dispatch/internal/pkg/nats"
	"github.com/velora/dispatch/internal/pkg/nsq"
)

// TripGW publishes trip lifecycle events over NATS and mirrors them onto
// the NSQ notification topics.
type TripGW struct {
	natsClient  *nats.Client
	nsqProducer *nsq.Producer
}

// NewTripGW creates a new trip gateway
func NewTripGW(natsClient *nats.Client, nsqProducer *nsq.Producer) *TripGW {
	return &TripGW{
		natsClient:  natsClient,
		nsqProducer: nsqProducer,
	}
}
