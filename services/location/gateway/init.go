package gateway

import (
	"github.com/velora/dispatch/internal/pkg/nats"
	"github.com/velora/dispatch/internal/pkg/nsq"
)

// LocationGW publishes location integrity events
type LocationGW struct {
	natsClient  *nats.Client
	nsqProducer *nsq.Producer
}

// NewLocationGW creates a new location gateway
func NewLocationGW(natsClient *nats.Client, nsqProducer *nsq.Producer) *LocationGW {
	return &LocationGW{
		natsClient:  natsClient,
		nsqProducer: nsqProducer,
	}
}
