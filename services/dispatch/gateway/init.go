package gateway

import (
	"github.com/velora/dispatch/internal/pkg/nats"
	"github.com/velora/dispatch/internal/pkg/nsq"
)

// DispatchGW publishes dispatch events over NATS for service-to-service
// consumers and mirrors user-facing ones onto NSQ notification topics.
type DispatchGW struct {
	natsClient  *nats.Client
	nsqProducer *nsq.Producer
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *nats.Client, nsqProducer *nsq.Producer) *DispatchGW {
	return &DispatchGW{
		natsClient:  natsClient,
		nsqProducer: nsqProducer,
	}
}
