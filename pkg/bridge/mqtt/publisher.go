package mqtt

import (
	"context"
	"time"

	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
)

// Reporter provides the telemetry of a device.
type Reporter interface {
	Device() string
	Report(now time.Time) *pb.Telemetry
}

// Publisher publishes the telemetry of a device to
// <device>/<id>/telemetry on every iteration of a framework.Loop.
type Publisher struct {
	Broker   Broker
	Reporter Reporter
	ID       string
	Codec    Codec
}

// NewPublisher creates a Publisher.
func NewPublisher(broker Broker, reporter Reporter, id string, codec Codec) *Publisher {
	return &Publisher{Broker: broker, Reporter: reporter, ID: id, Codec: codec}
}

// Name implements framework.Named.
func (p *Publisher) Name() string {
	return "publisher"
}

// Control implements framework.Controller.
func (p *Publisher) Control(ctx context.Context, now time.Time) error {
	msg := p.Reporter.Report(now)
	msg.Id = p.ID
	payload, err := p.Codec.Encode(msg)
	if err != nil {
		return err
	}
	return p.Broker.Publish(DeviceTopic(msg.Device, p.ID, TopicTelemetry), payload, 0, false)
}
