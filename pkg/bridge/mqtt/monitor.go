package mqtt

import (
	"context"
	"encoding/json"
	"io"

	"github.com/golang/glog"

	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
	"github.com/robotalks/sat.go/pkg/service"
)

// Monitor watches every device under the topic prefix.
type Monitor struct {
	Broker Broker
	Codec  Codec

	// OnTelemetry is called for each decoded telemetry message.
	OnTelemetry func(device, id string, msg *pb.Telemetry)
	// OnMeta is called with nil meta when a device goes away.
	OnMeta func(device, id string, meta *Meta)
	// OnResult is called for each command result.
	OnResult func(device, id string, result *service.Result)
}

// Run implements framework.Runnable.
func (m *Monitor) Run(ctx context.Context) error {
	subs := []io.Closer{
		m.Broker.Subscribe(DeviceTopic("+", "+", TopicTelemetry), m.handleTelemetry),
		m.Broker.Subscribe(DeviceTopic("+", "+", TopicMeta), m.handleMeta),
		m.Broker.Subscribe(DeviceTopic("+", "+", TopicResult), m.handleResult),
	}
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()
	<-ctx.Done()
	return ctx.Err()
}

func (m *Monitor) handleTelemetry(topic string, payload []byte) {
	device, id, _, ok := ParseDeviceTopic(topic)
	if !ok || m.OnTelemetry == nil {
		return
	}
	msg, err := m.Codec.Decode(payload)
	if err != nil {
		glog.Warningf("%s: decode %s: %v", topic, m.Codec.Format(), err)
		return
	}
	m.OnTelemetry(device, id, msg)
}

func (m *Monitor) handleMeta(topic string, payload []byte) {
	device, id, _, ok := ParseDeviceTopic(topic)
	if !ok || m.OnMeta == nil {
		return
	}
	if len(payload) == 0 {
		m.OnMeta(device, id, nil)
		return
	}
	var meta Meta
	if err := json.Unmarshal(payload, &meta); err != nil {
		glog.Warningf("%s: %v", topic, err)
		return
	}
	m.OnMeta(device, id, &meta)
}

func (m *Monitor) handleResult(topic string, payload []byte) {
	device, id, _, ok := ParseDeviceTopic(topic)
	if !ok || m.OnResult == nil {
		return
	}
	var result service.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		glog.Warningf("%s: %v", topic, err)
		return
	}
	m.OnResult(device, id, &result)
}
