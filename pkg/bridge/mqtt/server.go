package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/service"
)

// DefaultCommandTimeout bounds the execution of a single command.
const DefaultCommandTimeout = 10 * time.Second

// requestQueueSize is the number of commands buffered while one executes.
const requestQueueSize = 16

// Meta is the retained presence message of a device. An empty retained
// message clears it when the device goes away.
type Meta struct {
	Device  string    `json:"device"`
	ID      string    `json:"id"`
	Format  string    `json:"format"`
	Started time.Time `json:"started"`
}

// SetPresenceWill makes the broker clear the meta message of a device
// when the connection is lost.
func SetPresenceWill(opts *paho.ClientOptions, topicPrefix, device, id string) {
	opts.SetBinaryWill(topicPrefix+DeviceTopic(device, id, TopicMeta), nil, 1, true)
}

// CommandServer executes requests received on <device>/<id>/cmd and
// publishes the results on <device>/<id>/result. Requests are executed
// one at a time in arrival order.
type CommandServer struct {
	Broker  Broker
	Service service.Service
	Meta    Meta
	Timeout time.Duration

	reqCh chan []byte
}

// NewCommandServer creates a CommandServer.
func NewCommandServer(broker Broker, svc service.Service, id, format string) *CommandServer {
	return &CommandServer{
		Broker:  broker,
		Service: svc,
		Meta:    Meta{Device: svc.Device(), ID: id, Format: format, Started: time.Now()},
		Timeout: DefaultCommandTimeout,
		reqCh:   make(chan []byte, requestQueueSize),
	}
}

// Name implements framework.Named.
func (s *CommandServer) Name() string {
	return "command-server"
}

func (s *CommandServer) topic(suffix string) string {
	return DeviceTopic(s.Meta.Device, s.Meta.ID, suffix)
}

// Announce publishes the retained meta message. It should be called
// again on every reconnect.
func (s *CommandServer) Announce() error {
	data, err := json.Marshal(&s.Meta)
	if err != nil {
		return err
	}
	return s.Broker.Publish(s.topic(TopicMeta), data, 1, true)
}

// Run implements framework.Runnable.
func (s *CommandServer) Run(ctx context.Context) error {
	sub := s.Broker.Subscribe(s.topic(TopicCmd), s.enqueue)
	defer sub.Close()
	if err := s.Announce(); err != nil {
		glog.Warningf("announce %s: %v", s.topic(TopicMeta), err)
	}
	defer func() {
		if err := s.Broker.Publish(s.topic(TopicMeta), nil, 1, true); err != nil {
			glog.Warningf("clear %s: %v", s.topic(TopicMeta), err)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-s.reqCh:
			s.handle(ctx, payload)
		}
	}
}

func (s *CommandServer) enqueue(_ string, payload []byte) {
	select {
	case s.reqCh <- payload:
	default:
		glog.Warningf("%s: request queue full, request dropped", s.topic(TopicCmd))
	}
}

func (s *CommandServer) handle(ctx context.Context, payload []byte) {
	var req service.Request
	var result *service.Result
	if err := json.Unmarshal(payload, &req); err != nil {
		result = &service.Result{Errors: fmt.Sprintf("invalid request: %v", err)}
	} else {
		glog.V(1).Infof("%s: %s %s", s.topic(TopicCmd), req.ID, req.Command)
		timeout := s.Timeout
		if timeout <= 0 {
			timeout = DefaultCommandTimeout
		}
		cmdCtx, cancel := context.WithTimeout(ctx, timeout)
		result = s.Service.Execute(cmdCtx, &req)
		cancel()
		if !result.Success {
			glog.Warningf("%s %s failed: %s", req.Command, req.ID, result.Errors)
		}
	}
	data, err := json.Marshal(result)
	if err != nil {
		glog.Errorf("encode result of %s: %v", req.Command, err)
		return
	}
	if err := s.Broker.Publish(s.topic(TopicResult), data, 1, false); err != nil {
		glog.Warningf("publish %s: %v", s.topic(TopicResult), err)
	}
}
