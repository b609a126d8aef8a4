package sh

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/bridge/mqtt"
	"github.com/robotalks/sat.go/pkg/config"
	"github.com/robotalks/sat.go/pkg/device"
	"github.com/robotalks/sat.go/pkg/service"
)

// LocalSession runs a device in the shell process.
type LocalSession struct {
	Device *device.Device
	URL    string

	cancel func()
	doneCh chan struct{}
}

// OpenLocal opens the configured device and starts it.
func OpenLocal(cfg *config.Config) (*LocalSession, error) {
	dev, err := device.Open(cfg)
	if err != nil {
		return nil, err
	}
	return StartLocal(dev, cfg.DeviceURL), nil
}

// StartLocal starts an opened device.
func StartLocal(dev *device.Device, url string) *LocalSession {
	ctx, cancel := context.WithCancel(context.Background())
	s := &LocalSession{Device: dev, URL: url, cancel: cancel, doneCh: make(chan struct{})}
	go func() {
		defer close(s.doneCh)
		if err := dev.Run(ctx); err != nil && err != context.Canceled {
			glog.Errorf("%s stopped: %v", dev.Type, err)
		}
	}()
	return s
}

// Name implements Session.
func (s *LocalSession) Name() string {
	return s.Device.Type
}

// Execute implements Session.
func (s *LocalSession) Execute(ctx context.Context, req *service.Request) (*service.Result, error) {
	select {
	case <-s.doneCh:
		return nil, fmt.Errorf("%s on %s is closed", s.Device.Type, s.URL)
	default:
	}
	return s.Device.Service.Execute(ctx, req), nil
}

// Close implements Session.
func (s *LocalSession) Close() error {
	s.cancel()
	<-s.doneCh
	return nil
}

// RemoteSession talks to a device through the bridge.
type RemoteSession struct {
	*mqtt.CommandClient
	Queue *mqtt.Queue
}

// DialRemote connects the broker.
func DialRemote(brokerURL, deviceType, id string) (*RemoteSession, error) {
	queue, err := mqtt.NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	token := queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, err
	}
	return &RemoteSession{
		CommandClient: mqtt.NewCommandClient(queue, deviceType, id),
		Queue:         queue,
	}, nil
}

// Close implements Session.
func (s *RemoteSession) Close() error {
	s.CommandClient.Close()
	return s.Queue.Close()
}
