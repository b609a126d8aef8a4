// Package device assembles a configured device: its transport, driver
// and service.
package device

import (
	"context"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/adacs"
	"github.com/robotalks/sat.go/pkg/config"
	fx "github.com/robotalks/sat.go/pkg/framework"
	"github.com/robotalks/sat.go/pkg/gps"
	"github.com/robotalks/sat.go/pkg/service"
	"github.com/robotalks/sat.go/pkg/transport"
)

// Device is an opened device. Run must be running for the service to
// work.
type Device struct {
	Type    string
	Service service.Service

	stream io.ReadWriteCloser
	run    func(context.Context) error
}

// Open opens the transport of the configured device.
func Open(cfg *config.Config) (*Device, error) {
	stream, err := transport.Open(cfg.DeviceURL)
	if err != nil {
		return nil, err
	}
	glog.Infof("%s device opened on %s", cfg.DeviceType, cfg.DeviceURL)
	dev, err := New(cfg, stream)
	if err != nil {
		stream.Close()
		return nil, err
	}
	return dev, nil
}

// New creates the device on an opened stream, which is owned by the
// device afterwards.
func New(cfg *config.Config, stream io.ReadWriteCloser) (*Device, error) {
	dev := &Device{Type: cfg.DeviceType, stream: stream}
	switch cfg.DeviceType {
	case config.DeviceGPS:
		drv := gps.New(stream)
		drv.SetAckTimeout(cfg.AckTimeout)
		drv.SetStaleAfter(cfg.StatusStaleAfter)
		dev.Service, dev.run = service.NewGPS(drv), drv.Run
	case config.DeviceADACS:
		drv := adacs.New(stream)
		drv.SetAckTimeout(cfg.AckTimeout)
		svc := service.NewADACS(drv)
		svc.SetStaleAfter(cfg.StatusStaleAfter)
		dev.Service, dev.run = svc, drv.Run
	default:
		return nil, fmt.Errorf("unknown device type %q", cfg.DeviceType)
	}
	return dev, nil
}

// Name implements framework.Named.
func (d *Device) Name() string {
	return d.Type
}

// Run implements framework.Runnable. The stream is closed when Run
// returns.
func (d *Device) Run(ctx context.Context) error {
	return fx.RunWithContextCloser(ctx, d.stream, func() error {
		return d.run(ctx)
	})
}
