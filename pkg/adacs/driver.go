package adacs

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/link"
)

// Driver talks to the device. Run must be running for acknowledged
// commands to complete.
type Driver struct {
	conn  *link.Conn
	store *Store

	// held exclusively by Reset so no command gets between its phases.
	cmdLock sync.RWMutex
}

// New creates a Driver on a stream.
func New(rw io.ReadWriter) *Driver {
	store := NewStore()
	return &Driver{
		conn:  link.NewConn(rw, Profile, store),
		store: store,
	}
}

// SetAckTimeout overrides the acknowledgement timeout.
func (d *Driver) SetAckTimeout(timeout time.Duration) {
	d.conn.SetAckTimeout(timeout)
}

// Run reads telemetry until ctx is done or the stream fails.
func (d *Driver) Run(ctx context.Context) error {
	glog.Infof("adacs driver started")
	err := d.conn.Run(ctx)
	glog.Infof("adacs driver stopped: %v", err)
	return err
}

func (d *Driver) send(ctx context.Context, op string, cmd link.Command) error {
	d.cmdLock.RLock()
	defer d.cmdLock.RUnlock()
	if err := d.conn.Send(ctx, cmd); err != nil {
		return fmt.Errorf("adacs: %s: %w", op, err)
	}
	return nil
}

// Reset performs the two-phase reset. Returns a *ResetError naming the
// failed phase.
func (d *Driver) Reset(ctx context.Context) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()
	seq := NewResetSequence(d.conn)
	err := seq.Run(ctx)
	if err != nil {
		glog.Error(err)
	} else {
		glog.Infof("adacs reset done")
	}
	return err
}

// SetMode changes the ACS mode.
func (d *Driver) SetMode(ctx context.Context, mode uint8, params [4]int16) error {
	return d.send(ctx, "set mode", &SetMode{Mode: mode, Params: params})
}

// SetModeSun changes the ACS mode with sun pointing parameters.
func (d *Driver) SetModeSun(ctx context.Context, mode uint8, sunAngleEnable int16, sunRotAngle float32) error {
	return d.send(ctx, "set mode sun", &SetModeSun{Mode: mode, SunAngleEnable: sunAngleEnable, SunRotAngle: sunRotAngle})
}

// SetGPSTime sets the device clock.
func (d *Driver) SetGPSTime(ctx context.Context, gpsTime uint32) error {
	return d.send(ctx, "set gps time", &SetGPSTime{Time: gpsTime})
}

// SetRV sets the reference position and velocity.
func (d *Driver) SetRV(ctx context.Context, position, velocity [3]float32, gpsTime uint32) error {
	return d.send(ctx, "set rv", &SetRV{Position: position, Velocity: velocity, Time: gpsTime})
}

// Passthrough writes raw bytes verbatim.
func (d *Driver) Passthrough(ctx context.Context, raw []byte) error {
	d.cmdLock.RLock()
	defer d.cmdLock.RUnlock()
	if err := d.conn.Passthrough(ctx, raw); err != nil {
		return fmt.Errorf("adacs: passthrough: %w", err)
	}
	return nil
}

// Telemetry returns the latest telemetry.
func (d *Driver) Telemetry() Telemetry {
	return d.store.Snapshot()
}

// Stats returns the link counters.
func (d *Driver) Stats() link.Stats {
	return d.conn.Stats()
}

// LateAcks returns the number of dropped late acknowledgements.
func (d *Driver) LateAcks() uint64 {
	return d.conn.LateAcks()
}
