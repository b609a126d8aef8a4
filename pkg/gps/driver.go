package gps

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/link"
)

// Driver talks to the receiver. Run must be running for commands to
// complete.
type Driver struct {
	conn  *link.Conn
	store *Store
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

// SetStaleAfter sets the age after which telemetry is stale.
func (d *Driver) SetStaleAfter(after time.Duration) {
	d.store.lock.Lock()
	d.store.StaleAfter = after
	d.store.lock.Unlock()
}

// Run reads telemetry until ctx is done or the stream fails.
func (d *Driver) Run(ctx context.Context) error {
	glog.Infof("gps driver started")
	err := d.conn.Run(ctx)
	glog.Infof("gps driver stopped: %v", err)
	return err
}

func (d *Driver) send(ctx context.Context, op string, cmd link.Command) error {
	if err := d.conn.Send(ctx, cmd); err != nil {
		return fmt.Errorf("gps: %s: %w", op, err)
	}
	return nil
}

// Log requests a log.
func (d *Driver) Log(ctx context.Context, msg byte, trigger Trigger, hold bool, period, offset float64) error {
	return d.send(ctx, "log", &Log{Message: msg, Trigger: trigger, Hold: hold, Period: period, Offset: offset})
}

// Unlog stops a log.
func (d *Driver) Unlog(ctx context.Context, msg byte) error {
	return d.send(ctx, "unlog", &Unlog{Message: msg})
}

// UnlogAll stops all logs, including held ones if held is set.
func (d *Driver) UnlogAll(ctx context.Context, held bool) error {
	return d.send(ctx, "unlog all", &UnlogAll{Held: held})
}

// Passthrough writes raw bytes verbatim.
func (d *Driver) Passthrough(ctx context.Context, raw []byte) error {
	if err := d.conn.Passthrough(ctx, raw); err != nil {
		return fmt.Errorf("gps: passthrough: %w", err)
	}
	return nil
}

// Store returns the state store.
func (d *Driver) Store() *Store {
	return d.store
}

// Snapshot returns a copy of the receiver state.
func (d *Driver) Snapshot() Snapshot {
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
