package link

import (
	"context"
	"io"
	"time"
)

// Conn binds a Reader and a Dispatcher to one stream.
// The Reader owns the read half, the Dispatcher the write half.
type Conn struct {
	Profile    Profile
	Reader     *Reader
	Dispatcher *Dispatcher
}

// NewConn creates a Conn. handler receives all frames which are not
// acknowledgements.
func NewConn(rw io.ReadWriter, profile Profile, handler PacketHandler) *Conn {
	d := NewDispatcher(rw, profile)
	return &Conn{
		Profile:    profile,
		Dispatcher: d,
		Reader:     NewReader(rw, profile, d, handler),
	}
}

// SetAckTimeout overrides the acknowledgement timeout.
func (c *Conn) SetAckTimeout(timeout time.Duration) {
	c.Dispatcher.AckTimeout = timeout
}

// Run runs the reader until ctx is done or the stream fails.
func (c *Conn) Run(ctx context.Context) error {
	return c.Reader.Run(ctx)
}

// Send sends a command, see Dispatcher.Send.
func (c *Conn) Send(ctx context.Context, cmd Command) error {
	return c.Dispatcher.Send(ctx, cmd)
}

// Passthrough writes raw bytes, see Dispatcher.Passthrough.
func (c *Conn) Passthrough(ctx context.Context, raw []byte) error {
	return c.Dispatcher.Passthrough(ctx, raw)
}

// Stats returns the reader counters.
func (c *Conn) Stats() Stats {
	return c.Reader.Stats()
}

// LateAcks returns the number of dropped late acknowledgements.
func (c *Conn) LateAcks() uint64 {
	return c.Dispatcher.LateAcks()
}
