package link

import (
	"container/list"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
)

// DefaultAckTimeout is the default time to wait for an acknowledgement.
const DefaultAckTimeout = 1 * time.Second

// Dispatcher sends commands and waits for their acknowledgements.
// Only one command is in flight; concurrent callers are served in FIFO order.
type Dispatcher struct {
	Writer     io.Writer
	Profile    Profile
	AckTimeout time.Duration

	queue   list.List // of chan struct{}, the front one owns the line
	pending *expectation
	stale   map[byte]bool
	closed  error
	lock    sync.Mutex

	lateAcks uint64
}

type expectation struct {
	code     byte
	resultCh chan result
}

type result struct {
	pkt *Packet
	err error
}

// NewDispatcher creates a Dispatcher writing to w.
func NewDispatcher(w io.Writer, profile Profile) *Dispatcher {
	return &Dispatcher{
		Writer:     w,
		Profile:    profile,
		AckTimeout: DefaultAckTimeout,
	}
}

// Send encodes and writes a command. If the command is an AckedCommand,
// it blocks until the acknowledgement is delivered by Deliver, the
// AckTimeout elapses or ctx is done. All failures are TransportErrors.
func (d *Dispatcher) Send(ctx context.Context, cmd Command) error {
	pkt := cmd.Packet()
	frame, err := Encode(d.Profile, pkt)
	if err != nil {
		return transportErr("encode", err)
	}

	turn, err := d.acquire(ctx)
	if err != nil {
		return transportErr("queue", err)
	}
	defer d.release(turn)

	acked, _ := cmd.(AckedCommand)
	var exp *expectation
	if acked != nil {
		// registered before writing so a fast reply can't be missed.
		if exp, err = d.expect(acked.AckCode()); err != nil {
			return transportErr("send", err)
		}
	}

	if glog.V(4) {
		glog.Infof("%s TX code=0x%02X % X", d.Profile.Name, pkt.Code, frame)
	}
	if _, err = d.Writer.Write(frame); err != nil {
		d.discard(exp, false)
		return transportErr("write", err)
	}
	if exp == nil {
		return nil
	}
	return d.await(ctx, acked, exp)
}

// Passthrough writes raw bytes verbatim. No framing, no acknowledgement.
func (d *Dispatcher) Passthrough(ctx context.Context, raw []byte) error {
	turn, err := d.acquire(ctx)
	if err != nil {
		return transportErr("queue", err)
	}
	defer d.release(turn)
	if glog.V(4) {
		glog.Infof("%s TX raw % X", d.Profile.Name, raw)
	}
	if _, err = d.Writer.Write(raw); err != nil {
		return transportErr("write", err)
	}
	return nil
}

// Deliver hands a received packet to the outstanding expectation.
// It returns false if the packet is not an acknowledgement.
// A late acknowledgement of a timed out command is consumed and dropped.
func (d *Dispatcher) Deliver(pkt *Packet) bool {
	d.lock.Lock()
	if exp := d.pending; exp != nil && exp.code == pkt.Code {
		d.pending = nil
		d.lock.Unlock()
		exp.resultCh <- result{pkt: pkt}
		return true
	}
	late := d.stale[pkt.Code]
	if late {
		delete(d.stale, pkt.Code)
	}
	d.lock.Unlock()
	if late {
		atomic.AddUint64(&d.lateAcks, 1)
		glog.Warningf("%s: late acknowledgement 0x%02X dropped", d.Profile.Name, pkt.Code)
	}
	return late
}

// Close fails the outstanding expectation and all future acknowledged
// commands. It's called when the reader stops.
func (d *Dispatcher) Close(cause error) {
	err := ErrClosed
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrClosed, cause)
	}
	d.lock.Lock()
	if d.closed == nil {
		d.closed = err
	}
	exp := d.pending
	d.pending = nil
	d.lock.Unlock()
	if exp != nil {
		exp.resultCh <- result{err: err}
	}
}

// LateAcks returns the number of dropped late acknowledgements.
func (d *Dispatcher) LateAcks() uint64 {
	return atomic.LoadUint64(&d.lateAcks)
}

func (d *Dispatcher) ackTimeout() time.Duration {
	if d.AckTimeout > 0 {
		return d.AckTimeout
	}
	return DefaultAckTimeout
}

func (d *Dispatcher) acquire(ctx context.Context) (*list.Element, error) {
	turnCh := make(chan struct{})
	d.lock.Lock()
	elem := d.queue.PushBack(turnCh)
	if d.queue.Front() == elem {
		close(turnCh)
	}
	d.lock.Unlock()
	select {
	case <-turnCh:
		return elem, nil
	case <-ctx.Done():
		d.release(elem)
		return nil, ctx.Err()
	}
}

func (d *Dispatcher) release(elem *list.Element) {
	d.lock.Lock()
	defer d.lock.Unlock()
	owner := d.queue.Front() == elem
	d.queue.Remove(elem)
	if !owner {
		return
	}
	if next := d.queue.Front(); next != nil {
		close(next.Value.(chan struct{}))
	}
}

func (d *Dispatcher) expect(code byte) (*expectation, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.closed != nil {
		return nil, d.closed
	}
	exp := &expectation{code: code, resultCh: make(chan result, 1)}
	delete(d.stale, code)
	d.pending = exp
	return exp, nil
}

// discard removes the expectation if still pending and reports whether it
// was. When it wasn't, the result is already in resultCh.
func (d *Dispatcher) discard(exp *expectation, markStale bool) bool {
	if exp == nil {
		return false
	}
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.pending != exp {
		return false
	}
	d.pending = nil
	if markStale {
		if d.stale == nil {
			d.stale = make(map[byte]bool)
		}
		d.stale[exp.code] = true
	}
	return true
}

func (d *Dispatcher) await(ctx context.Context, cmd AckedCommand, exp *expectation) error {
	timer := time.NewTimer(d.ackTimeout())
	defer timer.Stop()
	var cause error
	select {
	case res := <-exp.resultCh:
		return checkAck(cmd, res)
	case <-timer.C:
		cause = ErrNoAck
	case <-ctx.Done():
		cause = ctx.Err()
	}
	if !d.discard(exp, true) {
		return checkAck(cmd, <-exp.resultCh)
	}
	return transportErr("ack", cause)
}

func checkAck(cmd AckedCommand, res result) error {
	if res.err != nil {
		return transportErr("ack", res.err)
	}
	if v, ok := cmd.(AckValidator); ok {
		if err := v.ValidateAck(res.pkt); err != nil {
			return transportErr("ack", err)
		}
	}
	return nil
}
