package link

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type frameWriter struct {
	frames chan []byte
	err    error
}

func newFrameWriter() *frameWriter {
	return &frameWriter{frames: make(chan []byte, 16)}
}

func (w *frameWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.frames <- append([]byte(nil), p...)
	return len(p), nil
}

func (w *frameWriter) next(t *testing.T) []byte {
	select {
	case b := <-w.frames:
		return b
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expect frame timeout")
	}
	return nil
}

func (w *frameWriter) none(t *testing.T) {
	select {
	case b := <-w.frames:
		t.Fatalf("unexpected frame % X", b)
	case <-time.After(50 * time.Millisecond):
	}
}

type testCommand struct {
	code    byte
	payload []byte
}

func (c testCommand) Packet() *Packet {
	return &Packet{Code: c.code, Payload: c.payload}
}

type testAckedCommand struct {
	testCommand
	ackCode byte
}

func (c testAckedCommand) AckCode() byte {
	return c.ackCode
}

type testCheckedCommand struct {
	testAckedCommand
}

func (c testCheckedCommand) ValidateAck(pkt *Packet) error {
	if resp := NewFieldReader(pkt.Payload).U32(); resp != 1 {
		return &AckError{Code: c.code, Response: resp}
	}
	return nil
}

func acked(code byte) testAckedCommand {
	return testAckedCommand{testCommand: testCommand{code: code}, ackCode: code}
}

func sendAsync(d *Dispatcher, ctx context.Context, cmd Command) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- d.Send(ctx, cmd)
	}()
	return errCh
}

func waitErr(t *testing.T, errCh <-chan error) error {
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("expect result timeout")
	}
	return nil
}

func TestDispatcherUnacked(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	require.NoError(t, d.Send(context.Background(), testCommand{code: 0x5A}))
	require.Equal(t, testFrame(0x5A, 0xD5, 0x01), w.next(t))
}

func TestDispatcherAcked(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	errCh := sendAsync(d, context.Background(), acked(0x5A))
	require.Equal(t, testFrame(0x5A, 0xD5, 0x01), w.next(t))
	require.False(t, d.Deliver(&Packet{Code: 0x01}))
	require.True(t, d.Deliver(&Packet{Code: 0x5A}))
	require.NoError(t, waitErr(t, errCh))
	require.False(t, d.Deliver(&Packet{Code: 0x5A}))
}

func TestDispatcherNoAck(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	d.AckTimeout = 20 * time.Millisecond
	err := d.Send(context.Background(), acked(0x44))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, ErrNoAck))
	var te *TransportError
	require.True(t, errors.As(err, &te))
	require.Equal(t, "ack", te.Op)
	w.next(t)

	// late acknowledgement is consumed once and counted
	require.True(t, d.Deliver(&Packet{Code: 0x44}))
	require.Equal(t, uint64(1), d.LateAcks())
	require.False(t, d.Deliver(&Packet{Code: 0x44}))
	require.Equal(t, uint64(1), d.LateAcks())
}

func TestDispatcherNextCommandClearsStale(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	d.AckTimeout = 20 * time.Millisecond
	require.Error(t, d.Send(context.Background(), acked(0x44)))
	w.next(t)

	d.AckTimeout = time.Second
	errCh := sendAsync(d, context.Background(), acked(0x44))
	w.next(t)
	require.True(t, d.Deliver(&Packet{Code: 0x44}))
	require.NoError(t, waitErr(t, errCh))
	require.Zero(t, d.LateAcks())
}

func TestDispatcherNak(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	cmd := testCheckedCommand{testAckedCommand{testCommand: testCommand{code: 0x01}, ackCode: 0x81}}

	errCh := sendAsync(d, context.Background(), cmd)
	w.next(t)
	require.True(t, d.Deliver(&Packet{Code: 0x81, Payload: Fields(nil).U32(1)}))
	require.NoError(t, waitErr(t, errCh))

	errCh = sendAsync(d, context.Background(), cmd)
	w.next(t)
	require.True(t, d.Deliver(&Packet{Code: 0x81, Payload: Fields(nil).U32(31)}))
	err := waitErr(t, errCh)
	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, ErrAckMismatch))
	var ae *AckError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, uint32(31), ae.Response)
}

func TestDispatcherWriteError(t *testing.T) {
	w := newFrameWriter()
	w.err = errors.New("device gone")
	d := NewDispatcher(w, testProfile)
	err := d.Send(context.Background(), acked(0x5A))
	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, w.err))
	require.False(t, d.Deliver(&Packet{Code: 0x5A}))
	require.Zero(t, d.LateAcks())

	err = d.Passthrough(context.Background(), []byte{1})
	require.True(t, errors.Is(err, ErrTransport))
}

func TestDispatcherClose(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	errCh := sendAsync(d, context.Background(), acked(0x5A))
	w.next(t)
	cause := errors.New("read failed")
	d.Close(cause)
	err := waitErr(t, errCh)
	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, ErrClosed))
	require.Contains(t, err.Error(), "read failed")

	err = d.Send(context.Background(), acked(0xF1))
	require.True(t, errors.Is(err, ErrClosed))
	w.none(t)
}

func TestDispatcherFIFO(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	first := sendAsync(d, context.Background(), acked(0x5A))
	require.Equal(t, byte(0x5A), w.next(t)[2])

	second := sendAsync(d, context.Background(), acked(0xF1))
	// one command in flight
	w.none(t)

	require.True(t, d.Deliver(&Packet{Code: 0x5A}))
	require.NoError(t, waitErr(t, first))
	require.Equal(t, byte(0xF1), w.next(t)[2])
	require.True(t, d.Deliver(&Packet{Code: 0xF1}))
	require.NoError(t, waitErr(t, second))
}

func TestDispatcherCancelWhileQueued(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	first := sendAsync(d, context.Background(), acked(0x5A))
	w.next(t)

	ctx, cancel := context.WithCancel(context.Background())
	queued := sendAsync(d, ctx, acked(0x44))
	third := sendAsync(d, context.Background(), testCommand{code: 0xF1})
	cancel()
	err := waitErr(t, queued)
	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, context.Canceled))
	w.none(t)

	require.True(t, d.Deliver(&Packet{Code: 0x5A}))
	require.NoError(t, waitErr(t, first))
	require.Equal(t, byte(0xF1), w.next(t)[2])
	require.NoError(t, waitErr(t, third))
}

func TestDispatcherCancelWhileWaiting(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := sendAsync(d, ctx, acked(0x41))
	w.next(t)
	cancel()
	err := waitErr(t, errCh)
	require.True(t, errors.Is(err, context.Canceled))
	require.True(t, d.Deliver(&Packet{Code: 0x41}))
	require.Equal(t, uint64(1), d.LateAcks())
}

func TestDispatcherPassthrough(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}
	require.NoError(t, d.Passthrough(context.Background(), raw))
	require.Equal(t, raw, w.next(t))
}

func TestDispatcherEncodeError(t *testing.T) {
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	err := d.Send(context.Background(), testCommand{code: 1, payload: make([]byte, 64)})
	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, ErrPayloadTooLarge))
	w.none(t)
}
