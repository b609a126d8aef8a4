package link

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }

// chunkReader replays chunks; a nil chunk yields a read timeout.
type chunkReader struct {
	chunks chan []byte
}

func newChunkReader() *chunkReader {
	return &chunkReader{chunks: make(chan []byte, 16)}
}

func (r *chunkReader) Read(p []byte) (int, error) {
	b, ok := <-r.chunks
	if !ok {
		return 0, io.EOF
	}
	if b == nil {
		return 0, timeoutError{}
	}
	return copy(p, b), nil
}

type packetRecorder struct {
	codes   map[byte]bool
	packets chan *Packet
}

func newPacketRecorder(codes ...byte) *packetRecorder {
	r := &packetRecorder{codes: make(map[byte]bool), packets: make(chan *Packet, 16)}
	for _, code := range codes {
		r.codes[code] = true
	}
	return r
}

func (r *packetRecorder) HandlePacket(pkt *Packet) bool {
	if !r.codes[pkt.Code] {
		return false
	}
	r.packets <- pkt
	return true
}

func (r *packetRecorder) next(t *testing.T) *Packet {
	select {
	case pkt := <-r.packets:
		return pkt
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expect packet timeout")
	}
	return nil
}

func runReader(r *Reader) (context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Run(ctx)
	}()
	return cancel, errCh
}

func TestReaderRouting(t *testing.T) {
	src := newChunkReader()
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	handler := newPacketRecorder(0x01)
	r := NewReader(src, testProfile, d, handler)
	cancel, errCh := runReader(r)
	defer cancel()

	telemetry, err := Encode(testProfile, &Packet{Code: 0x01, Payload: Fields(nil).U32(42)})
	require.NoError(t, err)
	unknown, err := Encode(testProfile, &Packet{Code: 0x33})
	require.NoError(t, err)

	sendCh := sendAsync(d, context.Background(), acked(0x5A))
	w.next(t)

	src.chunks <- []byte{0x00, 0x11}
	src.chunks <- telemetry[:7]
	src.chunks <- nil
	src.chunks <- telemetry[7:]
	src.chunks <- testFrame(0xF1, 0x00, 0x00)
	src.chunks <- unknown
	src.chunks <- testFrame(0x5A, 0xD5, 0x01)

	pkt := handler.next(t)
	require.Equal(t, uint32(42), NewFieldReader(pkt.Payload).U32())
	require.NoError(t, waitErr(t, sendCh))

	require.Eventually(t, func() bool {
		return r.Stats() == Stats{Frames: 3, Acks: 1, Telemetry: 1, Unrouted: 1, Rejected: 1, Dropped: 2}
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.True(t, errors.Is(waitErr(t, errCh), context.Canceled))
}

func TestReaderStopsOnEOF(t *testing.T) {
	src := newChunkReader()
	w := newFrameWriter()
	d := NewDispatcher(w, testProfile)
	r := NewReader(src, testProfile, d, nil)
	cancel, errCh := runReader(r)
	defer cancel()

	sendCh := sendAsync(d, context.Background(), acked(0x5A))
	w.next(t)
	close(src.chunks)

	require.Equal(t, io.EOF, waitErr(t, errCh))
	err := waitErr(t, sendCh)
	require.True(t, errors.Is(err, ErrTransport))
	require.True(t, errors.Is(err, ErrClosed))
}

func TestReaderSurvivesNoise(t *testing.T) {
	src := newChunkReader()
	handler := newPacketRecorder(0x01)
	r := NewReader(src, testProfile, nil, handler)
	cancel, errCh := runReader(r)
	defer cancel()

	noise := make([]byte, 200)
	for i := range noise {
		noise[i] = byte(i * 7)
	}
	telemetry, err := Encode(testProfile, &Packet{Code: 0x01})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		src.chunks <- noise
	}
	src.chunks <- telemetry
	require.Equal(t, byte(0x01), handler.next(t).Code)
	select {
	case err := <-errCh:
		t.Fatalf("reader stopped: %v", err)
	default:
	}
}
