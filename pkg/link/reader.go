package link

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/golang/glog"
)

// Stats counts the frames seen by a Reader.
type Stats struct {
	// Frames is the number of valid frames.
	Frames uint64
	// Acks is the number of frames consumed by the dispatcher.
	Acks uint64
	// Telemetry is the number of frames consumed by the handler.
	Telemetry uint64
	// Unrouted is the number of valid frames nobody recognized.
	Unrouted uint64
	// Rejected is the number of frames failing validation.
	Rejected uint64
	// Dropped is the number of bytes discarded while hunting for sync.
	Dropped uint64
}

// AckSink receives packets which may be acknowledgements.
type AckSink interface {
	// Deliver returns true if the packet is consumed.
	Deliver(*Packet) bool
	// Close is called when the reader stops.
	Close(error)
}

// Reader continuously reads frames and routes them.
type Reader struct {
	Source  io.Reader
	Acks    AckSink
	Handler PacketHandler

	parser Parser
	stats  Stats
}

// DefaultChunkSize is the read buffer size.
const DefaultChunkSize = 256

// NewReader creates a Reader.
func NewReader(src io.Reader, profile Profile, acks AckSink, handler PacketHandler) *Reader {
	return &Reader{
		Source:  src,
		Acks:    acks,
		Handler: handler,
		parser:  Parser{Profile: profile},
	}
}

// Stats returns a copy of the counters.
func (r *Reader) Stats() Stats {
	return Stats{
		Frames:    atomic.LoadUint64(&r.stats.Frames),
		Acks:      atomic.LoadUint64(&r.stats.Acks),
		Telemetry: atomic.LoadUint64(&r.stats.Telemetry),
		Unrouted:  atomic.LoadUint64(&r.stats.Unrouted),
		Rejected:  atomic.LoadUint64(&r.stats.Rejected),
		Dropped:   atomic.LoadUint64(&r.stats.Dropped),
	}
}

// Run reads until ctx is done or the source fails.
// Malformed frames never stop the loop.
func (r *Reader) Run(ctx context.Context) (err error) {
	defer func() {
		if r.Acks != nil {
			r.Acks.Close(err)
		}
	}()
	r.parser.Reset()
	chunkCh, errCh := make(chan []byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.readLoop(subCtx, chunkCh, errCh)
	for {
		select {
		case chunk := <-chunkCh:
			for _, b := range chunk {
				r.apply(r.parser.Parse(b))
			}
		case err = <-errCh:
			glog.Errorf("%s reader stopped: %v", r.parser.Profile.Name, err)
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

func (r *Reader) readLoop(ctx context.Context, chunkCh chan []byte, errCh chan error) {
	for {
		buf := make([]byte, DefaultChunkSize)
		n, err := r.Source.Read(buf)
		if err != nil && !os.IsTimeout(err) {
			errCh <- err
			return
		}
		if n > 0 {
			select {
			case chunkCh <- buf[:n]:
			case <-ctx.Done():
				return
			}
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (r *Reader) apply(pr ParseResult) {
	if pr.Dropped > 0 {
		atomic.AddUint64(&r.stats.Dropped, uint64(pr.Dropped))
	}
	if pr.Err != nil {
		atomic.AddUint64(&r.stats.Rejected, 1)
		if glog.V(1) {
			glog.Warningf("%s frame rejected: %v", r.parser.Profile.Name, pr.Err)
		}
		return
	}
	pkt := pr.Packet
	if pkt == nil {
		return
	}
	atomic.AddUint64(&r.stats.Frames, 1)
	if glog.V(4) {
		glog.Infof("%s RX code=0x%02X % X", r.parser.Profile.Name, pkt.Code, pkt.Payload)
	}
	if r.Acks != nil && r.Acks.Deliver(pkt) {
		atomic.AddUint64(&r.stats.Acks, 1)
		return
	}
	if r.Handler != nil && r.Handler.HandlePacket(pkt) {
		atomic.AddUint64(&r.stats.Telemetry, 1)
		return
	}
	atomic.AddUint64(&r.stats.Unrouted, 1)
	glog.Warningf("%s unrouted frame code=0x%02X", r.parser.Profile.Name, pkt.Code)
}
