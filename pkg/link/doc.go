// Package link provides the framed command/telemetry protocol shared by
// subsystem drivers.
package link

// A link is a peer-to-peer serial line carrying fixed-width frames:
//
//	[sync0 sync1] [code] [payload ... zero padded] [checksum lo hi]
//
// The checksum is the 16-bit wrap-around sum of every byte before it.
// Frame width and sync word are pinned by a Profile.
//
// Unsolicited telemetry and command acknowledgements share the line.
// Reader owns the read half and routes each validated frame either to the
// Dispatcher (when it satisfies the outstanding acknowledgement) or to the
// device specific PacketHandler. Dispatcher owns the write half and allows a
// single command in flight; other callers queue in FIFO order.
//
// Producer: subsystem hardware (telemetry, acknowledgements)
// Consumer: subsystem driver
