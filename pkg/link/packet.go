package link

import (
	"encoding/binary"
	"io"
)

// Packet contains the information of a decoded frame.
type Packet struct {
	Code    byte
	Payload []byte
}

// Checksum computes the 16-bit wrap-around sum of data.
func Checksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}

// Encode frames the packet according to the profile.
// The payload is zero padded to the profile's payload size.
func Encode(profile Profile, pkt *Packet) ([]byte, error) {
	if len(pkt.Payload) > profile.PayloadSize() {
		return nil, ErrPayloadTooLarge
	}
	b := make([]byte, profile.Width)
	b[0], b[1], b[2] = profile.Sync[0], profile.Sync[1], pkt.Code
	copy(b[headerSize:], pkt.Payload)
	sumAt := profile.Width - checksumSize
	binary.LittleEndian.PutUint16(b[sumAt:], Checksum(b[:sumAt]))
	return b, nil
}

// Decode validates a raw frame and extracts the packet.
// The returned payload is always PayloadSize() long.
func Decode(profile Profile, b []byte) (*Packet, error) {
	if len(b) != profile.Width {
		return nil, &FrameError{Reason: ErrBadLength, Expected: profile.Width, Actual: len(b)}
	}
	if b[0] != profile.Sync[0] || b[1] != profile.Sync[1] {
		return nil, &FrameError{Reason: ErrBadSync}
	}
	sumAt := profile.Width - checksumSize
	expected, actual := Checksum(b[:sumAt]), binary.LittleEndian.Uint16(b[sumAt:])
	if expected != actual {
		return nil, &FrameError{Reason: ErrBadChecksum, Expected: int(expected), Actual: int(actual)}
	}
	payload := make([]byte, profile.PayloadSize())
	copy(payload, b[headerSize:sumAt])
	return &Packet{Code: b[2], Payload: payload}, nil
}

// WriteTo encodes and writes the packet in a single Write.
func (p *Packet) WriteTo(w io.Writer, profile Profile) (int, error) {
	b, err := Encode(profile, p)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}
