package link

import (
	"encoding/binary"
	"math"
)

// Fields builds a little-endian payload by appending.
type Fields []byte

// U8 appends a byte.
func (f Fields) U8(v uint8) Fields { return append(f, v) }

// I8 appends a signed byte.
func (f Fields) I8(v int8) Fields { return append(f, byte(v)) }

// U16 appends a uint16.
func (f Fields) U16(v uint16) Fields { return append(f, byte(v), byte(v>>8)) }

// I16 appends an int16.
func (f Fields) I16(v int16) Fields { return f.U16(uint16(v)) }

// U32 appends a uint32.
func (f Fields) U32(v uint32) Fields {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(f, b[:]...)
}

// F32 appends a float32 in IEEE-754 format.
func (f Fields) F32(v float32) Fields { return f.U32(math.Float32bits(v)) }

// F64 appends a float64 in IEEE-754 format.
func (f Fields) F64(v float64) Fields {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return append(f, b[:]...)
}

// Text appends s as a NUL padded field of size n, truncating if needed.
func (f Fields) Text(s string, n int) Fields {
	b := make([]byte, n)
	copy(b, s)
	return append(f, b...)
}

// FieldReader consumes little-endian fields from a payload.
// Reads beyond the end yield zero values, the same as the zero padding
// on the wire.
type FieldReader struct {
	buf []byte
	off int
}

// NewFieldReader creates a FieldReader.
func NewFieldReader(payload []byte) *FieldReader {
	return &FieldReader{buf: payload}
}

func (r *FieldReader) next(n int) []byte {
	b := make([]byte, n)
	if r.off < len(r.buf) {
		copy(b, r.buf[r.off:])
	}
	r.off += n
	return b
}

// U8 reads a byte.
func (r *FieldReader) U8() uint8 { return r.next(1)[0] }

// I8 reads a signed byte.
func (r *FieldReader) I8() int8 { return int8(r.U8()) }

// U16 reads a uint16.
func (r *FieldReader) U16() uint16 { return binary.LittleEndian.Uint16(r.next(2)) }

// I16 reads an int16.
func (r *FieldReader) I16() int16 { return int16(r.U16()) }

// U32 reads a uint32.
func (r *FieldReader) U32() uint32 { return binary.LittleEndian.Uint32(r.next(4)) }

// F32 reads a float32.
func (r *FieldReader) F32() float32 { return math.Float32frombits(r.U32()) }

// F64 reads a float64.
func (r *FieldReader) F64() float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(r.next(8)))
}

// Text reads a NUL padded field of size n.
func (r *FieldReader) Text(n int) string {
	b := r.next(n)
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
