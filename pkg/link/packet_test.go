package link

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var testProfile = Profile{Name: "test", Sync: [2]byte{0x90, 0xEB}, Width: 40}

func testFrame(code byte, sum ...byte) []byte {
	b := make([]byte, 40)
	b[0], b[1], b[2] = 0x90, 0xEB, code
	copy(b[38:], sum)
	return b
}

func TestChecksum(t *testing.T) {
	require.Equal(t, uint16(0), Checksum(nil))
	require.Equal(t, uint16(0x1D5), Checksum([]byte{0x90, 0xEB, 0x5A}))
	require.Equal(t, uint16(0xFFFF), Checksum(bytes.Repeat([]byte{0xFF}, 257)))
	// wraps around
	require.Equal(t, uint16(0xFE), Checksum(bytes.Repeat([]byte{0xFF}, 258)))
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		name   string
		packet Packet
		expect []byte
	}{
		{"no payload", Packet{Code: 0x5A}, testFrame(0x5A, 0xD5, 0x01)},
		{"no payload 2", Packet{Code: 0xF1}, testFrame(0xF1, 0x6C, 0x02)},
		{"payload", Packet{Code: 0x44, Payload: []byte{0x92, 0x3C, 0x74, 0x47}}, func() []byte {
			b := testFrame(0x44, 0x48, 0x03)
			copy(b[3:], []byte{0x92, 0x3C, 0x74, 0x47})
			return b
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Encode(testProfile, &tc.packet)
			require.NoError(t, err)
			require.Equal(t, tc.expect, b)
			var buf bytes.Buffer
			n, err := tc.packet.WriteTo(&buf, testProfile)
			require.NoError(t, err)
			require.Equal(t, tc.expect, buf.Bytes())
			require.Equal(t, len(tc.expect), n)
		})
	}
}

func TestEncodePayloadTooLarge(t *testing.T) {
	_, err := Encode(testProfile, &Packet{Code: 1, Payload: make([]byte, testProfile.PayloadSize()+1)})
	require.Equal(t, ErrPayloadTooLarge, err)
	_, err = Encode(testProfile, &Packet{Code: 1, Payload: make([]byte, testProfile.PayloadSize())})
	require.NoError(t, err)
}

func TestDecodeRoundTrip(t *testing.T) {
	payload := Fields(nil).U8(7).I16(-3).F32(2.5).U32(1198800018)
	b, err := Encode(testProfile, &Packet{Code: 0x41, Payload: payload})
	require.NoError(t, err)
	pkt, err := Decode(testProfile, b)
	require.NoError(t, err)
	require.Equal(t, byte(0x41), pkt.Code)
	require.Len(t, pkt.Payload, testProfile.PayloadSize())
	require.Equal(t, []byte(payload), pkt.Payload[:len(payload)])
	r := NewFieldReader(pkt.Payload)
	require.Equal(t, uint8(7), r.U8())
	require.Equal(t, int16(-3), r.I16())
	require.Equal(t, float32(2.5), r.F32())
	require.Equal(t, uint32(1198800018), r.U32())
}

func TestDecodeRejects(t *testing.T) {
	good := testFrame(0x5A, 0xD5, 0x01)

	_, err := Decode(testProfile, good[:39])
	require.True(t, errors.Is(err, ErrBadLength))
	var fe *FrameError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, 40, fe.Expected)
	require.Equal(t, 39, fe.Actual)

	_, err = Decode(testProfile, append(append([]byte{}, good...), 0))
	require.True(t, errors.Is(err, ErrBadLength))

	b := append([]byte{}, good...)
	b[1] = 0xEA
	_, err = Decode(testProfile, b)
	require.True(t, errors.Is(err, ErrBadSync))

	b = append([]byte{}, good...)
	b[39] = 0x02
	_, err = Decode(testProfile, b)
	require.True(t, errors.Is(err, ErrBadChecksum))
	require.Contains(t, err.Error(), "0x01D5")
}

func TestDecodeBitFlip(t *testing.T) {
	good, err := Encode(testProfile, &Packet{Code: 0x00, Payload: Fields(nil).U8(1).I16(2).I16(3).I16(4).I16(5)})
	require.NoError(t, err)
	_, err = Decode(testProfile, good)
	require.NoError(t, err)
	for i := 0; i < testProfile.Width-2; i++ {
		for bit := uint(0); bit < 8; bit++ {
			b := append([]byte{}, good...)
			b[i] ^= 1 << bit
			pkt, err := Decode(testProfile, b)
			require.Errorf(t, err, "byte %d bit %d", i, bit)
			require.Nil(t, pkt)
		}
	}
}

func TestFieldReaderPastEnd(t *testing.T) {
	r := NewFieldReader([]byte{1, 2})
	require.Equal(t, uint32(0x0201), r.U32())
	require.Equal(t, uint8(0), r.U8())
	require.Equal(t, float64(0), r.F64())
	require.Equal(t, "", r.Text(4))
}

func TestFieldText(t *testing.T) {
	f := Fields(nil).Text("OEM615", 8).Text("truncated", 4)
	require.Len(t, f, 12)
	r := NewFieldReader(f)
	require.Equal(t, "OEM615", r.Text(8))
	require.Equal(t, "trun", r.Text(4))
}

func TestProfile(t *testing.T) {
	require.Equal(t, 35, testProfile.PayloadSize())
	require.NoError(t, testProfile.Validate())
	require.Error(t, Profile{Name: "tiny", Width: 5}.Validate())
	require.Equal(t, "test(sync=90EB,width=40)", testProfile.String())
}
