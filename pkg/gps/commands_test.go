package gps

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/sat.go/pkg/link"
)

func TestLogEncoding(t *testing.T) {
	cmd := &Log{Message: MsgNominal, Trigger: OnTime, Hold: true, Period: 1.5, Offset: 0.25}
	pkt := cmd.Packet()
	require.Equal(t, CodeLog, pkt.Code)
	expect := []byte{0x10, 0x02, 0x01}
	var f link.Fields
	expect = append(expect, f.F64(1.5).F64(0.25)...)
	require.Equal(t, expect, pkt.Payload)

	b, err := link.Encode(Profile, pkt)
	require.NoError(t, err)
	require.Len(t, b, 128)
	require.Equal(t, []byte{0xAA, 0x44, 0x01}, b[:3])
	decoded, err := link.Decode(Profile, b)
	require.NoError(t, err)
	r := link.NewFieldReader(decoded.Payload)
	require.Equal(t, MsgNominal, r.U8())
	require.Equal(t, uint8(OnTime), r.U8())
	require.Equal(t, uint8(1), r.U8())
	require.Equal(t, 1.5, r.F64())
	require.Equal(t, 0.25, r.F64())
}

func TestCommandAcks(t *testing.T) {
	cmds := []link.AckedCommand{
		&Log{Message: MsgErrorEvent},
		&Unlog{Message: MsgNominal},
		&UnlogAll{Held: true},
	}
	for _, cmd := range cmds {
		code := cmd.Packet().Code
		require.Equal(t, code|0x80, cmd.AckCode())
		v, ok := cmd.(link.AckValidator)
		require.True(t, ok)
		require.NoError(t, v.ValidateAck(Ack(code, AckOK)))
		err := v.ValidateAck(Ack(code, 2))
		require.True(t, errors.Is(err, link.ErrAckMismatch))
		var ae *link.AckError
		require.True(t, errors.As(err, &ae))
		require.Equal(t, code, ae.Code)
		require.Equal(t, uint32(2), ae.Response)
	}
	require.Equal(t, []byte{1}, (&UnlogAll{Held: true}).Packet().Payload)
	require.Equal(t, []byte{0}, (&UnlogAll{}).Packet().Payload)
}

func TestTelemetryDecode(t *testing.T) {
	n := Nominal{
		ReceiverStatus: 0x00040020,
		TimeStatus:     180,
		Time:           OEMTime{Week: 1982, Ms: 432000000},
		PositionStatus: 0,
		PositionType:   50,
		Position:       [3]float64{-2694045.1234, -4293642.5678, 3857878.9},
		VelocityStatus: 0,
		VelocityType:   50,
		Velocity:       [3]float64{0.01, -0.02, math.Pi},
	}
	require.Equal(t, n, DecodeNominal(n.Encode()))

	c := Component{
		Index: 0, Count: 1, Type: 1,
		Model:       "G2SB0GTT0",
		SerialNum:   "BJYA15400079V",
		HWVersion:   "OEM615-2.00",
		SWVersion:   "OEM060600RN0000",
		BootVersion: "OEM060200RB0000",
		CompileDate: "2015/Jan/28",
		CompileTime: "15:27:29",
	}
	b, err := link.Encode(Profile, &link.Packet{Code: MsgVersion, Payload: c.Encode()})
	require.NoError(t, err)
	pkt, err := link.Decode(Profile, b)
	require.NoError(t, err)
	require.Equal(t, c, DecodeComponent(pkt.Payload))

	e := ErrorEvent{ID: 7, Message: "antenna short"}
	require.Equal(t, e, DecodeErrorEvent(e.Encode()))
	require.Equal(t, ErrorEvent{ID: 1}, DecodeErrorEvent([]byte{1}))
}
