package gps

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/sat.go/pkg/link"
	"github.com/robotalks/sat.go/pkg/link/linktest"
	"github.com/robotalks/sat.go/pkg/status"
)

func startDriver(t *testing.T, stream *linktest.MockStream) *Driver {
	d := New(stream)
	d.SetAckTimeout(100 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		stream.Close()
		<-done
	})
	return d
}

func mustEncode(t *testing.T, pkt *link.Packet) []byte {
	b, err := link.Encode(Profile, pkt)
	require.NoError(t, err)
	return b
}

func TestDriverLog(t *testing.T) {
	stream := linktest.NewMockStream()
	logCmd := &Log{Message: MsgNominal, Trigger: OnTime, Period: 1}
	stream.Expect(mustEncode(t, logCmd.Packet()), mustEncode(t, Ack(CodeLog, AckOK)))
	stream.Expect(mustEncode(t, logCmd.Packet()), mustEncode(t, Ack(CodeLog, 31)))
	d := startDriver(t, stream)

	require.NoError(t, d.Log(context.Background(), MsgNominal, OnTime, false, 1, 0))

	err := d.Log(context.Background(), MsgNominal, OnTime, false, 1, 0)
	require.True(t, errors.Is(err, link.ErrTransport))
	require.True(t, errors.Is(err, link.ErrAckMismatch))
}

func TestDriverUnlog(t *testing.T) {
	stream := linktest.NewMockStream()
	unlog := &Unlog{Message: MsgErrorEvent}
	unlogAll := &UnlogAll{Held: true}
	stream.Expect(mustEncode(t, unlog.Packet()), mustEncode(t, Ack(CodeUnlog, AckOK)))
	stream.Expect(mustEncode(t, unlogAll.Packet()))
	d := startDriver(t, stream)

	require.NoError(t, d.Unlog(context.Background(), MsgErrorEvent))
	err := d.UnlogAll(context.Background(), true)
	require.True(t, errors.Is(err, link.ErrNoAck))
}

func TestDriverPassthrough(t *testing.T) {
	stream := linktest.NewMockStream()
	raw := []byte("LOG VERSIONA ONCE\r\n")
	stream.Expect(raw)
	d := startDriver(t, stream)
	require.NoError(t, d.Passthrough(context.Background(), raw))
	require.Equal(t, [][]byte{raw}, stream.Written())
	require.Error(t, d.Passthrough(context.Background(), raw))
}

func TestDriverTelemetry(t *testing.T) {
	stream := linktest.NewMockStream()
	d := startDriver(t, stream)

	fix := Nominal{
		ReceiverStatus: status.ClockSteeringDisabled,
		TimeStatus:     180,
		Time:           OEMTime{Week: 1982, Ms: 1000},
		PositionStatus: 0,
		PositionType:   16,
		Position:       [3]float64{1, 2, 3},
		VelocityStatus: 0,
		VelocityType:   8,
		Velocity:       [3]float64{4, 5, 6},
	}
	lost := Nominal{TimeStatus: 100, Time: OEMTime{Week: 1982, Ms: 2000}, PositionStatus: 1, VelocityStatus: 1}
	stream.Inject(mustEncode(t, &link.Packet{Code: MsgNominal, Payload: fix.Encode()}))
	stream.Inject(mustEncode(t, &link.Packet{Code: MsgNominal, Payload: lost.Encode()}))
	version := Component{Index: 0, Count: 1, Model: "OEM615"}
	stream.Inject(mustEncode(t, &link.Packet{Code: MsgVersion, Payload: version.Encode()}))

	require.Eventually(t, func() bool {
		return d.Snapshot().Version != nil
	}, time.Second, 10*time.Millisecond)
	snap := d.Snapshot()
	require.True(t, snap.Fresh)
	require.Equal(t, uint32(1), snap.LockStatus.PositionStatus)
	require.Equal(t, [3]float64{1, 2, 3}, snap.LockInfo.Position)
	require.Equal(t, [3]float64{4, 5, 6}, snap.LockInfo.Velocity)
	require.Equal(t, status.ReceiverStatusFlags(0), snap.SystemStatus.Status)
	require.Equal(t, "OEM615", snap.Version.Components[0].Model)
}
