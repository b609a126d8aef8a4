package adacs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/sat.go/pkg/link"
	"github.com/robotalks/sat.go/pkg/link/linktest"
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

func mustEncode(t *testing.T, cmd link.Command) []byte {
	b, err := link.Encode(Profile, cmd.Packet())
	require.NoError(t, err)
	return b
}

func TestDriverResetGood(t *testing.T) {
	stream := linktest.NewMockStream()
	req, confirm := mustEncode(t, RequestReset{}), mustEncode(t, ConfirmReset{})
	// the device echoes both frames
	stream.Expect(req, req).Expect(confirm, confirm)
	d := startDriver(t, stream)
	require.NoError(t, d.Reset(context.Background()))
	require.Zero(t, stream.Pending())
	require.Equal(t, [][]byte{frame(0x5A, nil, 0xD5, 0x01), frame(0xF1, nil, 0x6C, 0x02)}, stream.Written())
}

func TestDriverResetBad(t *testing.T) {
	stream := linktest.NewMockStream()
	d := startDriver(t, stream)
	err := d.Reset(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, link.ErrTransport))
	require.True(t, errors.Is(err, linktest.ErrUnexpectedWrite))
	var re *ResetError
	require.True(t, errors.As(err, &re))
	require.Equal(t, ResetRequestSent, re.Phase)
}

func TestDriverResetNoAck(t *testing.T) {
	stream := linktest.NewMockStream()
	// the request is written but the device never answers
	stream.Expect(mustEncode(t, RequestReset{}))
	d := startDriver(t, stream)
	err := d.Reset(context.Background())
	require.True(t, errors.Is(err, link.ErrTransport))
	require.True(t, errors.Is(err, link.ErrNoAck))
	var re *ResetError
	require.True(t, errors.As(err, &re))
	require.Equal(t, ResetRequestSent, re.Phase)
	require.Len(t, stream.Written(), 1)
	require.Equal(t, 1, strings.Count(err.Error(), "adacs:"))
}

func TestDriverResetNoConfirm(t *testing.T) {
	stream := linktest.NewMockStream()
	req, confirm := mustEncode(t, RequestReset{}), mustEncode(t, ConfirmReset{})
	stream.Expect(req, req).Expect(confirm)
	d := startDriver(t, stream)
	err := d.Reset(context.Background())
	require.True(t, errors.Is(err, link.ErrTransport))
	require.True(t, errors.Is(err, link.ErrNoAck))
	var re *ResetError
	require.True(t, errors.As(err, &re))
	require.Equal(t, ResetConfirmSent, re.Phase)
}

func TestDriverSetMode(t *testing.T) {
	stream := linktest.NewMockStream()
	cmd := mustEncode(t, &SetMode{Mode: 1, Params: [4]int16{2, 3, 4, 5}})
	stream.Expect(cmd, cmd)
	d := startDriver(t, stream)
	require.NoError(t, d.SetMode(context.Background(), 1, [4]int16{2, 3, 4, 5}))

	// not scripted, the device rejects the write
	err := d.SetMode(context.Background(), 1, [4]int16{2, 3, 4, 5})
	require.True(t, errors.Is(err, link.ErrTransport))
}

func TestDriverCommandsNoAck(t *testing.T) {
	stream := linktest.NewMockStream()
	sun := mustEncode(t, &SetModeSun{Mode: 8, SunAngleEnable: 1, SunRotAngle: 2.2})
	gpsTime := mustEncode(t, &SetGPSTime{Time: 1198800018})
	rv := mustEncode(t, &SetRV{Position: [3]float32{1.1, 2.2, 3.3}, Velocity: [3]float32{4.4, 5.5, 6.6}, Time: 1198800018})
	stream.Expect(sun, sun).Expect(gpsTime).Expect(rv, rv)
	d := startDriver(t, stream)

	require.NoError(t, d.SetModeSun(context.Background(), 8, 1, 2.2))
	err := d.SetGPSTime(context.Background(), 1198800018)
	require.True(t, errors.Is(err, link.ErrNoAck))
	require.NoError(t, d.SetRV(context.Background(), [3]float32{1.1, 2.2, 3.3}, [3]float32{4.4, 5.5, 6.6}, 1198800018))
}

func TestDriverPassthrough(t *testing.T) {
	stream := linktest.NewMockStream()
	msg := make([]byte, 40)
	stream.Expect(msg)
	d := startDriver(t, stream)
	require.NoError(t, d.Passthrough(context.Background(), msg))
	require.Equal(t, [][]byte{msg}, stream.Written())

	err := d.Passthrough(context.Background(), msg)
	require.True(t, errors.Is(err, link.ErrTransport))
}

func TestDriverTelemetry(t *testing.T) {
	stream := linktest.NewMockStream()
	d := startDriver(t, stream)
	require.True(t, d.Telemetry().StandardUpdated.IsZero())

	std := StandardTelemetry{GPSTime: 1198800018, AcsMode: 1, ValidCmdCount: 4, WheelSpeed: [3]int16{1, 2, 3}}
	stdFrame, err := link.Encode(Profile, &link.Packet{Code: CodeStandardTelemetry, Payload: std.Encode()})
	require.NoError(t, err)
	imu := RawIMU{Gyro: [3]int16{7, 8, 9}, GyroTemp: 25}
	imuFrame, err := link.Encode(Profile, &link.Packet{Code: CodeRawIMU, Payload: imu.Encode()})
	require.NoError(t, err)

	corrupted := append([]byte{}, stdFrame...)
	corrupted[10] ^= 0xFF
	stream.Inject(corrupted)
	stream.Inject(stdFrame)
	stream.Inject(imuFrame)

	require.Eventually(t, func() bool {
		return !d.Telemetry().IMUUpdated.IsZero()
	}, time.Second, 10*time.Millisecond)
	tm := d.Telemetry()
	require.Equal(t, std, tm.Standard)
	require.Equal(t, imu, tm.IMU)
	require.False(t, tm.StandardUpdated.IsZero())
	require.Eventually(t, func() bool {
		stats := d.Stats()
		return stats.Rejected == 1 && stats.Telemetry == 2
	}, time.Second, 10*time.Millisecond)
}
