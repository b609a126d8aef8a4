package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/adacs"
	"github.com/robotalks/sat.go/pkg/link"
	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
)

// DefaultADACSStaleAfter is the age after which ADACS telemetry is stale.
// The standard telemetry arrives at 4Hz.
const DefaultADACSStaleAfter = 5 * time.Second

var _ ADACSDriver = (*adacs.Driver)(nil)

// ADACSDriver is implemented by *adacs.Driver.
type ADACSDriver interface {
	Reset(ctx context.Context) error
	SetMode(ctx context.Context, mode uint8, params [4]int16) error
	SetModeSun(ctx context.Context, mode uint8, sunAngleEnable int16, sunRotAngle float32) error
	SetGPSTime(ctx context.Context, gpsTime uint32) error
	SetRV(ctx context.Context, position, velocity [3]float32, gpsTime uint32) error
	Passthrough(ctx context.Context, raw []byte) error
	Telemetry() adacs.Telemetry
	Stats() link.Stats
	LateAcks() uint64
}

// ADACSOption is an ADACS configuration operation.
type ADACSOption int

// Configuration operations.
const (
	SetMode ADACSOption = iota
	SetModeSun
	SetGPSTime
	SetRV
)

var adacsOptionNames = [...]string{
	SetMode:    "SET_MODE",
	SetModeSun: "SET_MODE_SUN",
	SetGPSTime: "SET_GPS_TIME",
	SetRV:      "SET_RV",
}

// String implements fmt.Stringer.
func (o ADACSOption) String() string {
	if o >= 0 && int(o) < len(adacsOptionNames) {
		return adacsOptionNames[o]
	}
	return fmt.Sprintf("ADACSOption(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o ADACSOption) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *ADACSOption) UnmarshalText(text []byte) error {
	name := strings.ToUpper(string(text))
	for n, s := range adacsOptionNames {
		if s == name {
			*o = ADACSOption(n)
			return nil
		}
	}
	return fmt.Errorf("invalid config option %q", text)
}

// ADACSConfig is an ADACS configuration request. Only the fields of
// Option are used.
type ADACSConfig struct {
	Option ADACSOption `json:"option"`

	// SetMode and SetModeSun.
	Mode   uint8    `json:"mode"`
	Params [4]int16 `json:"params"`
	// SetModeSun.
	SunAngleEnable int16   `json:"sun_angle_enable"`
	SunRotAngle    float32 `json:"sun_rot_angle"`
	// SetGPSTime and SetRV.
	GPSTime uint32 `json:"gps_time"`
	// SetRV, ECI km and km/s.
	Position [3]float32 `json:"position"`
	Velocity [3]float32 `json:"velocity"`
}

// String echoes the configuration.
func (c ADACSConfig) String() string {
	switch c.Option {
	case SetMode:
		return fmt.Sprintf("%s mode=%d params=%v", c.Option, c.Mode, c.Params)
	case SetModeSun:
		return fmt.Sprintf("%s mode=%d sun_angle_enable=%d sun_rot_angle=%v",
			c.Option, c.Mode, c.SunAngleEnable, c.SunRotAngle)
	case SetGPSTime:
		return fmt.Sprintf("%s gps_time=%d", c.Option, c.GPSTime)
	case SetRV:
		return fmt.Sprintf("%s position=%v velocity=%v gps_time=%d",
			c.Option, c.Position, c.Velocity, c.GPSTime)
	}
	return c.Option.String()
}

// ADACS is the attitude determination and control service.
type ADACS struct {
	ackTracker
	driver ADACSDriver

	staleAfter time.Duration
	lock       sync.RWMutex
	now        func() time.Time
}

// NewADACS creates the service on a driver.
func NewADACS(driver ADACSDriver) *ADACS {
	return &ADACS{driver: driver, staleAfter: DefaultADACSStaleAfter, now: time.Now}
}

// SetStaleAfter sets the age after which telemetry is stale.
func (s *ADACS) SetStaleAfter(after time.Duration) {
	s.lock.Lock()
	s.staleAfter = after
	s.lock.Unlock()
}

// Device implements Service.
func (s *ADACS) Device() string {
	return "adacs"
}

func (s *ADACS) checkFresh(t adacs.Telemetry) error {
	if t.StandardUpdated.IsZero() {
		return errors.New("no telemetry received")
	}
	s.lock.RLock()
	after := s.staleAfter
	s.lock.RUnlock()
	if age := s.now().Sub(t.StandardUpdated); after > 0 && age > after {
		return fmt.Errorf("telemetry stale, last received %s ago", age.Truncate(time.Millisecond))
	}
	return nil
}

// Power reports the device on when its telemetry is fresh.
func (s *ADACS) Power() PowerResponse {
	if s.checkFresh(s.driver.Telemetry()) == nil {
		return PowerResponse{State: PowerOn, Uptime: 1}
	}
	return PowerResponse{State: PowerOff}
}

// Telemetry returns the latest telemetry.
func (s *ADACS) Telemetry() adacs.Telemetry {
	return s.driver.Telemetry()
}

// Noop checks the device is alive by its telemetry. The device has no
// side effect free command.
func (s *ADACS) Noop(ctx context.Context) Response {
	s.set(AckNoop)
	return responseOf(s.checkFresh(s.driver.Telemetry()))
}

// ControlPower only supports PowerReset, which runs the reset handshake.
func (s *ADACS) ControlPower(ctx context.Context, state PowerState) Response {
	s.set(AckControlPower)
	if state != PowerReset {
		return responseOf(fmt.Errorf("invalid power state %s: %w", state, ErrNotImplemented))
	}
	return responseOf(s.driver.Reset(ctx))
}

// ConfigureHardware applies a configuration.
func (s *ADACS) ConfigureHardware(ctx context.Context, config ADACSConfig) ConfigureResponse {
	s.set(AckConfigureHardware)
	var err error
	switch config.Option {
	case SetMode:
		err = s.driver.SetMode(ctx, config.Mode, config.Params)
	case SetModeSun:
		err = s.driver.SetModeSun(ctx, config.Mode, config.SunAngleEnable, config.SunRotAngle)
	case SetGPSTime:
		err = s.driver.SetGPSTime(ctx, config.GPSTime)
	case SetRV:
		err = s.driver.SetRV(ctx, config.Position, config.Velocity, config.GPSTime)
	default:
		err = fmt.Errorf("invalid config option %v", config.Option)
	}
	if err != nil {
		glog.Warningf("adacs: configure %s: %v", config.Option, err)
	}
	return ConfigureResponse{Response: responseOf(err), Config: config.String()}
}

// TestHardware runs a test. The integration test reports the current
// telemetry and succeeds when it's fresh.
func (s *ADACS) TestHardware(ctx context.Context, test TestType) TestResults {
	s.set(AckTestHardware)
	if test != TestIntegration {
		return TestResults{Type: test, Response: responseOf(ErrNotImplemented)}
	}
	t := s.driver.Telemetry()
	return TestResults{Type: test, Response: responseOf(s.checkFresh(t)), Telemetry: t}
}

// IssueRawCommand writes hex encoded bytes to the device verbatim.
func (s *ADACS) IssueRawCommand(ctx context.Context, command string) Response {
	s.set(AckIssueRawCommand)
	raw, err := decodeRaw(command)
	if err == nil {
		err = s.driver.Passthrough(ctx, raw)
	}
	return responseOf(err)
}

// Report implements Service.
func (s *ADACS) Report(now time.Time) *pb.Telemetry {
	return &pb.Telemetry{
		Device:      s.Device(),
		TimestampMs: millis(now),
		Stats:       statsOf(s.driver.Stats(), s.driver.LateAcks()),
		Adacs:       adacsSnapshotOf(s.driver.Telemetry()),
	}
}

// Execute implements Service.
func (s *ADACS) Execute(ctx context.Context, req *Request) *Result {
	result := newResult(req)
	switch req.Command {
	case CmdAck:
		return result.With(s.Ack())
	case CmdPower:
		return result.With(s.Power())
	case CmdTelemetry:
		return result.With(s.Telemetry())
	case CmdStats:
		return result.With(statsOf(s.driver.Stats(), s.driver.LateAcks()))
	case CmdNoop:
		return result.From(s.Noop(ctx), nil)
	case CmdControlPower:
		var args controlPowerArgs
		if err := req.DecodeArgs(&args); err != nil {
			return result.Fail(err)
		}
		return result.From(s.ControlPower(ctx, args.State), nil)
	case CmdConfigureHardware:
		var config ADACSConfig
		if err := req.DecodeArgs(&config); err != nil {
			return result.Fail(err)
		}
		resp := s.ConfigureHardware(ctx, config)
		return result.From(resp.Response, resp)
	case CmdTestHardware:
		var args testHardwareArgs
		if err := req.DecodeArgs(&args); err != nil {
			return result.Fail(err)
		}
		resp := s.TestHardware(ctx, args.Test)
		return result.From(resp.Response, resp)
	case CmdIssueRawCommand:
		var args rawCommandArgs
		if err := req.DecodeArgs(&args); err != nil {
			return result.Fail(err)
		}
		return result.From(s.IssueRawCommand(ctx, args.Command), nil)
	}
	return result.Fail(fmt.Errorf("%w: %s", ErrUnknownCommand, req.Command))
}
