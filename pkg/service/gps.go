package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/gps"
	"github.com/robotalks/sat.go/pkg/link"
	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
)

var _ GPSDriver = (*gps.Driver)(nil)

// GPSDriver is implemented by *gps.Driver.
type GPSDriver interface {
	Log(ctx context.Context, msg byte, trigger gps.Trigger, hold bool, period, offset float64) error
	Unlog(ctx context.Context, msg byte) error
	UnlogAll(ctx context.Context, held bool) error
	Passthrough(ctx context.Context, raw []byte) error
	Snapshot() gps.Snapshot
	Stats() link.Stats
	LateAcks() uint64
}

// ConfigOption is a GPS configuration operation.
type ConfigOption int

// Configuration operations.
const (
	// LogErrorData makes the receiver report error events as they occur.
	LogErrorData ConfigOption = iota
	// LogPositionData makes the receiver report position at an interval.
	LogPositionData
	// UnlogAll stops all logs.
	UnlogAll
	// UnlogErrorData stops error event logs.
	UnlogErrorData
	// UnlogPositionData stops position logs.
	UnlogPositionData
)

var configOptionNames = [...]string{
	LogErrorData:      "LOG_ERROR_DATA",
	LogPositionData:   "LOG_POSITION_DATA",
	UnlogAll:          "UNLOG_ALL",
	UnlogErrorData:    "UNLOG_ERROR_DATA",
	UnlogPositionData: "UNLOG_POSITION_DATA",
}

// String implements fmt.Stringer.
func (o ConfigOption) String() string {
	if o >= 0 && int(o) < len(configOptionNames) {
		return configOptionNames[o]
	}
	return fmt.Sprintf("ConfigOption(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o ConfigOption) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *ConfigOption) UnmarshalText(text []byte) error {
	name := strings.ToUpper(string(text))
	for n, s := range configOptionNames {
		if s == name {
			*o = ConfigOption(n)
			return nil
		}
	}
	return fmt.Errorf("invalid config option %q", text)
}

// ConfigStruct is a GPS configuration request.
type ConfigStruct struct {
	Option ConfigOption `json:"option"`
	// Hold keeps a log through UnlogAll.
	Hold bool `json:"hold"`
	// Interval and Offset of position logs, in seconds.
	Interval float64 `json:"interval"`
	Offset   float64 `json:"offset"`
}

// String echoes the configuration.
func (c ConfigStruct) String() string {
	switch c.Option {
	case LogErrorData:
		return fmt.Sprintf("%s hold=%v", c.Option, c.Hold)
	case LogPositionData:
		return fmt.Sprintf("%s hold=%v interval=%v offset=%v", c.Option, c.Hold, c.Interval, c.Offset)
	}
	return c.Option.String()
}

// GPSNominal is the nominal telemetry of the receiver.
type GPSNominal struct {
	SystemStatus gps.SystemStatus `json:"system_status"`
	LockStatus   gps.LockStatus   `json:"lock_status"`
	LockInfo     gps.LockInfo     `json:"lock_info"`
}

// GPSTelemetry is the full telemetry of the receiver.
type GPSTelemetry struct {
	Nominal GPSNominal `json:"nominal"`
	// Debug is nil until the version log is received.
	Debug *gps.VersionInfo `json:"debug,omitempty"`
}

// GPS is the receiver service.
type GPS struct {
	ackTracker
	driver GPSDriver
}

// NewGPS creates the service on a driver.
func NewGPS(driver GPSDriver) *GPS {
	return &GPS{driver: driver}
}

// Device implements Service.
func (s *GPS) Device() string {
	return "gps"
}

// Power reports the receiver on when its telemetry is fresh.
func (s *GPS) Power() PowerResponse {
	if s.driver.Snapshot().Fresh {
		return PowerResponse{State: PowerOn, Uptime: 1}
	}
	return PowerResponse{State: PowerOff}
}

// LockStatus returns the latest lock status.
func (s *GPS) LockStatus() gps.LockStatus {
	return s.driver.Snapshot().LockStatus
}

// LockInfo returns the last known good fix.
func (s *GPS) LockInfo() gps.LockInfo {
	return s.driver.Snapshot().LockInfo
}

// SystemStatus returns the receiver status and errors.
func (s *GPS) SystemStatus() gps.SystemStatus {
	return s.driver.Snapshot().SystemStatus
}

// Telemetry returns the nominal and debug telemetry.
func (s *GPS) Telemetry() GPSTelemetry {
	return telemetryOf(s.driver.Snapshot())
}

func telemetryOf(snap gps.Snapshot) GPSTelemetry {
	return GPSTelemetry{
		Nominal: GPSNominal{
			SystemStatus: snap.SystemStatus,
			LockStatus:   snap.LockStatus,
			LockInfo:     snap.LockInfo,
		},
		Debug: snap.Version,
	}
}

// Noop requests the version log once, which the receiver must
// acknowledge.
func (s *GPS) Noop(ctx context.Context) Response {
	s.set(AckNoop)
	return responseOf(s.driver.Log(ctx, gps.MsgVersion, gps.Once, false, 0, 0))
}

// ConfigureHardware applies the configurations in order. All of them
// are attempted and the errors are joined.
func (s *GPS) ConfigureHardware(ctx context.Context, configs ...ConfigStruct) ConfigureResponse {
	s.set(AckConfigureHardware)
	echo := make([]string, 0, len(configs))
	var errs []string
	for _, c := range configs {
		echo = append(echo, c.String())
		if err := s.configure(ctx, c); err != nil {
			glog.Warningf("gps: configure %s: %v", c.Option, err)
			errs = append(errs, fmt.Sprintf("%s: %v", c.Option, err))
		}
	}
	return ConfigureResponse{
		Response: Response{Success: len(errs) == 0, Errors: strings.Join(errs, ", ")},
		Config:   strings.Join(echo, ", "),
	}
}

func (s *GPS) configure(ctx context.Context, c ConfigStruct) error {
	switch c.Option {
	case LogErrorData:
		return s.driver.Log(ctx, gps.MsgErrorEvent, gps.OnNew, c.Hold, 0, 0)
	case LogPositionData:
		if c.Interval < 0 || c.Offset < 0 {
			return errors.New("interval and offset must not be negative")
		}
		trigger := gps.OnTime
		if c.Interval == 0 {
			trigger = gps.OnChanged
		}
		return s.driver.Log(ctx, gps.MsgNominal, trigger, c.Hold, c.Interval, c.Offset)
	case UnlogAll:
		return s.driver.UnlogAll(ctx, true)
	case UnlogErrorData:
		return s.driver.Unlog(ctx, gps.MsgErrorEvent)
	case UnlogPositionData:
		return s.driver.Unlog(ctx, gps.MsgNominal)
	}
	return fmt.Errorf("invalid config option %v", c.Option)
}

// TestHardware runs a test. The integration test reports the current
// telemetry and succeeds when it's fresh.
func (s *GPS) TestHardware(ctx context.Context, test TestType) TestResults {
	s.set(AckTestHardware)
	if test != TestIntegration {
		return TestResults{Type: test, Response: responseOf(ErrNotImplemented)}
	}
	snap := s.driver.Snapshot()
	result := TestResults{Type: test, Telemetry: telemetryOf(snap)}
	if snap.Fresh {
		result.Success = true
	} else {
		result.Errors = strings.Join(snap.SystemStatus.Errors, ", ")
	}
	return result
}

// IssueRawCommand writes hex encoded bytes to the receiver verbatim.
func (s *GPS) IssueRawCommand(ctx context.Context, command string) Response {
	s.set(AckIssueRawCommand)
	raw, err := decodeRaw(command)
	if err == nil {
		err = s.driver.Passthrough(ctx, raw)
	}
	return responseOf(err)
}

// Report implements Service.
func (s *GPS) Report(now time.Time) *pb.Telemetry {
	return &pb.Telemetry{
		Device:      s.Device(),
		TimestampMs: millis(now),
		Stats:       statsOf(s.driver.Stats(), s.driver.LateAcks()),
		Gps:         gpsSnapshotOf(s.driver.Snapshot()),
	}
}

// Execute implements Service.
func (s *GPS) Execute(ctx context.Context, req *Request) *Result {
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
	case CmdLockStatus:
		return result.With(s.LockStatus())
	case CmdLockInfo:
		return result.With(s.LockInfo())
	case CmdSystemStatus:
		return result.With(s.SystemStatus())
	case CmdNoop:
		return result.From(s.Noop(ctx), nil)
	case CmdConfigureHardware:
		var args struct {
			Config []ConfigStruct `json:"config"`
		}
		if err := req.DecodeArgs(&args); err != nil {
			return result.Fail(err)
		}
		resp := s.ConfigureHardware(ctx, args.Config...)
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
