// Package service exposes device drivers as the operations of a
// subsystem service: queries of the decoded state and acknowledged
// mutations reporting success and errors.
package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
)

// AckCommand names the last mutation executed by a service.
type AckCommand int

// Mutations.
const (
	AckNone AckCommand = iota
	AckNoop
	AckControlPower
	AckConfigureHardware
	AckTestHardware
	AckIssueRawCommand
)

var ackCommandNames = [...]string{
	AckNone:              "NONE",
	AckNoop:              "NOOP",
	AckControlPower:      "CONTROL_POWER",
	AckConfigureHardware: "CONFIGURE_HARDWARE",
	AckTestHardware:      "TEST_HARDWARE",
	AckIssueRawCommand:   "ISSUE_RAW_COMMAND",
}

// String implements fmt.Stringer.
func (c AckCommand) String() string {
	if c >= 0 && int(c) < len(ackCommandNames) {
		return ackCommandNames[c]
	}
	return fmt.Sprintf("AckCommand(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c AckCommand) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// PowerState is the power state of a device.
type PowerState int

// Power states. Reset is only valid as a ControlPower request.
const (
	PowerOff PowerState = iota
	PowerOn
	PowerReset
)

// String implements fmt.Stringer.
func (s PowerState) String() string {
	switch s {
	case PowerOff:
		return "OFF"
	case PowerOn:
		return "ON"
	case PowerReset:
		return "RESET"
	}
	return fmt.Sprintf("PowerState(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s PowerState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PowerState) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "OFF":
		*s = PowerOff
	case "ON":
		*s = PowerOn
	case "RESET":
		*s = PowerReset
	default:
		return fmt.Errorf("invalid power state %q", text)
	}
	return nil
}

// TestType selects a hardware test.
type TestType int

// Test types.
const (
	// TestIntegration is non-invasive.
	TestIntegration TestType = iota
	// TestHardware is invasive.
	TestHardware
)

// String implements fmt.Stringer.
func (t TestType) String() string {
	if t == TestHardware {
		return "HARDWARE"
	}
	return "INTEGRATION"
}

// MarshalText implements encoding.TextMarshaler.
func (t TestType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TestType) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "INTEGRATION":
		*t = TestIntegration
	case "HARDWARE":
		*t = TestHardware
	default:
		return fmt.Errorf("invalid test type %q", text)
	}
	return nil
}

// ErrNotImplemented is reported by operations a device doesn't support.
var ErrNotImplemented = errors.New("not implemented")

// Response is the result of a mutation.
type Response struct {
	Success bool   `json:"success"`
	Errors  string `json:"errors"`
}

func responseOf(err error) Response {
	if err != nil {
		return Response{Errors: err.Error()}
	}
	return Response{Success: true}
}

// ConfigureResponse is the result of ConfigureHardware.
type ConfigureResponse struct {
	Response
	// Config echoes the requested configuration.
	Config string `json:"config"`
}

// TestResults is the result of TestHardware.
type TestResults struct {
	Response
	Type TestType `json:"type"`
	// Telemetry is filled by integration tests.
	Telemetry interface{} `json:"telemetry,omitempty"`
	// Data is filled by hardware tests.
	Data string `json:"data,omitempty"`
}

// PowerResponse is the result of the power query.
type PowerResponse struct {
	State PowerState `json:"state"`
	// Uptime is 1 when the device is on and 0 otherwise. The devices
	// don't report a real uptime.
	Uptime int `json:"uptime"`
}

// Service is what the bridge needs from a device service.
type Service interface {
	// Device is the device type, used in topics.
	Device() string
	// Report returns the telemetry message of the device.
	Report(now time.Time) *pb.Telemetry
	// Execute runs a request from the command channel.
	Execute(ctx context.Context, req *Request) *Result
}

// ackTracker remembers the last mutation.
type ackTracker struct {
	last AckCommand
	lock sync.Mutex
}

func (a *ackTracker) set(cmd AckCommand) {
	a.lock.Lock()
	a.last = cmd
	a.lock.Unlock()
}

// Ack returns the last mutation executed.
func (a *ackTracker) Ack() AckCommand {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.last
}

// decodeRaw accepts hex with optional spaces, colons and 0x prefix.
func decodeRaw(command string) ([]byte, error) {
	s := strings.TrimSpace(command)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	s = strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(s)
	if s == "" {
		return nil, errors.New("empty command")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex command: %w", err)
	}
	return raw, nil
}

func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Millisecond)
}
