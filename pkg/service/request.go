package service

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Commands accepted by Execute. Not every device supports all of them.
const (
	CmdAck               = "ack"
	CmdPower             = "power"
	CmdTelemetry         = "telemetry"
	CmdStats             = "stats"
	CmdLockStatus        = "lock_status"
	CmdLockInfo          = "lock_info"
	CmdSystemStatus      = "system_status"
	CmdNoop              = "noop"
	CmdControlPower      = "control_power"
	CmdConfigureHardware = "configure_hardware"
	CmdTestHardware      = "test_hardware"
	CmdIssueRawCommand   = "issue_raw_command"
)

// ErrUnknownCommand indicates the command is not supported by the device.
var ErrUnknownCommand = errors.New("unknown command")

// Request is a command received from the command channel.
type Request struct {
	ID      string          `json:"id,omitempty"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// DecodeArgs decodes Args into v. Empty Args leaves v untouched.
func (r *Request) DecodeArgs(v interface{}) error {
	if len(r.Args) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Args, v); err != nil {
		return fmt.Errorf("%s: invalid args: %w", r.Command, err)
	}
	return nil
}

// Result is the reply of a Request.
type Result struct {
	ID      string      `json:"id,omitempty"`
	Command string      `json:"command"`
	Success bool        `json:"success"`
	Errors  string      `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func newResult(req *Request) *Result {
	return &Result{ID: req.ID, Command: req.Command}
}

// Fail marks the result failed with err.
func (r *Result) Fail(err error) *Result {
	r.Success, r.Errors = false, err.Error()
	return r
}

// With sets data from a query, which always succeeds.
func (r *Result) With(data interface{}) *Result {
	r.Success, r.Data = true, data
	return r
}

// From copies the outcome of a mutation and attaches the full response.
func (r *Result) From(resp Response, data interface{}) *Result {
	r.Success, r.Errors, r.Data = resp.Success, resp.Errors, data
	return r
}

// rawCommandArgs is the argument of issue_raw_command.
type rawCommandArgs struct {
	Command string `json:"command"`
}

// controlPowerArgs is the argument of control_power.
type controlPowerArgs struct {
	State PowerState `json:"state"`
}

// testHardwareArgs is the argument of test_hardware.
type testHardwareArgs struct {
	Test TestType `json:"test"`
}
