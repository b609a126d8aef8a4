// Package common provides the shell commands every device supports.
package common

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/sat.go/pkg/cli/sh"
	"github.com/robotalks/sat.go/pkg/service"
)

var (
	// StatusCmd shows the telemetry.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st", "telemetry"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdTelemetry, nil)
		}),
	}

	// StatsCmd shows the link counters.
	StatsCmd = ishell.Cmd{
		Name: "stats",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdStats, nil)
		}),
	}

	// PowerCmd shows the power state.
	PowerCmd = ishell.Cmd{
		Name: "power",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdPower, nil)
		}),
	}

	// AckCmd shows the last mutation.
	AckCmd = ishell.Cmd{
		Name: "ack",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdAck, nil)
		}),
	}

	// NoopCmd checks the device responds.
	NoopCmd = ishell.Cmd{
		Name:    "noop",
		Aliases: []string{"ping"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdNoop, nil)
		}),
	}

	// TestCmd runs a hardware test.
	TestCmd = ishell.Cmd{
		Name: "test",
		Help: "[integration|hardware]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			test := "integration"
			if len(c.Args) > 0 {
				test = c.Args[0]
			}
			sh.DoCommand(c, service.CmdTestHardware, map[string]string{"test": test})
		}),
	}

	// RawCmd writes raw bytes to the device.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "HEX...",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("HEX required"))
				return
			}
			sh.DoCommand(c, service.CmdIssueRawCommand,
				map[string]string{"command": strings.Join(c.Args, "")})
		}),
	}
)

func init() {
	sh.AddCmds(
		&StatusCmd,
		&StatsCmd,
		&PowerCmd,
		&AckCmd,
		&NoopCmd,
		&TestCmd,
		&RawCmd,
	)
}
