// Package gps provides the shell commands of the GPS receiver.
package gps

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/sat.go/pkg/cli/sh"
	"github.com/robotalks/sat.go/pkg/service"
)

// configArgs is the argument of configure_hardware on the receiver.
type configArgs struct {
	Config []service.ConfigStruct `json:"config"`
}

func configure(c *ishell.Context, configs ...service.ConfigStruct) {
	sh.DoCommand(c, service.CmdConfigureHardware, &configArgs{Config: configs})
}

var (
	// LockStatusCmd shows the lock status.
	LockStatusCmd = ishell.Cmd{
		Name:    "gps.lockstatus",
		Aliases: []string{"lockstatus"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdLockStatus, nil)
		}),
	}

	// LockInfoCmd shows the last known good fix.
	LockInfoCmd = ishell.Cmd{
		Name:    "gps.lockinfo",
		Aliases: []string{"lockinfo"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdLockInfo, nil)
		}),
	}

	// SystemStatusCmd shows the receiver status.
	SystemStatusCmd = ishell.Cmd{
		Name:    "gps.sysstatus",
		Aliases: []string{"sysstatus"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdSystemStatus, nil)
		}),
	}

	// LogCmd requests a log.
	LogCmd = ishell.Cmd{
		Name:    "gps.log",
		Aliases: []string{"log"},
		Help:    "position INTERVAL(s) [OFFSET(s)] [hold] | errors [hold]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			args := sh.NewArgs(c.Args)
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("position or errors required"))
				return
			}
			var config service.ConfigStruct
			switch c.Args[0] {
			case "position":
				config.Option = service.LogPositionData
				config.Interval = args.Float(1, "INTERVAL", true, 0)
				if len(c.Args) > 2 && c.Args[2] != "hold" {
					config.Offset = args.Float(2, "OFFSET", false, 0)
				}
			case "errors":
				config.Option = service.LogErrorData
			default:
				c.Err(fmt.Errorf("unknown log %q", c.Args[0]))
				return
			}
			config.Hold = args.Flag(1, "hold")
			if args.Err != nil {
				c.Err(args.Err)
				return
			}
			configure(c, config)
		}),
	}

	// UnlogCmd stops logs.
	UnlogCmd = ishell.Cmd{
		Name:    "gps.unlog",
		Aliases: []string{"unlog"},
		Help:    "position|errors|all",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("position, errors or all required"))
				return
			}
			var option service.ConfigOption
			switch c.Args[0] {
			case "position":
				option = service.UnlogPositionData
			case "errors":
				option = service.UnlogErrorData
			case "all":
				option = service.UnlogAll
			default:
				c.Err(fmt.Errorf("unknown log %q", c.Args[0]))
				return
			}
			configure(c, service.ConfigStruct{Option: option})
		}),
	}
)

func init() {
	sh.AddCmds(
		&LockStatusCmd,
		&LockInfoCmd,
		&SystemStatusCmd,
		&LogCmd,
		&UnlogCmd,
	)
}
