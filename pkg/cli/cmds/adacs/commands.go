// Package adacs provides the shell commands of the ADACS.
package adacs

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/sat.go/pkg/cli/sh"
	"github.com/robotalks/sat.go/pkg/service"
)

func configure(c *ishell.Context, args *sh.Args, config service.ADACSConfig) {
	if args.Err != nil {
		c.Err(args.Err)
		return
	}
	sh.DoCommand(c, service.CmdConfigureHardware, &config)
}

var (
	// ResetCmd runs the reset handshake.
	ResetCmd = ishell.Cmd{
		Name:    "adacs.reset",
		Aliases: []string{"reset"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, service.CmdControlPower, map[string]string{"state": "reset"})
		}),
	}

	// SetModeCmd changes the ACS mode.
	SetModeCmd = ishell.Cmd{
		Name:    "adacs.mode",
		Aliases: []string{"mode"},
		Help:    "MODE [P1 P2 P3 P4]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			args := sh.NewArgs(c.Args)
			config := service.ADACSConfig{Option: service.SetMode}
			config.Mode = uint8(args.Uint(0, "MODE", true, 8))
			for n := range config.Params {
				config.Params[n] = int16(args.Int(n+1, "PARAM", false, 16))
			}
			configure(c, args, config)
		}),
	}

	// SetModeSunCmd changes the ACS mode with sun pointing parameters.
	SetModeSunCmd = ishell.Cmd{
		Name:    "adacs.sun",
		Aliases: []string{"sun"},
		Help:    "MODE SUN_ANGLE_ENABLE SUN_ROT_ANGLE(deg)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			args := sh.NewArgs(c.Args)
			config := service.ADACSConfig{Option: service.SetModeSun}
			config.Mode = uint8(args.Uint(0, "MODE", true, 8))
			config.SunAngleEnable = int16(args.Int(1, "SUN_ANGLE_ENABLE", true, 16))
			config.SunRotAngle = float32(args.Float(2, "SUN_ROT_ANGLE", true, 0))
			configure(c, args, config)
		}),
	}

	// SetGPSTimeCmd sets the device clock.
	SetGPSTimeCmd = ishell.Cmd{
		Name:    "adacs.gpstime",
		Aliases: []string{"gpstime"},
		Help:    "SECONDS",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			args := sh.NewArgs(c.Args)
			config := service.ADACSConfig{Option: service.SetGPSTime}
			config.GPSTime = uint32(args.Uint(0, "SECONDS", true, 32))
			configure(c, args, config)
		}),
	}

	// SetRVCmd sets the reference position and velocity.
	SetRVCmd = ishell.Cmd{
		Name:    "adacs.rv",
		Aliases: []string{"rv"},
		Help:    "X Y Z(km) VX VY VZ(km/s) SECONDS",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			args := sh.NewArgs(c.Args)
			config := service.ADACSConfig{Option: service.SetRV}
			for n := range config.Position {
				config.Position[n] = float32(args.Float(n, "POSITION", true, 0))
			}
			for n := range config.Velocity {
				config.Velocity[n] = float32(args.Float(n+3, "VELOCITY", true, 0))
			}
			config.GPSTime = uint32(args.Uint(6, "SECONDS", true, 32))
			configure(c, args, config)
		}),
	}
)

func init() {
	sh.AddCmds(
		&ResetCmd,
		&SetModeCmd,
		&SetModeSunCmd,
		&SetGPSTimeCmd,
		&SetRVCmd,
	)
}
