package main

import (
	"flag"

	"github.com/spf13/cobra"

	"github.com/robotalks/sat.go/pkg/config"
)

var (
	// Version is set at build time.
	Version = "dev"

	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "satd",
	Short: "Spacecraft subsystem daemon",
	Long: `satd drives a subsystem device over its framed serial link and bridges
it to MQTT: telemetry is published periodically and commands are
accepted on <prefix><type>/<id>/cmd.

Devices:
  serial:///dev/ttyS1?baud=115200
  ws://host/path

Settings come from the config file, SAT_* environment variables and
flags, the latter overriding the former.`,
	Version:       Version,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog complains unless the go flag set is parsed.
		flag.CommandLine.Parse(nil)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (TOML)")
	config.SetupFlags(flags)
	flags.AddGoFlagSet(flag.CommandLine)
	rootCmd.AddCommand(runCmd, portsCmd, configCmd)
}
