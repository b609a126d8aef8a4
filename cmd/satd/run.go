package main

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/robotalks/sat.go/pkg/bridge/mqtt"
	"github.com/robotalks/sat.go/pkg/config"
	"github.com/robotalks/sat.go/pkg/device"
	fx "github.com/robotalks/sat.go/pkg/framework"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the device and the bridge",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func run(cfg *config.Config) error {
	dev, err := device.Open(cfg)
	if err != nil {
		return err
	}
	runner := fx.NewRunner().HandleSignals()
	if cfg.MQTTURL == "" {
		glog.Warning("mqtt_url is empty, bridge disabled")
		return runner.Go(dev).Wait()
	}

	codec, err := mqtt.CodecFor(cfg.PayloadFormat)
	if err != nil {
		return err
	}
	opts, prefix, err := mqtt.ClientOptionsFromURL(cfg.MQTTURL)
	if err != nil {
		return err
	}
	if opts.ClientID == "" {
		opts.SetClientID("sat:" + dev.Type + ":" + cfg.ID)
	}
	mqtt.SetPresenceWill(opts, prefix, dev.Type, cfg.ID)
	queue := mqtt.NewQueue(opts, prefix)
	server := mqtt.NewCommandServer(queue, dev.Service, cfg.ID, codec.Format())
	queue.OnConnect = func(*mqtt.Queue) {
		// publishing waits for the broker, not from the callback.
		go func() {
			if err := server.Announce(); err != nil {
				glog.Warningf("announce: %v", err)
			}
		}()
	}
	token := queue.Connect()
	if token.Wait(); token.Error() != nil {
		return token.Error()
	}
	defer queue.Close()
	glog.Infof("bridge connected to %s as %s/%s", cfg.MQTTURL, dev.Type, cfg.ID)

	loop := fx.NewLoop(cfg.PublishInterval).
		Add(mqtt.NewPublisher(queue, dev.Service, cfg.ID, codec))
	return runner.Go(
		dev,
		fx.NamedRun("publisher", loop),
		server,
	).Wait()
}
