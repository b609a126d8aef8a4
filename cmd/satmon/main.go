package main

import (
	"flag"
	"log"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/robotalks/sat.go/pkg/bridge/mqtt"
	"github.com/robotalks/sat.go/pkg/config"
	"github.com/robotalks/sat.go/pkg/framework"
	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
	"github.com/robotalks/sat.go/pkg/service"
)

var configFile string

func init() {
	pflag.StringVarP(&configFile, "config", "c", "", "Config file")
	config.SetupFlags(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
}

func printTelemetry(device, id string, msg *pb.Telemetry) {
	switch {
	case msg.Gps != nil:
		ls := msg.Gps.GetLockStatus()
		info := msg.Gps.GetLockInfo()
		log.Printf("%s/%s: power=%v time=%s position=%s/%s %v velocity=%s/%s %v status=%s",
			device, id, msg.Gps.Power, ls.GetTimeStatus(),
			ls.GetPositionStatus(), ls.GetPositionType(), info.GetPosition(),
			ls.GetVelocityStatus(), ls.GetVelocityType(), info.GetVelocity(),
			strings.Join(msg.Gps.GetSystemStatus().GetFlags(), "|"))
		for _, e := range msg.Gps.GetSystemStatus().GetErrors() {
			log.Printf("%s/%s: error: %s", device, id, e)
		}
	case msg.Adacs != nil:
		std := msg.Adacs.GetStandard()
		log.Printf("%s/%s: mode=%d active=%d cmds=%d/%d sun=%v mag=%v wheels=%v",
			device, id, std.GetAcsMode(), std.GetAcsModeActive(),
			std.GetValidCmdCount(), std.GetInvalidCmdCount(),
			std.GetSunVector(), std.GetMagneticField(), std.GetWheelSpeed())
	default:
		log.Printf("%s/%s: %s", device, id, msg.String())
	}
	if st := msg.GetStats(); st != nil && (st.Rejected > 0 || st.LateAcks > 0) {
		log.Printf("%s/%s: link frames=%d rejected=%d dropped=%d late_acks=%d",
			device, id, st.Frames, st.Rejected, st.Dropped, st.LateAcks)
	}
}

func main() {
	pflag.Parse()
	flag.CommandLine.Parse(nil)
	log.SetFlags(log.Lmicroseconds)

	cfg := config.MustLoad(configFile, pflag.CommandLine)
	codec, err := mqtt.CodecFor(cfg.PayloadFormat)
	if err != nil {
		glog.Exit(err)
	}
	q, err := mqtt.NewQueueFromURL(cfg.MQTTURL)
	if err != nil {
		glog.Exit(err)
	}
	token := q.Connect()
	if token.Wait(); token.Error() != nil {
		glog.Exit(token.Error())
	}
	defer q.Close()

	mon := &mqtt.Monitor{
		Broker:      q,
		Codec:       codec,
		OnTelemetry: printTelemetry,
		OnMeta: func(device, id string, meta *mqtt.Meta) {
			if meta == nil {
				log.Printf("%s/%s: gone", device, id)
				return
			}
			log.Printf("%s/%s: online since %s, payload %s", device, id, meta.Started.Format("15:04:05"), meta.Format)
		},
		OnResult: func(device, id string, result *service.Result) {
			log.Printf("%s/%s: %s %s success=%v %s", device, id, result.ID, result.Command, result.Success, result.Errors)
		},
	}
	runner := framework.NewRunner().HandleSignals()
	runner.Go(framework.NamedRun("monitor", mon))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
