package mqtt

import "strings"

// Topic suffixes under <device>/<id>/.
const (
	TopicTelemetry = "telemetry"
	TopicCmd       = "cmd"
	TopicResult    = "result"
	TopicMeta      = "meta"
)

// DeviceTopic builds the topic of a device.
func DeviceTopic(device, id, suffix string) string {
	return device + "/" + id + "/" + suffix
}

// ParseDeviceTopic splits a device topic. ok is false if the topic is
// not in the form <device>/<id>/<suffix>.
func ParseDeviceTopic(topic string) (device, id, suffix string, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 3 {
		return "", "", "", false
	}
	return items[0], items[1], items[2], true
}
