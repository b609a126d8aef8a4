// Package config resolves the daemon configuration from defaults, a TOML
// file, SAT_* environment variables and command line flags, in that order.
package config

import (
	"fmt"
	"io/ioutil"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	toml "github.com/pelletier/go-toml"
	"github.com/spf13/pflag"
)

// Device types.
const (
	DeviceADACS = "adacs"
	DeviceGPS   = "gps"
)

// Payload formats of published snapshots.
const (
	FormatProtobuf = "protobuf"
	FormatCBOR     = "cbor"
)

// Config is the daemon configuration.
type Config struct {
	DeviceType       string
	DeviceURL        string
	AckTimeout       time.Duration
	StatusStaleAfter time.Duration
	// MQTTURL is mqtt://host:port/topic-prefix, empty disables the bridge.
	MQTTURL         string
	ID              string
	PublishInterval time.Duration
	PayloadFormat   string
}

var defaultConfig = Config{
	DeviceType:       DeviceGPS,
	DeviceURL:        "serial:///dev/ttyS1?baud=115200",
	AckTimeout:       time.Second,
	StatusStaleAfter: 10 * time.Second,
	MQTTURL:          "mqtt://localhost:1883/sat/",
	PublishInterval:  time.Second,
	PayloadFormat:    FormatProtobuf,
}

func init() {
	defaultConfig.ID = MachineID()
}

// MachineID retrieves an ID identifying the machine, empty if unavailable.
func MachineID() string {
	id, err := machineid.ProtectedID("sat.go")
	if err != nil {
		return ""
	}
	return id
}

// option binds a setting to its TOML key, environment variable and flag.
type option struct {
	key   string
	usage string
	get   func(*Config) string
	set   func(*Config, string) error
}

func (o *option) env() string {
	return "SAT_" + strings.ToUpper(o.key)
}

func (o *option) flag() string {
	return strings.Replace(o.key, "_", "-", -1)
}

func stringOption(key, usage string, field func(*Config) *string) option {
	return option{
		key:   key,
		usage: usage,
		get:   func(c *Config) string { return *field(c) },
		set: func(c *Config, val string) error {
			*field(c) = val
			return nil
		},
	}
}

// parseDuration accepts Go durations or plain seconds.
func parseDuration(val string) (time.Duration, error) {
	if d, err := time.ParseDuration(val); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", val)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func durationOption(key, usage string, field func(*Config) *time.Duration) option {
	return option{
		key:   key,
		usage: usage,
		get:   func(c *Config) string { return field(c).String() },
		set: func(c *Config, val string) (err error) {
			*field(c), err = parseDuration(val)
			return
		},
	}
}

var options = []option{
	stringOption("device_type", "Device type: adacs or gps", func(c *Config) *string { return &c.DeviceType }),
	stringOption("device_url", "Device URL, serial:///dev/ttyX?baud=N or ws://host/path", func(c *Config) *string { return &c.DeviceURL }),
	durationOption("ack_timeout", "Time to wait for a command acknowledgement", func(c *Config) *time.Duration { return &c.AckTimeout }),
	durationOption("status_stale_after", "Age after which telemetry is stale", func(c *Config) *time.Duration { return &c.StatusStaleAfter }),
	stringOption("mqtt_url", "MQTT broker URL with topic prefix, empty to disable", func(c *Config) *string { return &c.MQTTURL }),
	stringOption("id", "Device ID on the bus", func(c *Config) *string { return &c.ID }),
	durationOption("publish_interval", "Telemetry publish interval", func(c *Config) *time.Duration { return &c.PublishInterval }),
	stringOption("payload_format", "Telemetry payload format: protobuf or cbor", func(c *Config) *string { return &c.PayloadFormat }),
}

// SetupFlags registers a flag for each setting.
func SetupFlags(fs *pflag.FlagSet) {
	for i := range options {
		opt := &options[i]
		fs.String(opt.flag(), opt.get(&defaultConfig), opt.usage+" (env "+opt.env()+")")
	}
}

// Default gets the default config.
func Default() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile applies the settings present in a TOML file.
func (c *Config) LoadFile(path string) error {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	tree, err := toml.LoadBytes(contents)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	for i := range options {
		opt := &options[i]
		if !tree.Has(opt.key) {
			continue
		}
		if err = opt.set(c, fmt.Sprint(tree.Get(opt.key))); err != nil {
			return fmt.Errorf("config: %s: %s: %w", path, opt.key, err)
		}
	}
	return nil
}

// ApplyEnv applies the settings found by lookup, usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for i := range options {
		opt := &options[i]
		if val, ok := lookup(opt.env()); ok {
			if err := opt.set(c, val); err != nil {
				return fmt.Errorf("config: %s: %w", opt.env(), err)
			}
		}
	}
	return nil
}

// ApplyFlags applies the flags changed on the command line.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	for i := range options {
		opt := &options[i]
		if !fs.Changed(opt.flag()) {
			continue
		}
		if err := opt.set(c, fs.Lookup(opt.flag()).Value.String()); err != nil {
			return fmt.Errorf("config: --%s: %w", opt.flag(), err)
		}
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	switch c.DeviceType {
	case DeviceADACS, DeviceGPS:
	default:
		return fmt.Errorf("config: unknown device type %q", c.DeviceType)
	}
	if c.DeviceURL == "" {
		return fmt.Errorf("config: device url is required")
	}
	switch c.PayloadFormat {
	case FormatProtobuf, FormatCBOR:
	default:
		return fmt.Errorf("config: unknown payload format %q", c.PayloadFormat)
	}
	if c.AckTimeout <= 0 || c.StatusStaleAfter <= 0 || c.PublishInterval <= 0 {
		return fmt.Errorf("config: durations must be positive")
	}
	if c.MQTTURL != "" {
		u, err := url.Parse(c.MQTTURL)
		if err != nil {
			return fmt.Errorf("config: invalid mqtt url: %w", err)
		}
		if u.Scheme != "mqtt" {
			return fmt.Errorf("config: unsupported mqtt url scheme %q", u.Scheme)
		}
		if c.ID == "" {
			return fmt.Errorf("config: id is required")
		}
	}
	return nil
}

// String renders the settings as TOML, readable by LoadFile.
func (c *Config) String() string {
	values := make(map[string]interface{}, len(options))
	for i := range options {
		values[options[i].key] = options[i].get(c)
	}
	tree, err := toml.TreeFromMap(values)
	if err != nil {
		return err.Error()
	}
	return tree.String()
}

// Load resolves the configuration. path may be empty. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	c := Default()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if fs != nil {
		if err := c.ApplyFlags(fs); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoad is Load and fails on error.
func MustLoad(path string, fs *pflag.FlagSet) *Config {
	c, err := Load(path, fs)
	if err != nil {
		glog.Exitf("%v", err)
	}
	return c
}
