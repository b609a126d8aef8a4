// Package sh provides the interactive device shell.
package sh

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/robotalks/sat.go/pkg/config"
	"github.com/robotalks/sat.go/pkg/service"
)

// Session executes requests on a device, either locally or through the
// bridge.
type Session interface {
	Name() string
	Execute(ctx context.Context, req *service.Request) (*service.Result, error)
	Close() error
}

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool
	// Timeout bounds a single command.
	Timeout time.Duration

	Shell   *ishell.Shell
	Config  *config.Config
	Session Session
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
)

// DefaultTimeout is the default timeout of a command.
const DefaultTimeout = 5 * time.Second

// ErrNotConnected indicates no session is open.
var ErrNotConnected = errors.New("not connected")

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&RemoteCmd,
		&CloseCmd,
	}
)

// SetupFlags registers the shell flags.
func SetupFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&evalOnly, "eval", "e", evalOnly, "Evaluation only, no interactive shell.")
	fs.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *config.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Timeout:     DefaultTimeout,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Session == nil {
			c.Err(ErrNotConnected)
			return
		}
		fn(c)
	}
}

// Execute runs a command on the session and waits for the result.
func (s *Shell) Execute(command string, args interface{}) (*service.Result, error) {
	if s.Session == nil {
		return nil, ErrNotConnected
	}
	req := &service.Request{Command: command}
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, err
		}
		req.Args = data
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()
	return s.Session.Execute(ctx, req)
}

// FormatResult renders a result for display.
func (s *Shell) FormatResult(result *service.Result) (string, error) {
	if s.OutputJSON {
		out, err := json.Marshal(result)
		return string(out), err
	}
	if !result.Success {
		return "", errors.New(result.Errors)
	}
	if result.Data == nil {
		return "OK", nil
	}
	out, err := json.MarshalIndent(result.Data, "", "  ")
	return string(out), err
}

// DoCommand runs a command and prints the result.
func DoCommand(c *ishell.Context, command string, args interface{}) error {
	s := ShellFrom(c)
	result, err := s.Execute(command, args)
	if err == nil {
		var out string
		if out, err = s.FormatResult(result); err == nil {
			c.Println(out)
			return nil
		}
	}
	c.Err(err)
	return err
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// Connect replaces the current session.
func (s *Shell) Connect(session Session) {
	s.Disconnect()
	s.Session = session
	s.setPrompt(fmt.Sprintf("%s > ", session.Name()))
}

// Disconnect closes the current session.
func (s *Shell) Disconnect() {
	if s.Session != nil {
		if err := s.Session.Close(); err != nil {
			glog.Warningf("close %s: %v", s.Session.Name(), err)
		}
		s.Session = nil
		s.setPrompt(unconnectedPrompt)
	}
}

func (s *Shell) setPrompt(prompt string) {
	if s.Shell != nil {
		s.Shell.SetPrompt(prompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect {
		if s.Interactive {
			s.Shell.Printf("Opening %s on %s ...\n", s.Config.DeviceType, s.Config.DeviceURL)
		}
		session, err := OpenLocal(s.Config)
		if err != nil {
			glog.Exitf("open %s failed: %v", s.Config.DeviceURL, err)
		}
		s.Connect(session)
	}
	defer s.Disconnect()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Exit("command expected")
}

var (
	// OpenCmd opens a local device.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[TYPE URL]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			cfg := *s.Config
			if len(c.Args) >= 2 {
				cfg.DeviceType, cfg.DeviceURL = c.Args[0], c.Args[1]
			}
			session, err := OpenLocal(&cfg)
			if err != nil {
				c.Err(err)
				return
			}
			s.Connect(session)
		},
	}

	// RemoteCmd connects a device through the bridge.
	RemoteCmd = ishell.Cmd{
		Name:    "remote",
		Aliases: []string{"r"},
		Help:    "TYPE [ID]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) < 1 {
				c.Err(errors.New("TYPE required"))
				return
			}
			id := s.Config.ID
			if len(c.Args) > 1 {
				id = c.Args[1]
			}
			session, err := DialRemote(s.Config.MQTTURL, c.Args[0], id)
			if err != nil {
				c.Err(err)
				return
			}
			s.Connect(session)
		},
	}

	// CloseCmd closes current session.
	CloseCmd = ishell.Cmd{
		Name:    "close",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}
)

// Main is a helper to provide a single call in main. A first argument
// of @TYPE connects the device of TYPE through the bridge instead of
// opening the configured device.
func Main() {
	fs := pflag.CommandLine
	var configFile string
	fs.StringVarP(&configFile, "config", "c", "", "Config file")
	config.SetupFlags(fs)
	SetupFlags(fs)
	fs.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	flag.CommandLine.Parse(nil)
	cfg := config.MustLoad(configFile, fs)
	args := fs.Args()
	remote := len(args) > 0 && strings.HasPrefix(args[0], "@")
	s := New(cfg).WithAutoConnect(!remote)
	if remote {
		session, err := DialRemote(cfg.MQTTURL, strings.TrimPrefix(args[0], "@"), cfg.ID)
		if err != nil {
			glog.Exitf("connect %s failed: %v", args[0], err)
		}
		s.Connect(session)
		args = args[1:]
	}
	s.Run(args...)
}
