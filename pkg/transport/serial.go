package transport

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultSerialReadTimeout bounds a single Read so the reader can notice
// cancellation.
const DefaultSerialReadTimeout = 300 * time.Millisecond

// SerialPort is a serial port stream.
type SerialPort struct {
	serial.Port
	Name string
}

// OpenSerial opens a serial port in 8N1 mode.
func OpenSerial(name string, baudRate int) (*SerialPort, error) {
	if name == "" {
		return nil, errors.New("transport: serial port is empty")
	}
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("transport: open serial port %q: %w", name, err)
	}
	if err = port.SetReadTimeout(DefaultSerialReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("transport: set serial read timeout: %w", err)
	}
	return &SerialPort{Port: port, Name: name}, nil
}

// Ports lists the serial ports of the system.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}
