// Package transport opens the byte streams the drivers talk over.
package transport

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
)

// DefaultBaudRate is used when the serial URL doesn't specify one.
const DefaultBaudRate = 115200

// Open opens a stream by URL:
//
//	serial:///dev/ttyS1?baud=115200
//	ws://host:port/path, wss://host:port/path
func Open(rawURL string) (io.ReadWriteCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("transport: invalid url %q: %w", rawURL, err)
	}
	switch u.Scheme {
	case "serial":
		baud := DefaultBaudRate
		if s := u.Query().Get("baud"); s != "" {
			if baud, err = strconv.Atoi(s); err != nil || baud <= 0 {
				return nil, fmt.Errorf("transport: invalid baud rate %q", s)
			}
		}
		return OpenSerial(u.Path, baud)
	case "ws", "wss":
		return DialWebSocket(u.String())
	}
	return nil, fmt.Errorf("transport: unsupported scheme %q", u.Scheme)
}
