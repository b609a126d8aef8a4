package transport

import (
	"fmt"
	"net/url"

	"golang.org/x/net/websocket"
)

// WebSocket is a byte stream over websocket binary messages, for devices
// bridged over the network.
type WebSocket struct {
	conn    *websocket.Conn
	pending []byte
}

// NewWebSocket wraps websocket.Conn.
func NewWebSocket(conn *websocket.Conn) *WebSocket {
	return &WebSocket{conn: conn}
}

// DialWebSocket connects to a websocket URL.
func DialWebSocket(rawURL string) (*WebSocket, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	origin := "http://" + u.Host
	if u.Scheme == "wss" {
		origin = "https://" + u.Host
	}
	conn, err := websocket.Dial(rawURL, "", origin)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", rawURL, err)
	}
	return NewWebSocket(conn), nil
}

// Read implements io.Reader. A message may span multiple reads.
func (w *WebSocket) Read(p []byte) (int, error) {
	for len(w.pending) == 0 {
		var msg []byte
		if err := websocket.Message.Receive(w.conn, &msg); err != nil {
			return 0, err
		}
		w.pending = msg
	}
	n := copy(p, w.pending)
	w.pending = w.pending[n:]
	return n, nil
}

// Write implements io.Writer. Each write is sent as one binary message.
func (w *WebSocket) Write(p []byte) (int, error) {
	if err := websocket.Message.Send(w.conn, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close implements io.Closer.
func (w *WebSocket) Close() error {
	return w.conn.Close()
}
