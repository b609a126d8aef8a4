// Package linktest provides a scripted device stream for driver tests.
package linktest

import (
	"bytes"
	"container/list"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrUnexpectedWrite is returned by Write when the bytes differ from the
// next expected write, or no write is expected at all.
var ErrUnexpectedWrite = errors.New("unexpected write")

// MockStream is an io.ReadWriteCloser playing a device.
// Each expected write may be answered with replies which become readable
// once the write is received.
type MockStream struct {
	expects list.List
	readCh  chan []byte
	written [][]byte
	closed  bool
	lock    sync.Mutex
}

type expectation struct {
	write   []byte
	replies [][]byte
}

// NewMockStream creates a MockStream.
func NewMockStream() *MockStream {
	return &MockStream{readCh: make(chan []byte, 64)}
}

// Expect scripts the next write and the replies to it.
func (s *MockStream) Expect(write []byte, replies ...[]byte) *MockStream {
	s.lock.Lock()
	s.expects.PushBack(&expectation{write: write, replies: replies})
	s.lock.Unlock()
	return s
}

// Inject makes data readable without a preceding write.
func (s *MockStream) Inject(data []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.closed {
		s.readCh <- data
	}
}

// Written returns all accepted writes.
func (s *MockStream) Written() [][]byte {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([][]byte(nil), s.written...)
}

// Pending returns the number of expected writes not received yet.
func (s *MockStream) Pending() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.expects.Len()
}

// Read implements io.Reader.
func (s *MockStream) Read(p []byte) (int, error) {
	data, ok := <-s.readCh
	if !ok {
		return 0, io.EOF
	}
	return copy(p, data), nil
}

// Write implements io.Writer.
func (s *MockStream) Write(p []byte) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return 0, io.ErrClosedPipe
	}
	elm := s.expects.Front()
	if elm == nil {
		return 0, fmt.Errorf("%w: % X", ErrUnexpectedWrite, p)
	}
	exp := elm.Value.(*expectation)
	if !bytes.Equal(exp.write, p) {
		return 0, fmt.Errorf("%w: % X, expect % X", ErrUnexpectedWrite, p, exp.write)
	}
	s.expects.Remove(elm)
	s.written = append(s.written, append([]byte(nil), p...))
	for _, reply := range exp.replies {
		s.readCh <- reply
	}
	return len(p), nil
}

// Close makes pending and future reads return io.EOF.
func (s *MockStream) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.closed {
		s.closed = true
		close(s.readCh)
	}
	return nil
}
