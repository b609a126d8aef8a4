package link

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is the generic error kind of every command failure.
	// Use errors.Is(err, ErrTransport) to test for it.
	ErrTransport = errors.New("transport error")
	// ErrNoAck indicates the acknowledgement didn't arrive in time.
	ErrNoAck = errors.New("acknowledgement not received")
	// ErrAckMismatch indicates the acknowledgement didn't confirm the command.
	ErrAckMismatch = errors.New("acknowledgement mismatch")
	// ErrClosed indicates the reader has stopped and no acknowledgement
	// can be received anymore.
	ErrClosed = errors.New("link closed")

	// ErrBadLength indicates a frame with unexpected length.
	ErrBadLength = errors.New("bad frame length")
	// ErrBadSync indicates a frame not starting with the sync word.
	ErrBadSync = errors.New("bad sync word")
	// ErrBadChecksum indicates checksum mismatch.
	ErrBadChecksum = errors.New("bad checksum")
	// ErrPayloadTooLarge indicates the payload doesn't fit in a frame.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// TransportError wraps every failure surfaced by Dispatcher.
type TransportError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) true for all TransportErrors.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func transportErr(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// FrameError is returned by Decode when a frame is rejected.
type FrameError struct {
	Reason error
	// Expected and Actual are filled for length and checksum mismatches.
	Expected int
	Actual   int
}

// Error implements error.
func (e *FrameError) Error() string {
	switch e.Reason {
	case ErrBadChecksum:
		return fmt.Sprintf("%v: expected 0x%04X, got 0x%04X", e.Reason, e.Expected, e.Actual)
	case ErrBadLength:
		return fmt.Sprintf("%v: expected %d, got %d", e.Reason, e.Expected, e.Actual)
	}
	return e.Reason.Error()
}

// Unwrap returns the reason.
func (e *FrameError) Unwrap() error {
	return e.Reason
}

// AckError wraps the response carried by a negative acknowledgement.
type AckError struct {
	Code     byte
	Response uint32
}

// Error implements error.
func (e *AckError) Error() string {
	return fmt.Sprintf("command 0x%02X rejected with response %d", e.Code, e.Response)
}

// Unwrap makes AckError match ErrAckMismatch.
func (e *AckError) Unwrap() error {
	return ErrAckMismatch
}
