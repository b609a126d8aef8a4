package adacs

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/link"
)

// ResetState is a state of the two-phase reset.
type ResetState int

// Reset states.
const (
	ResetIdle ResetState = iota
	ResetRequestSent
	ResetConfirmSent
	ResetDone
	ResetFailed
)

var resetStateNames = [...]string{
	ResetIdle:        "idle",
	ResetRequestSent: "request-sent",
	ResetConfirmSent: "confirm-sent",
	ResetDone:        "done",
	ResetFailed:      "failed",
}

// String implements fmt.Stringer.
func (s ResetState) String() string {
	if s >= 0 && int(s) < len(resetStateNames) {
		return resetStateNames[s]
	}
	return fmt.Sprintf("ResetState(%d)", int(s))
}

// ResetError annotates a reset failure with the phase it failed in.
type ResetError struct {
	Phase ResetState
	Err   error
}

// Error implements error.
func (e *ResetError) Error() string {
	return fmt.Sprintf("adacs: reset failed in %s: %v", e.Phase, e.Err)
}

// Unwrap returns the cause.
func (e *ResetError) Unwrap() error {
	return e.Err
}

// Sender sends a command and waits for its acknowledgement.
type Sender interface {
	Send(context.Context, link.Command) error
}

// ResetSequence runs the reset handshake:
//
//	Idle -> RequestSent -> ConfirmSent -> Done
//	RequestSent -> Failed, ConfirmSent -> Failed
//
// Only Done is a success.
type ResetSequence struct {
	Sender Sender

	state ResetState
	trace []ResetState
	err   error
}

// NewResetSequence creates a ResetSequence in Idle.
func NewResetSequence(sender Sender) *ResetSequence {
	return &ResetSequence{Sender: sender, trace: []ResetState{ResetIdle}}
}

// State returns the current state.
func (r *ResetSequence) State() ResetState {
	return r.state
}

// Trace returns every state visited.
func (r *ResetSequence) Trace() []ResetState {
	return append([]ResetState(nil), r.trace...)
}

// Finished tells if a terminal state is reached.
func (r *ResetSequence) Finished() bool {
	return r.state == ResetDone || r.state == ResetFailed
}

// Step performs a single transition.
func (r *ResetSequence) Step(ctx context.Context) {
	switch r.state {
	case ResetIdle:
		r.enter(ResetRequestSent)
		r.send(ctx, RequestReset{})
	case ResetRequestSent:
		r.enter(ResetConfirmSent)
		r.send(ctx, ConfirmReset{})
	case ResetConfirmSent:
		r.enter(ResetDone)
	}
}

// Run steps until a terminal state is reached.
func (r *ResetSequence) Run(ctx context.Context) error {
	for !r.Finished() {
		r.Step(ctx)
	}
	return r.err
}

func (r *ResetSequence) enter(state ResetState) {
	if glog.V(2) {
		glog.Infof("adacs reset: %s -> %s", r.state, state)
	}
	r.state = state
	r.trace = append(r.trace, state)
}

func (r *ResetSequence) send(ctx context.Context, cmd link.Command) {
	if err := r.Sender.Send(ctx, cmd); err != nil {
		r.err = &ResetError{Phase: r.state, Err: err}
		r.enter(ResetFailed)
	}
}
