package adacs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/sat.go/pkg/link"
)

type scriptedSender struct {
	sent    []byte
	results []error
}

func (s *scriptedSender) Send(ctx context.Context, cmd link.Command) error {
	s.sent = append(s.sent, cmd.Packet().Code)
	if len(s.results) == 0 {
		return nil
	}
	err := s.results[0]
	s.results = s.results[1:]
	return err
}

func TestResetSequence(t *testing.T) {
	failure := errors.New("no ack")
	testCases := []struct {
		name    string
		results []error
		sent    []byte
		trace   []ResetState
		phase   ResetState
	}{
		{
			name:  "done",
			sent:  []byte{CodeRequestReset, CodeConfirmReset},
			trace: []ResetState{ResetIdle, ResetRequestSent, ResetConfirmSent, ResetDone},
		},
		{
			name:    "request failed",
			results: []error{failure},
			sent:    []byte{CodeRequestReset},
			trace:   []ResetState{ResetIdle, ResetRequestSent, ResetFailed},
			phase:   ResetRequestSent,
		},
		{
			name:    "confirm failed",
			results: []error{nil, failure},
			sent:    []byte{CodeRequestReset, CodeConfirmReset},
			trace:   []ResetState{ResetIdle, ResetRequestSent, ResetConfirmSent, ResetFailed},
			phase:   ResetConfirmSent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &scriptedSender{results: tc.results}
			seq := NewResetSequence(sender)
			require.Equal(t, ResetIdle, seq.State())
			err := seq.Run(context.Background())
			require.True(t, seq.Finished())
			require.Equal(t, tc.sent, sender.sent)
			require.Equal(t, tc.trace, seq.Trace())
			if tc.phase == ResetIdle {
				require.NoError(t, err)
				require.Equal(t, ResetDone, seq.State())
				return
			}
			require.Equal(t, ResetFailed, seq.State())
			var re *ResetError
			require.True(t, errors.As(err, &re))
			require.Equal(t, tc.phase, re.Phase)
			require.True(t, errors.Is(err, failure))
		})
	}
}

func TestResetStateString(t *testing.T) {
	require.Equal(t, "confirm-sent", ResetConfirmSent.String())
	require.Equal(t, "ResetState(9)", ResetState(9).String())
}
