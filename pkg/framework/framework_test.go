package framework

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	first, second := errors.New("first"), errors.New("second")
	errs.Add(first)
	require.Equal(t, "first", errs.Aggregate().Error())
	errs.Add(nil, second)
	err := errs.Aggregate()
	require.Equal(t, "multiple errors:\nfirst\nsecond", err.Error())
	require.True(t, errors.Is(err, second))
}

func TestRunnerStopsAllOnFailure(t *testing.T) {
	failure := errors.New("device gone")
	runner := NewRunner()
	runner.Go(
		NamedRun("reader", RunFunc(func(ctx context.Context) error {
			return failure
		})),
		NamedRun("publisher", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})),
	)
	err := runner.Wait()
	require.True(t, errors.Is(err, failure))
	require.Equal(t, "reader: device gone", err.Error())
}

func TestRunnerUnnamed(t *testing.T) {
	failure := errors.New("boom")
	err := NewRunner().Go(
		RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
		RunFunc(func(ctx context.Context) error { return failure }),
	).Wait()
	require.Equal(t, "1: boom", err.Error())
}

func TestRunnerStop(t *testing.T) {
	runner := NewRunner()
	runner.Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	runner.Stop()
	require.NoError(t, runner.Wait())
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRunWithContextCloser(t *testing.T) {
	var closed int32
	unblock := make(chan struct{})
	closer := closerFunc(func() error {
		if atomic.AddInt32(&closed, 1) == 1 {
			close(unblock)
		}
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := RunWithContextCloser(ctx, closer, func() error {
		<-unblock
		return errors.New("closed")
	})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&closed))

	err = RunWithContextCloser(context.Background(), closer, func() error { return nil })
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&closed))
}

type countingController struct {
	calls int32
}

func (c *countingController) Control(ctx context.Context, now time.Time) error {
	atomic.AddInt32(&c.calls, 1)
	return errors.New("ignored")
}

func TestLoop(t *testing.T) {
	ctl := &countingController{}
	loop := NewLoop(time.Hour).Add(ctl)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()
	loop.TriggerNext()
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&ctl.calls) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}
