package framework

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// DefaultInterval is the default iteration interval of a Loop.
const DefaultInterval = time.Second

// Loop invokes controllers periodically.
// A failing controller is logged and doesn't stop the loop.
type Loop struct {
	Interval time.Duration

	controllers []Controller
	wakeUpCh    chan struct{}
}

// NewLoop creates a Loop.
func NewLoop(interval time.Duration) *Loop {
	return &Loop{Interval: interval, wakeUpCh: make(chan struct{}, 1)}
}

// Add registers controllers. Not safe once the loop is running.
func (l *Loop) Add(ctls ...Controller) *Loop {
	l.controllers = append(l.controllers, ctls...)
	return l
}

// TriggerNext runs the next iteration immediately.
func (l *Loop) TriggerNext() {
	select {
	case l.wakeUpCh <- struct{}{}:
	default:
	}
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.runIteration(ctx, now)
		case <-l.wakeUpCh:
			l.runIteration(ctx, time.Now())
		}
	}
}

func (l *Loop) runIteration(ctx context.Context, now time.Time) {
	for n, ctl := range l.controllers {
		if err := ctl.Control(ctx, now); err != nil {
			name := "controller"
			if named, ok := ctl.(Named); ok {
				name = named.Name()
			}
			glog.Warningf("%s[%d]: %v", name, n, err)
		}
	}
}
