// Package sweep runs the scheduler: once, or as a periodic daemon that also
// wakes on store changes.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/dopamine/pkg/sched"
	"tableflip.dev/dopamine/pkg/store"
)

type Sweep struct {
	Interval    time.Duration
	Once        bool
	Persistence store.Persistence
}

func (n *Sweep) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not sweep, no persistence")
	}

	notifier := &sched.WriterNotifier{W: os.Stdout}
	s := sched.NewSweeper(n.Persistence, notifier)
	s.Timers = sched.NewTimerManager(notifier)
	defer s.Timers.StopAll()

	if n.Once {
		promoted, err := s.Sweep(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("promoted %d task(s)\n", promoted)
		return nil
	}

	wake, err := n.Persistence.Watch(ctx)
	if err != nil {
		// The daemon still works without the wake signal, just on the
		// interval alone.
		fmt.Fprintf(os.Stderr, "sweep: watch unavailable: %v\n", err)
		wake = nil
	}

	if err := s.Run(ctx, n.Interval, wake); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
