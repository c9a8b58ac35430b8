// Package sched promotes due scheduled tasks into day records and runs
// cancellable countdown timers.
package sched

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/store"
)

// DefaultInterval is the periodic sweep cadence. A due task fires at most
// one interval late, never early.
const DefaultInterval = 30 * time.Second

// Sweeper moves due scheduled tasks into the current day's task list. A task
// due at sweep time is promoted exactly once even when several triggers fire
// close together: the sweep is serialized by a mutex and re-reads task state
// from the store, and promotion itself advances or removes the task.
type Sweeper struct {
	Store    store.Persistence
	Clock    Clock
	Notifier Notifier

	// Timers, when set, receives autostart tasks as running countdowns.
	Timers *TimerManager

	mu sync.Mutex
}

// NewSweeper wires a sweeper with the system clock.
func NewSweeper(p store.Persistence, n Notifier) *Sweeper {
	return &Sweeper{Store: p, Clock: SystemClock(), Notifier: n}
}

// Sweep promotes every task whose due time has passed and returns how many
// were promoted.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clock := s.Clock
	if clock == nil {
		clock = SystemClock()
	}
	now := clock.Now()

	promoted := 0
	for _, task := range s.Store.Scheduled(ctx) {
		if task.DueAt.After(now) {
			continue
		}
		if err := s.promote(ctx, task, now); err != nil {
			return promoted, err
		}
		promoted++
	}
	return promoted, nil
}

func (s *Sweeper) promote(ctx context.Context, task *record.ScheduledTask, now time.Time) error {
	day, err := s.Store.Day(ctx, plan.DayKey(now))
	if err != nil {
		return err
	}
	item := task.Item()
	day.Tasks = append(day.Tasks, item)
	if err := s.Store.SaveDay(day); err != nil {
		return err
	}

	// Advance or retire before anything can trigger a second promotion.
	if next, ok := task.NextOccurrence(); ok {
		task.DueAt = record.Timestamp{Time: next}
		if err := s.Store.SaveScheduled(task); err != nil {
			return err
		}
	} else {
		if err := s.Store.DeleteScheduled(task.ID); err != nil {
			return err
		}
	}

	if s.Notifier != nil {
		s.Notifier.Notify(fmt.Sprintf("Task due: %s (%d min)", item.Text, item.DurationMinutes))
	}
	if task.AutoStart && s.Timers != nil {
		s.Timers.Start(task.ID, item.Text, time.Duration(item.DurationMinutes)*time.Minute)
	}
	return nil
}

// Run sweeps immediately, then on every interval tick and on every wake
// signal, until ctx is done. wake may be nil.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration, wake <-chan store.Event) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	if _, err := s.Sweep(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				return err
			}
		case _, ok := <-wake:
			if !ok {
				wake = nil
				continue
			}
			if _, err := s.Sweep(ctx); err != nil {
				return err
			}
		}
	}
}
