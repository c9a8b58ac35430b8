package sched

import (
	"fmt"
	"sync"
	"time"
)

// TickerFactory produces a tick channel and a cancel func for it. Tests
// substitute a hand-driven channel so countdown behavior is deterministic.
type TickerFactory func(d time.Duration) (<-chan time.Time, func())

func systemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// TimerManager runs countdown timers keyed by slot. Starting a timer on a
// slot first cancels any timer already running there, so a slot never has
// two live tickers. Stopping a timer reliably clears its tick and its
// remaining-time readout.
type TimerManager struct {
	Clock    Clock
	Notifier Notifier

	// OnTick, when set, receives the remaining time on every tick.
	OnTick func(slot string, remaining time.Duration)

	// Resolution is the tick cadence; zero means one second.
	Resolution time.Duration

	ticker TickerFactory

	mu     sync.Mutex
	active map[string]*countdown
}

type countdown struct {
	label    string
	end      time.Time
	stop     chan struct{}
	finished chan struct{}
}

// NewTimerManager wires a manager with the system clock and ticker.
func NewTimerManager(notifier Notifier) *TimerManager {
	return &TimerManager{
		Clock:    SystemClock(),
		Notifier: notifier,
	}
}

// Start begins a countdown for the slot, cancelling any prior countdown on
// the same slot first.
func (m *TimerManager) Start(slot, label string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		m.active = make(map[string]*countdown)
	}
	if prior, ok := m.active[slot]; ok {
		close(prior.stop)
		delete(m.active, slot)
	}

	clock := m.clock()
	c := &countdown{
		label:    label,
		end:      clock.Now().Add(d),
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	m.active[slot] = c

	resolution := m.Resolution
	if resolution <= 0 {
		resolution = time.Second
	}
	factory := m.ticker
	if factory == nil {
		factory = systemTicker
	}
	tick, cancel := factory(resolution)

	go m.run(slot, c, tick, cancel)
}

func (m *TimerManager) run(slot string, c *countdown, tick <-chan time.Time, cancel func()) {
	defer cancel()
	defer close(c.finished)

	for {
		select {
		case <-c.stop:
			return
		case <-tick:
			remaining := c.end.Sub(m.clock().Now())
			if remaining <= 0 {
				m.finish(slot, c)
				return
			}
			if m.OnTick != nil {
				m.OnTick(slot, remaining)
			}
		}
	}
}

func (m *TimerManager) finish(slot string, c *countdown) {
	m.mu.Lock()
	if m.active[slot] == c {
		delete(m.active, slot)
	}
	m.mu.Unlock()

	if m.Notifier != nil {
		m.Notifier.Notify(fmt.Sprintf("Time's up: %s", c.label))
	}
}

// Stop cancels the countdown on the slot, if any, and reports whether one
// was running.
func (m *TimerManager) Stop(slot string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.active[slot]
	if !ok {
		return false
	}
	close(c.stop)
	delete(m.active, slot)
	return true
}

// StopAll cancels every running countdown.
func (m *TimerManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for slot, c := range m.active {
		close(c.stop)
		delete(m.active, slot)
	}
}

// Remaining reports the time left on a slot's countdown.
func (m *TimerManager) Remaining(slot string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.active[slot]
	if !ok {
		return 0, false
	}
	remaining := c.end.Sub(m.clock().Now())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// Wait blocks until the slot's countdown goroutine exits, whether it
// finished or was stopped. Returns immediately for unknown slots.
func (m *TimerManager) Wait(slot string) {
	m.mu.Lock()
	c, ok := m.active[slot]
	m.mu.Unlock()
	if !ok {
		return
	}
	<-c.finished
}

func (m *TimerManager) clock() Clock {
	if m.Clock == nil {
		return SystemClock()
	}
	return m.Clock
}
