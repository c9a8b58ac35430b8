package sched

import (
	"context"
	"sync"
	"testing"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/store"
)

// fakeStore is an in-memory Persistence for sweep tests.
type fakeStore struct {
	mu    sync.Mutex
	meta  plan.Meta
	days  map[string]*record.Day
	sched map[string]*record.ScheduledTask
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		meta:  plan.Meta{StartDate: "2024-01-01", LoopWeeks: true},
		days:  make(map[string]*record.Day),
		sched: make(map[string]*record.ScheduledTask),
	}
}

func (f *fakeStore) Meta(context.Context) (plan.Meta, error) { return f.meta, nil }
func (f *fakeStore) SaveMeta(meta plan.Meta) error           { f.meta = meta; return nil }

func (f *fakeStore) Day(_ context.Context, date string) (*record.Day, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.days[date]; ok {
		copied := *d
		copied.Tasks = append([]record.TaskItem{}, d.Tasks...)
		return &copied, nil
	}
	return record.NewDay(date), nil
}

func (f *fakeStore) Days(context.Context) map[string]*record.Day {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]*record.Day, len(f.days))
	for k, v := range f.days {
		out[k] = v
	}
	return out
}

func (f *fakeStore) SaveDay(d *record.Day) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days[d.Date] = d
	return nil
}

func (f *fakeStore) Scheduled(context.Context) []*record.ScheduledTask {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*record.ScheduledTask, 0, len(f.sched))
	for _, t := range f.sched {
		copied := *t
		out = append(out, &copied)
	}
	return out
}

func (f *fakeStore) SaveScheduled(t *record.ScheduledTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.EnsureID()
	f.sched[t.ID] = t
	return nil
}

func (f *fakeStore) DeleteScheduled(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sched, id)
	return nil
}

func (f *fakeStore) Replace(_ context.Context, meta plan.Meta, days map[string]*record.Day, scheduled []*record.ScheduledTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meta = meta
	f.days = days
	f.sched = make(map[string]*record.ScheduledTask, len(scheduled))
	for _, t := range scheduled {
		t.EnsureID()
		f.sched[t.ID] = t
	}
	return nil
}

func (f *fakeStore) Watch(context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	return ch, nil
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string{}, n.messages...)
}

func TestSweepPromotesDueDailyTask(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	due := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	task := &record.ScheduledTask{
		Text:            "walk",
		DueAt:           record.Timestamp{Time: due},
		DurationMinutes: 20,
		Repeat:          record.RepeatDaily,
	}
	if err := f.SaveScheduled(task); err != nil {
		t.Fatalf("seed: %v", err)
	}

	clock := &fixedClock{now: due.Add(10 * time.Second)}
	notifier := &recordingNotifier{}
	s := &Sweeper{Store: f, Clock: clock, Notifier: notifier}

	n, err := s.Sweep(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 promotion, got %d", n)
	}

	day, _ := f.Day(ctx, plan.DayKey(clock.Now()))
	if len(day.Tasks) != 1 || day.Tasks[0].Text != "walk" || day.Tasks[0].Done {
		t.Fatalf("unexpected day tasks: %+v", day.Tasks)
	}

	remaining := f.Scheduled(ctx)
	if len(remaining) != 1 {
		t.Fatalf("daily task should be rescheduled, got %d tasks", len(remaining))
	}
	if want := due.Add(24 * time.Hour); !remaining[0].DueAt.Equal(want) {
		t.Fatalf("new dueAt = %v, want exactly %v", remaining[0].DueAt.Time, want)
	}
	if msgs := notifier.Messages(); len(msgs) != 1 {
		t.Fatalf("expected one notification, got %v", msgs)
	}
}

func TestSweepRemovesOneOffTask(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	due := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	if err := f.SaveScheduled(&record.ScheduledTask{
		Text:  "dentist",
		DueAt: record.Timestamp{Time: due},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := &Sweeper{Store: f, Clock: &fixedClock{now: due}}
	if _, err := s.Sweep(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := f.Scheduled(ctx); len(got) != 0 {
		t.Fatalf("one-off task should be removed, got %v", got)
	}
}

func TestSweepNeverFiresEarly(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	due := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	if err := f.SaveScheduled(&record.ScheduledTask{
		Text:  "later",
		DueAt: record.Timestamp{Time: due},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := &Sweeper{Store: f, Clock: &fixedClock{now: due.Add(-time.Second)}}
	n, err := s.Sweep(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 0 {
		t.Fatalf("task promoted %d early", n)
	}
	if got := f.Scheduled(ctx); len(got) != 1 {
		t.Fatalf("pending task should remain")
	}
}

// Overlapping triggers (interval tick plus wake event) must not promote the
// same due task twice.
func TestSweepDeduplicatesOverlappingTriggers(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	due := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	if err := f.SaveScheduled(&record.ScheduledTask{
		Text:   "meditate",
		DueAt:  record.Timestamp{Time: due},
		Repeat: record.RepeatDaily,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	clock := &fixedClock{now: due.Add(time.Second)}
	s := &Sweeper{Store: f, Clock: clock}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Sweep(ctx); err != nil {
				t.Errorf("sweep: %v", err)
			}
		}()
	}
	wg.Wait()

	day, _ := f.Day(ctx, plan.DayKey(clock.Now()))
	if len(day.Tasks) != 1 {
		t.Fatalf("task promoted %d times, want exactly once", len(day.Tasks))
	}
	remaining := f.Scheduled(ctx)
	if len(remaining) != 1 || !remaining[0].DueAt.Equal(due.Add(24*time.Hour)) {
		t.Fatalf("dueAt advanced more than once: %v", remaining[0].DueAt.Time)
	}
}

func TestSweepAutoStartBeginsTimer(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	due := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	task := &record.ScheduledTask{
		Text:            "deep work",
		DueAt:           record.Timestamp{Time: due},
		DurationMinutes: 50,
		AutoStart:       true,
	}
	if err := f.SaveScheduled(task); err != nil {
		t.Fatalf("seed: %v", err)
	}

	clock := &fixedClock{now: due}
	timers := &TimerManager{Clock: clock, ticker: func(time.Duration) (<-chan time.Time, func()) {
		return make(chan time.Time), func() {}
	}}
	s := &Sweeper{Store: f, Clock: clock, Timers: timers}
	if _, err := s.Sweep(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	remaining, ok := timers.Remaining(task.ID)
	if !ok {
		t.Fatalf("autostart task should have a running timer")
	}
	if remaining != 50*time.Minute {
		t.Fatalf("remaining = %v, want 50m", remaining)
	}
	timers.StopAll()
}

func TestSweepDefaultsDuration(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	due := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	if err := f.SaveScheduled(&record.ScheduledTask{
		Text:  "no duration",
		DueAt: record.Timestamp{Time: due},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := &Sweeper{Store: f, Clock: &fixedClock{now: due}}
	if _, err := s.Sweep(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	day, _ := f.Day(ctx, plan.DayKey(due))
	if day.Tasks[0].DurationMinutes != record.FallbackDurationMinutes {
		t.Fatalf("duration = %d, want fallback %d", day.Tasks[0].DurationMinutes, record.FallbackDurationMinutes)
	}
}
