package record

import (
	"testing"
	"time"
)

func TestParseRepeat(t *testing.T) {
	cases := []struct {
		in      string
		want    Repeat
		wantErr bool
	}{
		{"", RepeatNone, false},
		{"none", RepeatNone, false},
		{"daily", RepeatDaily, false},
		{" Weekly ", RepeatWeekly, false},
		{"weekdays", RepeatWeekdays, false},
		{"fortnightly", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRepeat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRepeat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRepeat(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRepeat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextOccurrenceDaily(t *testing.T) {
	due := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	task := &ScheduledTask{Text: "stretch", DueAt: Timestamp{Time: due}, Repeat: RepeatDaily}

	next, ok := task.NextOccurrence()
	if !ok {
		t.Fatalf("daily task must have a next occurrence")
	}
	if want := due.Add(24 * time.Hour); !next.Equal(want) {
		t.Fatalf("next = %v, want exactly %v", next, want)
	}
}

func TestNextOccurrenceWeekly(t *testing.T) {
	due := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	task := &ScheduledTask{Text: "review", DueAt: Timestamp{Time: due}, Repeat: RepeatWeekly}

	next, ok := task.NextOccurrence()
	if !ok {
		t.Fatalf("weekly task must have a next occurrence")
	}
	if want := due.Add(7 * 24 * time.Hour); !next.Equal(want) {
		t.Fatalf("next = %v, want %v", next, want)
	}
}

func TestNextOccurrenceWeekdaysSkipsWeekend(t *testing.T) {
	// Friday morning; the next weekday occurrence is Monday.
	due := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	if due.Weekday() != time.Friday {
		t.Fatalf("fixture should be a Friday, got %v", due.Weekday())
	}
	task := &ScheduledTask{Text: "standup", DueAt: Timestamp{Time: due}, Repeat: RepeatWeekdays}

	next, ok := task.NextOccurrence()
	if !ok {
		t.Fatalf("weekdays task must have a next occurrence")
	}
	if next.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %v", next.Weekday())
	}
	if !next.After(due) {
		t.Fatalf("occurrence must strictly increase")
	}
}

func TestNextOccurrenceNone(t *testing.T) {
	task := &ScheduledTask{Text: "one off", DueAt: Timestamp{Time: time.Now()}, Repeat: RepeatNone}
	if _, ok := task.NextOccurrence(); ok {
		t.Fatalf("one-off task must not reschedule")
	}
}

func TestNextOccurrenceStrictlyIncreasing(t *testing.T) {
	due := time.Date(2024, 2, 29, 17, 0, 0, 0, time.UTC)
	for _, repeat := range []Repeat{RepeatDaily, RepeatWeekly, RepeatWeekdays} {
		task := &ScheduledTask{Text: "t", DueAt: Timestamp{Time: due}, Repeat: repeat}
		prev := due
		for i := 0; i < 20; i++ {
			next, ok := task.NextOccurrence()
			if !ok {
				t.Fatalf("%s: expected next occurrence", repeat)
			}
			if !next.After(prev) {
				t.Fatalf("%s: dueAt must strictly increase, %v -> %v", repeat, prev, next)
			}
			task.DueAt = Timestamp{Time: next}
			prev = next
		}
	}
}

func TestNormalizeDuration(t *testing.T) {
	if got := NormalizeDuration(0); got != FallbackDurationMinutes {
		t.Fatalf("zero duration should fall back, got %d", got)
	}
	if got := NormalizeDuration(-10); got != FallbackDurationMinutes {
		t.Fatalf("negative duration should fall back, got %d", got)
	}
	if got := NormalizeDuration(45); got != 45 {
		t.Fatalf("valid duration should pass through, got %d", got)
	}
}

func TestEnsureID(t *testing.T) {
	task := &ScheduledTask{Text: "walk", DueAt: Timestamp{Time: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)}}
	task.EnsureID()
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
	id := task.ID
	task.EnsureID()
	if task.ID != id {
		t.Fatalf("id should be stable once set")
	}
}
