package plan

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestWeekNumberLooping(t *testing.T) {
	p := Default()
	meta := Meta{StartDate: "2024-01-01", LoopWeeks: true}

	cases := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1},
		{"2024-01-07", 1},
		{"2024-01-08", 2},
		{"2024-01-22", 4},
		{"2024-01-29", 1}, // week 5 wraps to 1
		{"2023-12-25", 1}, // before start clamps
	}
	for _, tc := range cases {
		if got := p.WeekNumber(day(t, tc.date), meta); got != tc.want {
			t.Fatalf("WeekNumber(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestWeekNumberCapped(t *testing.T) {
	p := Default()
	meta := Meta{StartDate: "2024-01-01", LoopWeeks: false}

	if got := p.WeekNumber(day(t, "2024-01-29"), meta); got != 4 {
		t.Fatalf("expected cap at final week, got %d", got)
	}
	if got := p.WeekNumber(day(t, "2025-06-01"), meta); got != 4 {
		t.Fatalf("expected cap at final week far out, got %d", got)
	}
}

func TestWeekNumberMonotonicWithoutLoop(t *testing.T) {
	p := Default()
	meta := Meta{StartDate: "2024-01-01", LoopWeeks: false}

	prev := 0
	d := day(t, "2023-12-28")
	for i := 0; i < 60; i++ {
		got := p.WeekNumber(d, meta)
		if got < prev {
			t.Fatalf("week decreased at %s: %d < %d", DayKey(d), got, prev)
		}
		prev = got
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekNumberWrapAfterFullCycle(t *testing.T) {
	p := Default()
	meta := Meta{StartDate: "2024-01-01", LoopWeeks: true}

	start := day(t, meta.StartDate)
	if got, want := p.WeekNumber(start.AddDate(0, 0, 28), meta), p.WeekNumber(start, meta); got != want {
		t.Fatalf("start+28d week %d, want %d", got, want)
	}
}

func TestWeekClamp(t *testing.T) {
	p := Default()
	if got := p.Week(0); got.Items() != p[0].Items() {
		t.Fatalf("week 0 should clamp to week 1")
	}
	if got := p.Week(9); got.Journal != p[3].Journal {
		t.Fatalf("week 9 should clamp to final week")
	}
}
