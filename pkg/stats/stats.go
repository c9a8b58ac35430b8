// Package stats computes completion percentages, weekly averages, and
// streaks from recorded history.
package stats

import (
	"math"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
)

// Engine derives completion figures from day records. It holds the plan
// content and program meta so every historical date is scored against the
// week that was valid for that date, never against the currently selected
// week.
type Engine struct {
	Plan plan.Plan
	Meta plan.Meta
}

// Summary bundles the figures for one reference date.
type Summary struct {
	DayPercent  int
	WeekAverage int
	Streak      int
}

// Summarize computes the full summary for a date using auto week resolution.
func (e Engine) Summarize(days map[string]*record.Day, date time.Time) Summary {
	return Summary{
		DayPercent:  e.DayPercent(days[plan.DayKey(date)], date),
		WeekAverage: e.WeekAverageFor(days, date),
		Streak:      e.Streak(days, date),
	}
}

// DayPercent scores one day: checked plan items plus done tasks over the
// week's plan item count plus the day's task count, rounded. A day with no
// items at all scores 0, not 100. A nil record scores 0.
func (e Engine) DayPercent(d *record.Day, date time.Time) int {
	if d == nil {
		return 0
	}
	week := e.Plan.Week(e.Plan.WeekNumber(date, e.Meta))
	total := week.Items() + len(d.Tasks)
	if total == 0 {
		return 0
	}
	done := d.CheckedCount() + d.DoneTasks()
	return int(math.Round(100 * float64(done) / float64(total)))
}

// WeekAverageFor averages DayPercent over every recorded date whose own
// resolved week number matches the week the target date falls in.
func (e Engine) WeekAverageFor(days map[string]*record.Day, date time.Time) int {
	return e.WeekAverage(days, e.Plan.WeekNumber(date, e.Meta))
}

// WeekAverage averages DayPercent over every recorded date that resolves to
// the given week number. The average is unweighted; an empty set yields 0.
func (e Engine) WeekAverage(days map[string]*record.Day, week int) int {
	sum, n := 0, 0
	for key, d := range days {
		date, err := plan.ParseDay(key)
		if err != nil {
			continue
		}
		if e.Plan.WeekNumber(date, e.Meta) != week {
			continue
		}
		sum += e.DayPercent(d, date)
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// DayComplete reports whether a day counts toward the streak. The explicit
// complete flag is authoritative when set; otherwise the day must define at
// least one item and have every plan item checked and every task done.
func (e Engine) DayComplete(d *record.Day, date time.Time) bool {
	if d == nil {
		return false
	}
	if d.Complete != nil {
		return *d.Complete
	}
	week := e.Plan.Week(e.Plan.WeekNumber(date, e.Meta))
	items := week.Items()
	if items+len(d.Tasks) == 0 {
		return false
	}
	if d.CheckedCount() < items {
		return false
	}
	return d.AllTasksDone()
}

// Streak counts consecutive fully-complete days walking backward from date
// (inclusive). The first missing or incomplete day ends the streak.
func (e Engine) Streak(days map[string]*record.Day, date time.Time) int {
	streak := 0
	for {
		d, ok := days[plan.DayKey(date)]
		if !ok || !e.DayComplete(d, date) {
			return streak
		}
		streak++
		date = date.AddDate(0, 0, -1)
	}
}
