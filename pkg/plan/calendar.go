package plan

import (
	"fmt"
	"time"
)

// DayLayout is the ISO date layout used for day keys and the start date.
const DayLayout = "2006-01-02"

// Meta is the process-wide program configuration: the date anchoring week 1
// and whether the program loops after the final week.
type Meta struct {
	StartDate string `json:"startDate"`
	LoopWeeks bool   `json:"loopWeeks"`
}

// Start parses the anchor date. An unset start date is an error; callers are
// expected to default it (the store defaults to the earliest recorded day).
func (m Meta) Start() (time.Time, error) {
	if m.StartDate == "" {
		return time.Time{}, fmt.Errorf("plan: meta has no start date")
	}
	t, err := time.Parse(DayLayout, m.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("plan: bad start date %q: %w", m.StartDate, err)
	}
	return t, nil
}

// ParseDay parses an ISO YYYY-MM-DD day key.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("plan: bad day %q: %w", s, err)
	}
	return t, nil
}

// DayKey formats a time as an ISO day key.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// WeekNumber maps a calendar date onto a 1-based program week.
//
// Days before the start date clamp to week 1. With LoopWeeks the index wraps
// modulo the plan length; otherwise it caps at the final week so a finished
// program keeps reporting its last stage instead of erroring.
func (p Plan) WeekNumber(date time.Time, meta Meta) int {
	if len(p) == 0 {
		return 1
	}
	start, err := meta.Start()
	if err != nil {
		return 1
	}
	elapsed := int(midnight(date).Sub(midnight(start)).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}
	week := elapsed / 7
	if meta.LoopWeeks {
		return (week % len(p)) + 1
	}
	if week >= len(p) {
		return len(p)
	}
	return week + 1
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
