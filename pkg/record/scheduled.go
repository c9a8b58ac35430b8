package record

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FallbackDurationMinutes is used when a task carries a non-positive
// duration.
const FallbackDurationMinutes = 25

// NormalizeDuration guards against non-positive durations.
func NormalizeDuration(minutes int) int {
	if minutes <= 0 {
		return FallbackDurationMinutes
	}
	return minutes
}

// Repeat is a scheduled task's recurrence rule.
type Repeat string

const (
	RepeatNone     Repeat = "none"
	RepeatDaily    Repeat = "daily"
	RepeatWeekly   Repeat = "weekly"
	RepeatWeekdays Repeat = "weekdays"
)

// IsValid reports whether r is a known repeat rule.
func (r Repeat) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatWeekdays:
		return true
	default:
		return false
	}
}

// ParseRepeat converts user input to a Repeat. Empty input means none.
func ParseRepeat(input string) (Repeat, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return RepeatNone, nil
	}
	r := Repeat(s)
	if !r.IsValid() {
		return "", fmt.Errorf("record: invalid repeat rule %q", input)
	}
	return r, nil
}

// ScheduledTask is a reminder awaiting promotion into a day's task list.
// DueAt is always the next pending occurrence.
type ScheduledTask struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	DueAt           Timestamp `json:"dueAt"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	Repeat          Repeat    `json:"repeat,omitempty"`
	AutoStart       bool      `json:"autoStart,omitempty"`
}

// EnsureID assigns a content-derived id if the task has none.
func (t *ScheduledTask) EnsureID() {
	if t.ID != "" {
		return
	}
	b, _ := json.Marshal(t)
	sum := md5.Sum(b)
	t.ID = fmt.Sprintf("%x", sum[:8])
}

// Item converts the task into the day task appended on promotion.
func (t *ScheduledTask) Item() TaskItem {
	return TaskItem{
		Text:            t.Text,
		DurationMinutes: NormalizeDuration(t.DurationMinutes),
		Done:            false,
	}
}

// NextOccurrence computes the due time after the current one fires. The
// second return is false for one-off tasks, which have no next occurrence.
// The result is strictly later than the current DueAt for every repeat rule.
func (t *ScheduledTask) NextOccurrence() (time.Time, bool) {
	due := t.DueAt.Time
	switch t.Repeat {
	case RepeatDaily:
		return due.Add(24 * time.Hour), true
	case RepeatWeekly:
		return due.Add(7 * 24 * time.Hour), true
	case RepeatWeekdays:
		next := due.Add(24 * time.Hour)
		for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
			next = next.Add(24 * time.Hour)
		}
		return next, true
	default:
		return time.Time{}, false
	}
}

// Validate checks a loaded or imported scheduled task.
func (t *ScheduledTask) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("record: scheduled task %s has no text", t.ID)
	}
	if t.DueAt.IsZero() {
		return fmt.Errorf("record: scheduled task %q has no due time", t.Text)
	}
	if t.Repeat != "" && !t.Repeat.IsValid() {
		return fmt.Errorf("record: scheduled task %q: invalid repeat %q", t.Text, t.Repeat)
	}
	return nil
}
