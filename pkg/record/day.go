// Package record defines the persisted data model: per-date day records and
// scheduled tasks awaiting promotion.
package record

import "fmt"

// TaskItem is a free-form user task on a single day, independent of the
// fixed plan items.
type TaskItem struct {
	Text            string `json:"text"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Done            bool   `json:"done"`
}

// Day holds everything the user entered for one calendar date. Check slices
// are index-aligned to the plan week valid for the day's own date.
type Day struct {
	Date         string     `json:"date"`
	ActionChecks []bool     `json:"actionChecks"`
	RuleChecks   []bool     `json:"ruleChecks"`
	Tasks        []TaskItem `json:"tasks,omitempty"`
	Journal      string     `json:"journal,omitempty"`
	Mood         int        `json:"mood,omitempty"`
	Energy       int        `json:"energy,omitempty"`

	// Complete, when non-nil, is the user's explicit verdict for the day and
	// overrides the all-items-checked rule.
	Complete *bool `json:"complete,omitempty"`
}

// NewDay returns an empty record for the given ISO date key.
func NewDay(date string) *Day {
	return &Day{
		Date:         date,
		ActionChecks: []bool{},
		RuleChecks:   []bool{},
		Tasks:        []TaskItem{},
	}
}

// SetAction records the checkbox state for action i, growing the slice as
// needed so sparse edits keep index alignment.
func (d *Day) SetAction(i int, v bool) {
	d.ActionChecks = setCheck(d.ActionChecks, i, v)
}

// SetRule records the checkbox state for rule i.
func (d *Day) SetRule(i int, v bool) {
	d.RuleChecks = setCheck(d.RuleChecks, i, v)
}

func setCheck(checks []bool, i int, v bool) []bool {
	if i < 0 {
		return checks
	}
	for len(checks) <= i {
		checks = append(checks, false)
	}
	checks[i] = v
	return checks
}

// SetMood records a mood rating in [1,5].
func (d *Day) SetMood(n int) error {
	if n < 1 || n > 5 {
		return fmt.Errorf("record: mood %d out of range [1,5]", n)
	}
	d.Mood = n
	return nil
}

// SetEnergy records an energy rating in [1,5].
func (d *Day) SetEnergy(n int) error {
	if n < 1 || n > 5 {
		return fmt.Errorf("record: energy %d out of range [1,5]", n)
	}
	d.Energy = n
	return nil
}

// CheckedCount returns how many plan items are checked.
func (d *Day) CheckedCount() int {
	n := 0
	for _, c := range d.ActionChecks {
		if c {
			n++
		}
	}
	for _, c := range d.RuleChecks {
		if c {
			n++
		}
	}
	return n
}

// DoneTasks returns how many user tasks are marked done.
func (d *Day) DoneTasks() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// AllTasksDone reports whether every user task is done. True for zero tasks.
func (d *Day) AllTasksDone() bool {
	return d.DoneTasks() == len(d.Tasks)
}

// Validate checks field ranges on a loaded or imported record.
func (d *Day) Validate() error {
	if d.Mood != 0 && (d.Mood < 1 || d.Mood > 5) {
		return fmt.Errorf("record: day %s: mood %d out of range [1,5]", d.Date, d.Mood)
	}
	if d.Energy != 0 && (d.Energy < 1 || d.Energy > 5) {
		return fmt.Errorf("record: day %s: energy %d out of range [1,5]", d.Date, d.Energy)
	}
	return nil
}
