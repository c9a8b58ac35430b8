// Package badge derives achievement flags from recorded history. Badges are
// recomputed on demand and never stored, so they cannot drift from the
// underlying records.
package badge

import (
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/stats"
)

// Badge is a derived achievement with its earned status.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// Evaluator computes badges from a history snapshot.
type Evaluator struct {
	Engine stats.Engine
}

// Evaluate returns every badge with its earned status for the given
// reference date. Each predicate reads only the snapshot, so evaluation
// order does not matter.
func (ev Evaluator) Evaluate(days map[string]*record.Day, today time.Time) []Badge {
	return []Badge{
		ev.sevenDayStreak(days, today),
		ev.perfectWeek(days, today),
		ev.fullCycleFinisher(days),
	}
}

// CountEarned returns how many badges are earned.
func (ev Evaluator) CountEarned(days map[string]*record.Day, today time.Time) int {
	n := 0
	for _, b := range ev.Evaluate(days, today) {
		if b.Earned {
			n++
		}
	}
	return n
}

func (ev Evaluator) sevenDayStreak(days map[string]*record.Day, today time.Time) Badge {
	return Badge{
		ID:          "seven_day_streak",
		Name:        "7-day streak",
		Description: "Seven fully complete days in a row",
		Icon:        "🏅",
		Earned:      ev.Engine.Streak(days, today) >= 7,
	}
}

func (ev Evaluator) perfectWeek(days map[string]*record.Day, today time.Time) Badge {
	week := ev.Engine.Plan.WeekNumber(today, ev.Engine.Meta)
	seen := false
	perfect := true
	for key, d := range days {
		date, err := plan.ParseDay(key)
		if err != nil {
			continue
		}
		if ev.Engine.Plan.WeekNumber(date, ev.Engine.Meta) != week {
			continue
		}
		seen = true
		if ev.Engine.DayPercent(d, date) != 100 {
			perfect = false
			break
		}
	}
	return Badge{
		ID:          "perfect_week",
		Name:        "Perfect Week",
		Description: "Every recorded day of the current week at 100%",
		Icon:        "🌟",
		Earned:      seen && perfect,
	}
}

func (ev Evaluator) fullCycleFinisher(days map[string]*record.Day) Badge {
	want := len(ev.Engine.Plan) * 7
	count := 0
	for key, d := range days {
		date, err := plan.ParseDay(key)
		if err != nil {
			continue
		}
		if ev.Engine.DayPercent(d, date) == 100 || ev.Engine.DayComplete(d, date) {
			count++
		}
	}
	return Badge{
		ID:          "full_cycle",
		Name:        "Full-cycle finisher",
		Description: "A whole program's worth of complete days",
		Icon:        "🏆",
		Earned:      want > 0 && count >= want,
	}
}
