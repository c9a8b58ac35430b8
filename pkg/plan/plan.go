// Package plan holds the program content and the calendar math that maps a
// date onto a program week.
package plan

// Week is one weekly stage of the program: the daily actions to check off,
// the rules to hold, and the journal prompt for the week.
type Week struct {
	Actions []string `json:"actions"`
	Rules   []string `json:"rules"`
	Journal string   `json:"journal"`
}

// Items returns the number of binary plan items in the week.
func (w Week) Items() int {
	return len(w.Actions) + len(w.Rules)
}

// Plan is an ordered list of weekly stages. Week numbers are 1-based.
type Plan []Week

// Default returns the built-in four week program.
func Default() Plan {
	return Plan{
		{
			Actions: []string{"Wake up at same time", "Plan day in morning", "Walk 20 min", "Read 15 min"},
			Rules:   []string{"No social media in morning", "Limit sugar"},
			Journal: "Write 3 things you're grateful for",
		},
		{
			Actions: []string{"Wake up at same time", "Work on priority task 1h", "Exercise 30 min", "Read 15 min"},
			Rules:   []string{"No screens after 10pm", "Limit caffeine"},
			Journal: "Reflect on your wins",
		},
		{
			Actions: []string{"Wake up at same time", "Do hardest task first", "Stretch 10 min", "Read 15 min"},
			Rules:   []string{"No phone in bedroom", "Avoid junk food"},
			Journal: "Note any challenges today",
		},
		{
			Actions: []string{"Wake up at same time", "Deep work 2h", "Exercise 30 min", "Read 15 min"},
			Rules:   []string{"No social media during work", "Drink 2L water"},
			Journal: "How can tomorrow be better?",
		},
	}
}

// Week returns the content for a 1-based week number, clamped to the plan
// bounds so callers never index out of range.
func (p Plan) Week(n int) Week {
	if len(p) == 0 {
		return Week{}
	}
	if n < 1 {
		n = 1
	}
	if n > len(p) {
		n = len(p)
	}
	return p[n-1]
}
