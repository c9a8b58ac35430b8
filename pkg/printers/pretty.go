// Package printers renders day checklists, stats, schedules, and badges for
// the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dopamine/pkg/badge"
	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/stats"
)

const (
	checkedMark   = "✔"
	uncheckedMark = "○"
	barWidth      = 20
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Checklist renders the plan items for the day's week against the day's
// check states, followed by the day's own tasks.
func (pp *PrettyPrint) Checklist(week plan.Week, day *record.Day) {
	section := color.New(color.Faint)

	_, _ = section.Println("actions")
	for i, text := range week.Actions {
		pp.item(checked(day.ActionChecks, i), text, "")
	}

	_, _ = section.Println("rules")
	for i, text := range week.Rules {
		pp.item(checked(day.RuleChecks, i), text, "")
	}

	if len(day.Tasks) > 0 {
		_, _ = section.Println("tasks")
		for _, task := range day.Tasks {
			pp.item(task.Done, task.Text, fmt.Sprintf("%dm", record.NormalizeDuration(task.DurationMinutes)))
		}
	}

	if week.Journal != "" {
		_, _ = section.Printf("journal prompt: %s\n", week.Journal)
	}
	if day.Journal != "" {
		fmt.Printf("  %s\n", day.Journal)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) item(done bool, text, suffix string) {
	mark := uncheckedMark
	line := color.New()
	if done {
		mark = checkedMark
		line = color.New(color.FgGreen)
	}
	if suffix != "" {
		suffix = " " + color.New(color.Faint).Sprint(suffix)
	}
	_, _ = line.Printf("  %s %s%s\n", mark, text, suffix)
}

// Summary renders day percent, week average, and streak with progress bars.
func (pp *PrettyPrint) Summary(week int, s stats.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("week", fmt.Sprintf("%d", week))
	tbl.AddRow("today", fmt.Sprintf("%3d%% %s", s.DayPercent, Bar(s.DayPercent)))
	tbl.AddRow("week avg", fmt.Sprintf("%3d%% %s", s.WeekAverage, Bar(s.WeekAverage)))
	tbl.AddRow("streak", fmt.Sprintf("%d day(s)", s.Streak))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Badges lists every badge with its earned status.
func (pp *PrettyPrint) Badges(badges []badge.Badge) {
	earned := color.New(color.FgHiYellow)
	unearned := color.New(color.Faint)

	for _, b := range badges {
		if b.Earned {
			_, _ = earned.Printf("  %s %s — %s\n", b.Icon, b.Name, b.Description)
		} else {
			_, _ = unearned.Printf("  · %s — %s\n", b.Name, b.Description)
		}
	}
	fmt.Println("")
}

// Schedule renders the pending scheduled tasks.
func (pp *PrettyPrint) Schedule(tasks []*record.ScheduledTask) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "DUE", "REPEAT", "MIN", "TASK")
	} else {
		tbl.AddRow("DUE", "REPEAT", "MIN", "TASK")
	}
	for _, t := range tasks {
		repeat := t.Repeat
		if repeat == "" {
			repeat = record.RepeatNone
		}
		due := t.DueAt.Local().Format("2006-01-02 15:04")
		if pp.ShowID {
			tbl.AddRow(t.ID, due, string(repeat), record.NormalizeDuration(t.DurationMinutes), t.Text)
		} else {
			tbl.AddRow(due, string(repeat), record.NormalizeDuration(t.DurationMinutes), t.Text)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Bar renders a fixed-width progress bar for a 0-100 percentage.
func Bar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func checked(checks []bool, i int) bool {
	return i < len(checks) && checks[i]
}
