// Package check toggles a plan item checkbox on a day record.
package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/printers"
	"tableflip.dev/dopamine/pkg/store"
)

const (
	KindAction = "action"
	KindRule   = "rule"
)

type Check struct {
	Kind        string
	Index       int // 1-based, as shown in the checklist
	Value       bool
	Date        string
	Persistence store.Persistence
}

func (n *Check) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not check, no persistence")
	}
	date := n.Date
	if date == "" {
		date = plan.DayKey(time.Now())
	}
	when, err := plan.ParseDay(date)
	if err != nil {
		return err
	}

	meta, err := n.Persistence.Meta(ctx)
	if err != nil {
		return err
	}
	p := plan.Default()
	week := p.Week(p.WeekNumber(when, meta))

	idx := n.Index - 1
	var bound int
	switch n.Kind {
	case KindAction:
		bound = len(week.Actions)
	case KindRule:
		bound = len(week.Rules)
	default:
		return fmt.Errorf("unknown item kind %q", n.Kind)
	}
	if idx < 0 || idx >= bound {
		return fmt.Errorf("%s %d out of range [1,%d]", n.Kind, n.Index, bound)
	}

	day, err := n.Persistence.Day(ctx, date)
	if err != nil {
		return err
	}
	if n.Kind == KindAction {
		day.SetAction(idx, n.Value)
	} else {
		day.SetRule(idx, n.Value)
	}
	if err := n.Persistence.SaveDay(day); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(date)
	pp.Checklist(week, day)
	return nil
}
