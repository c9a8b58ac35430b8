// Package meta shows and edits the program configuration: the start date
// anchoring week 1 and the loop policy.
package meta

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/store"
)

type Show struct {
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show plan, no persistence")
	}
	meta, err := n.Persistence.Meta(ctx)
	if err != nil {
		return err
	}
	p := plan.Default()
	week := p.WeekNumber(time.Now(), meta)
	fmt.Printf("start %s, %d weeks, loop %v, currently week %d\n", meta.StartDate, len(p), meta.LoopWeeks, week)
	return nil
}

// SetStart re-anchors week 1. An empty date means today.
type SetStart struct {
	Date        string
	Persistence store.Persistence
}

func (n *SetStart) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set start, no persistence")
	}
	date := n.Date
	if date == "" {
		date = plan.DayKey(time.Now())
	}
	if _, err := plan.ParseDay(date); err != nil {
		return err
	}

	meta, err := n.Persistence.Meta(ctx)
	if err != nil {
		return err
	}
	meta.StartDate = date
	if err := n.Persistence.SaveMeta(meta); err != nil {
		return err
	}
	fmt.Printf("week 1 now starts %s\n", date)
	return nil
}

type SetLoop struct {
	Loop        bool
	Persistence store.Persistence
}

func (n *SetLoop) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set loop, no persistence")
	}
	meta, err := n.Persistence.Meta(ctx)
	if err != nil {
		return err
	}
	meta.LoopWeeks = n.Loop
	if err := n.Persistence.SaveMeta(meta); err != nil {
		return err
	}
	if n.Loop {
		fmt.Println("plan loops after the final week")
	} else {
		fmt.Println("plan caps at the final week")
	}
	return nil
}
