// Package journal edits the free-text journal on a day record.
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/store"
)

type Set struct {
	Text        string
	Clear       bool
	Date        string
	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not journal, no persistence")
	}
	date := n.Date
	if date == "" {
		date = plan.DayKey(time.Now())
	}
	if _, err := plan.ParseDay(date); err != nil {
		return err
	}

	day, err := n.Persistence.Day(ctx, date)
	if err != nil {
		return err
	}
	if n.Clear {
		day.Journal = ""
	} else {
		day.Journal = n.Text
	}
	if err := n.Persistence.SaveDay(day); err != nil {
		return err
	}

	if n.Clear {
		fmt.Printf("journal cleared for %s\n", date)
	} else {
		fmt.Printf("journal saved for %s\n", date)
	}
	return nil
}
