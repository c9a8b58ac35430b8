// Package focus runs a foreground countdown timer for a focus block.
package focus

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/sched"
)

type Focus struct {
	Minutes int
	Slot    string
	Label   string
}

func (n *Focus) Do(ctx context.Context) error {
	minutes := record.NormalizeDuration(n.Minutes)
	slot := n.Slot
	if slot == "" {
		slot = "focus"
	}
	label := n.Label
	if label == "" {
		label = fmt.Sprintf("%d minute focus block", minutes)
	}

	done := make(chan struct{})
	m := sched.NewTimerManager(finishNotifier{done: done})
	m.OnTick = func(_ string, remaining time.Duration) {
		total := int(remaining.Round(time.Second).Seconds())
		fmt.Printf("\r%02d:%02d ", total/60, total%60)
	}

	m.Start(slot, label, time.Duration(minutes)*time.Minute)

	select {
	case <-ctx.Done():
		m.Stop(slot)
		fmt.Println("\rstopped")
		return ctx.Err()
	case <-done:
		return nil
	}
}

// finishNotifier closes done after printing the finish message, so the
// runner can block until the countdown completes.
type finishNotifier struct {
	done chan struct{}
}

func (f finishNotifier) Notify(message string) {
	_, _ = color.New(color.Bold).Printf("\r⏰ %s\n", message)
	close(f.done)
}

var _ sched.Notifier = finishNotifier{}
