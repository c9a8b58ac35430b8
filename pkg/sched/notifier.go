package sched

import (
	"fmt"
	"io"
	"sync"
)

// Notifier receives human-readable "something finished" messages. Delivery
// (sound, system notification, plain text) is the presentation layer's
// concern; the core only emits the message.
type Notifier interface {
	Notify(message string)
}

// WriterNotifier prints notifications to a writer, one per line.
type WriterNotifier struct {
	mu sync.Mutex
	W  io.Writer
}

func (n *WriterNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.W, message)
}
