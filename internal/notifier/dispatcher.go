package notifier

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Dispatcher delivers a formatted notification to its channel.
type Dispatcher interface {
	Send(notification string) error
}

// Console is a [Dispatcher] that writes notifications to an output stream,
// one per line.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// CreateConsole returns a [Dispatcher] writing to out, or to stdout when out
// is nil.
func CreateConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) Send(notification string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, notification)
	return err
}
