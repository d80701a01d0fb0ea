package notify

import (
	"context"
	"errors"
	"sync"
)

// Capture records notifications for assertions in tests
type Capture struct {
	mu       sync.Mutex
	messages []string
	fail     bool
	done     chan struct{}
}

// NewCapture creates a Capture
func NewCapture() *Capture {
	return &Capture{}
}

// Ensure Capture implements Notifier
var _ Notifier = (*Capture)(nil)

func (c *Capture) Send(ctx context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done != nil {
		defer close(c.done)
		c.done = nil
	}
	if c.fail {
		return errors.New("capture: forced failure")
	}
	c.messages = append(c.messages, text)
	return nil
}

// Messages returns a copy of everything sent so far
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// FailNext makes every subsequent Send return an error
func (c *Capture) FailNext() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = true
}

// Expect returns a channel closed by the next Send. Lets tests wait for
// an async dispatch without sleeping.
func (c *Capture) Expect() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan struct{})
	c.done = ch
	return ch
}
