// Package notify delivers best-effort outbound notifications. Delivery
// failures are logged and swallowed; they never fail the request that
// triggered them.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// Notifier sends a single text notification
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Noop discards all notifications
type Noop struct{}

func (Noop) Send(ctx context.Context, text string) error { return nil }

// LogNotifier writes notifications to the application log. Used when no
// Telegram credentials are configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, text string) error {
	n.logger.Info("notification", slog.String("text", text))
	return nil
}

// Dispatcher wraps a Notifier with fire-and-forget semantics: Dispatch
// returns immediately, delivery happens in a goroutine with its own
// timeout, and errors are only logged.
type Dispatcher struct {
	notifier Notifier
	logger   *slog.Logger
	timeout  time.Duration
}

// NewDispatcher creates a Dispatcher. A nil notifier is replaced with Noop.
func NewDispatcher(notifier Notifier, logger *slog.Logger) *Dispatcher {
	if notifier == nil {
		notifier = Noop{}
	}
	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
		timeout:  10 * time.Second,
	}
}

// Dispatch sends text asynchronously. The caller's context is not used:
// the request finishing must not cancel the delivery.
func (d *Dispatcher) Dispatch(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.notifier.Send(ctx, text); err != nil {
			d.logger.Warn("notification delivery failed",
				slog.String("text", text),
				slog.String("error", err.Error()))
		}
	}()
}
