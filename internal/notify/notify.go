package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Alert is a fire-and-forget user notification.
type Alert struct {
	Summary string
	Body    string
}

// CountdownFinished is sent when a countdown reaches zero.
var CountdownFinished = Alert{
	Summary: "TimeMann Alert",
	Body:    "Countdown finished!",
}

// Notifier delivers alerts. Delivery is best-effort; callers log and ignore
// errors.
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, a Alert) error

func (f Func) Notify(ctx context.Context, a Alert) error {
	return f(ctx, a)
}

// Nop discards alerts.
var Nop Notifier = Func(func(context.Context, Alert) error { return nil })

// All delivers to every notifier and joins their errors.
func All(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, a Alert) error {
		var errs []error
		for _, n := range notifiers {
			if err := n.Notify(ctx, a); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// First tries each notifier in order and stops at the first success.
func First(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, a Alert) error {
		var errs []error
		for _, n := range notifiers {
			err := n.Notify(ctx, a)
			if err == nil {
				return nil
			}
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})
}

// Async returns a Notifier that delivers in its own goroutine under timeout
// and always returns nil. Failures are logged at warn.
func Async(n Notifier, timeout time.Duration, logger *slog.Logger) Notifier {
	return Func(func(_ context.Context, a Alert) error {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := n.Notify(ctx, a); err != nil {
				logger.Warn("notification failed", "summary", a.Summary, "error", err)
			}
		}()
		return nil
	})
}
