// Package notify carries the transient user-facing notifications the
// store emits after every mutation. In the dashboard these were toasts;
// here they fan out to the log and, when configured, the event bus.
package notify

import "log/slog"

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	Log *slog.Logger
}

func (n *LogNotifier) Success(msg string) {
	n.Log.Info("notification", "level", "success", "message", msg)
}

func (n *LogNotifier) Error(msg string) {
	n.Log.Warn("notification", "level", "error", "message", msg)
}

// Multi fans a notification out to several sinks.
type Multi []Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}

// Discard drops notifications. Handy default so the store never has to
// nil-check its notifier.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
