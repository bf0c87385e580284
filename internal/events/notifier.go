package events

import (
	"context"
	"log/slog"
)

// Notifier publishes each notification as an event. Publish failures are
// logged and swallowed: the mutation that produced the notification has
// already happened and must not be failed retroactively.
type Notifier struct {
	Producer *Producer
	Log      *slog.Logger
}

func (n *Notifier) Success(msg string) {
	n.publish("success", msg)
}

func (n *Notifier) Error(msg string) {
	n.publish("error", msg)
}

func (n *Notifier) publish(level, msg string) {
	event := map[string]any{
		"type":    "notification",
		"level":   level,
		"message": msg,
	}
	if err := n.Producer.PublishEvent(context.Background(), level, event); err != nil {
		n.Log.Error("event publish error", "error", err)
	}
}
