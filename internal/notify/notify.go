// Package notify is the notification sink the dashboard pages report
// through. The presentation layer (toasts) lives outside this module; sinks
// here capture or log what would be shown.
package notify

import (
	"context"

	"github.com/angelmondragon/kitchenops/pkg/enums"
	"github.com/angelmondragon/kitchenops/pkg/logger"
)

// Notification is one message destined for the user.
type Notification struct {
	Title    string
	Message  string
	Severity enums.Severity
}

// Sink receives notifications emitted by domain operations.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

// LogSink writes notifications to the structured log. Destructive
// notifications land at warn level.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(ctx context.Context, n Notification) {
	ctx = s.log.WithFields(ctx, map[string]any{
		"title":    n.Title,
		"severity": n.Severity.String(),
	})
	if n.Severity == enums.SeverityDestructive {
		s.log.Warn(ctx, n.Message)
		return
	}
	s.log.Info(ctx, n.Message)
}

// Recorder retains every notification for later inspection.
type Recorder struct {
	notifications []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.notifications = append(r.notifications, n)
}

// Notifications returns everything recorded so far, oldest first.
func (r *Recorder) Notifications() []Notification {
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.notifications) == 0 {
		return Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

func (r *Recorder) Reset() {
	r.notifications = nil
}
