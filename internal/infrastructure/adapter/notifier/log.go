package notifier

import (
	"context"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
)

// LogNotifier only records notifications. Used when no broker is configured.
type LogNotifier struct {
	logger coreport.Logger
}

var _ provider.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a log-only notifier
func NewLogNotifier(logger coreport.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification
func (l *LogNotifier) Notify(_ context.Context, n provider.Notification) error {
	l.logger.Info("Notification", map[string]any{
		"user_id":        n.UserID,
		"event":          n.Event,
		"title":          n.Title,
		"reference_code": n.ReferenceCode,
	})
	return nil
}

// Broadcast logs the broadcast
func (l *LogNotifier) Broadcast(_ context.Context, title, _ string) error {
	l.logger.Info("Broadcast notification", map[string]any{"title": title})
	return nil
}
