// Package notify implements the user-facing notification boundary. The
// portal renders these as toasts; here they land in the structured log,
// and the interface leaves room for a real messaging transport.
package notify

import (
	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/form"
)

// LogNotifier surfaces form outcomes through the structured log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify records one terminal form outcome.
func (n *LogNotifier) Notify(kind form.NotifyKind, message string) {
	switch kind {
	case form.NotifyError:
		n.logger.Warn("Form notification",
			zap.String("kind", string(kind)),
			zap.String("message", message))
	default:
		n.logger.Info("Form notification",
			zap.String("kind", string(kind)),
			zap.String("message", message))
	}
}
