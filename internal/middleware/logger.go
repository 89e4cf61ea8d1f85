package middle

import (
	"log/slog"

	"github.com/kettari/balance-bot/internal/notifier"
)

// Logger wraps a dispatcher and logs every outgoing notification.
func Logger(logger *slog.Logger, next notifier.Dispatcher) notifier.Dispatcher {
	return &loggingDispatcher{logger: logger, next: next}
}

type loggingDispatcher struct {
	logger *slog.Logger
	next   notifier.Dispatcher
}

func (d *loggingDispatcher) Send(notification string) error {
	d.logger.Debug("dispatching notification", "notification", notification)
	return d.next.Send(notification)
}
