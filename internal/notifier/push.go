package notifier

import (
	"fmt"
	"log/slog"

	"github.com/kettari/balance-bot/internal/entity"
)

type Push struct {
	dispatcher Dispatcher
}

var push *Push

func PushObserver(dispatcher Dispatcher) *Push {
	if push == nil {
		push = &Push{
			dispatcher: dispatcher,
		}
	}
	return push
}

func (o *Push) Update(account *entity.Account) {
	slog.Debug("balance change event fired", "channel", "push", "account", account.Number())
	notification := fmt.Sprintf("Push notification: Your account balance has changed. Current balance: %s", account.Balance())
	if err := o.dispatcher.Send(notification); err != nil {
		slog.Error("failed to send push notification", "error", err)
	}
}
