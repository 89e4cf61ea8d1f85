package notifier

import (
	"fmt"
	"log/slog"

	"github.com/kettari/balance-bot/internal/entity"
)

type SMS struct {
	dispatcher Dispatcher
}

var sms *SMS

func SMSObserver(dispatcher Dispatcher) *SMS {
	if sms == nil {
		sms = &SMS{
			dispatcher: dispatcher,
		}
	}
	return sms
}

func (o *SMS) Update(account *entity.Account) {
	slog.Debug("balance change event fired", "channel", "sms", "account", account.Number())
	notification := fmt.Sprintf("SMS notification: Your account balance has changed. Current balance: %s", account.Balance())
	if err := o.dispatcher.Send(notification); err != nil {
		slog.Error("failed to send sms notification", "error", err)
	}
}
