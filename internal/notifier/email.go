package notifier

import (
	"fmt"
	"log/slog"

	"github.com/kettari/balance-bot/internal/entity"
)

type Email struct {
	dispatcher Dispatcher
}

var email *Email

func EmailObserver(dispatcher Dispatcher) *Email {
	if email == nil {
		email = &Email{
			dispatcher: dispatcher,
		}
	}
	return email
}

func (o *Email) Update(account *entity.Account) {
	slog.Debug("balance change event fired", "channel", "email", "account", account.Number())
	notification := fmt.Sprintf("Email notification: Your account balance has changed. Current balance: %s", account.Balance())
	if err := o.dispatcher.Send(notification); err != nil {
		slog.Error("failed to send email notification", "error", err)
	}
}
