package entity

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds a client's balance in a single currency. The balance changes
// only through Deposit and Withdraw, and every change is pushed to the
// attached observers in attachment order.
type Account struct {
	mu        sync.Mutex
	number    string
	currency  Currency
	holder    Client
	balance   decimal.Decimal
	strategy  ConversionStrategy
	observers []Observer
}

var _ subject = (*Account)(nil)

func NewAccount(holder Client, currency Currency, strategy ConversionStrategy) *Account {
	return &Account{
		number:   uuid.NewString(),
		currency: currency,
		holder:   holder,
		balance:  decimal.Zero,
		strategy: strategy,
	}
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Currency() Currency {
	return a.currency
}

func (a *Account) Holder() Client {
	return a.holder
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// SetConversionStrategy replaces the active strategy. The old strategy is
// discarded, not mutated.
func (a *Account) SetConversionStrategy(strategy ConversionStrategy) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.strategy = strategy
}

// Attach registers the observer unless it is already attached.
func (a *Account) Attach(observer Observer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, attached := range a.observers {
		if attached == observer {
			return
		}
	}
	a.observers = append(a.observers, observer)
}

// Detach removes the observer; detaching an absent observer is a no-op.
func (a *Account) Detach(observer Observer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for k, attached := range a.observers {
		if attached == observer {
			a.observers = append(a.observers[:k], a.observers[k+1:]...)
			return
		}
	}
}

// Deposit adds the amount to the balance. The amount's sign is not checked,
// a negative deposit is permitted.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.mu.Lock()
	a.balance = a.balance.Add(amount)
	slog.Debug("deposit posted", "account", a.number, "amount", amount, "balance", a.balance)
	a.mu.Unlock()

	a.notifyAll()
}

// Withdraw converts the amount from the given currency into the account
// currency with the active strategy and subtracts the result. The balance is
// allowed to go negative. A conversion failure propagates to the caller,
// leaves the balance untouched and fires no notification.
func (a *Account) Withdraw(amount decimal.Decimal, currency Currency) error {
	a.mu.Lock()
	converted, err := a.strategy.Convert(amount, currency)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.balance = a.balance.Sub(converted)
	slog.Debug("withdrawal posted", "account", a.number, "amount", converted, "balance", a.balance)
	a.mu.Unlock()

	a.notifyAll()
	return nil
}

func (a *Account) notifyAll() {
	a.mu.Lock()
	observers := make([]Observer, len(a.observers))
	copy(observers, a.observers)
	a.mu.Unlock()

	for _, observer := range observers {
		observer.Update(a)
	}
}
