package console

import (
	"testing"

	"github.com/kettari/balance-bot/internal/bank"
	"github.com/kettari/balance-bot/internal/entity"
	"github.com/shopspring/decimal"
)

type memoryDispatcher struct {
	lines []string
}

func (d *memoryDispatcher) Send(notification string) error {
	d.lines = append(d.lines, notification)
	return nil
}

func TestRunScenario(t *testing.T) {
	dispatcher := &memoryDispatcher{}
	registry := bank.NewBank()
	rates := map[entity.Currency]decimal.Decimal{
		entity.CurrencyUSD: decimal.RequireFromString("1.1"),
		entity.CurrencyEUR: decimal.RequireFromString("0.9"),
		entity.CurrencyUAH: decimal.NewFromInt(38),
	}

	err := runScenario(registry, dispatcher, entity.CurrencyUSD, rates, decimal.RequireFromString("0.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three channels report the deposit in attach order, then only SMS is
	// left for the fixed-rate withdrawal (100 * 0.5 = 50 off the balance).
	want := []string{
		"SMS notification: Your account balance has changed. Current balance: 1000",
		"Email notification: Your account balance has changed. Current balance: 1000",
		"Push notification: Your account balance has changed. Current balance: 1000",
		"SMS notification: Your account balance has changed. Current balance: 950",
	}
	if len(dispatcher.lines) != len(want) {
		t.Fatalf("got %d notifications, want %d: %v", len(dispatcher.lines), len(want), dispatcher.lines)
	}
	for k := range want {
		if dispatcher.lines[k] != want[k] {
			t.Errorf("notification[%d] = %q, want %q", k, dispatcher.lines[k], want[k])
		}
	}

	if got := len(registry.Accounts()); got != 0 {
		t.Errorf("registry size after scenario = %d, want 0 (demo account is closed)", got)
	}
}
