package bank

import (
	"log/slog"
	"sync"

	"github.com/kettari/balance-bot/internal/entity"
)

// Bank is the registry of open accounts.
type Bank struct {
	mu       sync.Mutex
	accounts []*entity.Account
}

var bank *Bank

// GetBank returns the single process-wide registry.
func GetBank() *Bank {
	if bank == nil {
		bank = NewBank()
	}
	return bank
}

// NewBank builds a standalone registry. Tests use this instead of GetBank to
// avoid process-wide state.
func NewBank() *Bank {
	return &Bank{}
}

// CreateAccount opens an account for the client and tracks it.
func (b *Bank) CreateAccount(client entity.Client, currency entity.Currency, strategy entity.ConversionStrategy) *entity.Account {
	account := entity.NewAccount(client, currency, strategy)
	b.mu.Lock()
	b.accounts = append(b.accounts, account)
	b.mu.Unlock()
	slog.Info("account created", "account", account.Number(), "holder", client.FullName(), "currency", currency)
	return account
}

// CloseAccount delists the account; closing an unknown account is a no-op.
// The account object itself stays usable, it is only no longer tracked.
func (b *Bank) CloseAccount(account *entity.Account) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, tracked := range b.accounts {
		if tracked == account {
			b.accounts = append(b.accounts[:k], b.accounts[k+1:]...)
			slog.Info("account closed", "account", account.Number())
			return
		}
	}
}

// Accounts returns a snapshot of the live accounts in creation order.
func (b *Bank) Accounts() []*entity.Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*entity.Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}
