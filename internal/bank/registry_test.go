package bank

import (
	"testing"

	"github.com/kettari/balance-bot/internal/entity"
)

func TestGetBank_ReturnsSameInstance(t *testing.T) {
	first := GetBank()
	second := GetBank()
	if first != second {
		t.Error("GetBank returned two different registries")
	}
}

func TestBank_CreateAndCloseAccount(t *testing.T) {
	registry := NewBank()
	client := entity.Client{FirstName: "John", LastName: "Doe"}

	before := len(registry.Accounts())
	account := registry.CreateAccount(client, entity.CurrencyUSD, nil)
	if account == nil {
		t.Fatal("CreateAccount returned nil")
	}
	if got := len(registry.Accounts()); got != before+1 {
		t.Fatalf("registry size = %d, want %d", got, before+1)
	}
	if registry.Accounts()[0] != account {
		t.Error("created account is not tracked by the registry")
	}

	registry.CloseAccount(account)
	if got := len(registry.Accounts()); got != before {
		t.Errorf("registry size after close = %d, want %d", got, before)
	}
}

func TestBank_CloseUnknownAccountIsNoop(t *testing.T) {
	registry := NewBank()
	other := NewBank()
	client := entity.Client{FirstName: "Jane", LastName: "Roe"}

	tracked := registry.CreateAccount(client, entity.CurrencyEUR, nil)
	stranger := other.CreateAccount(client, entity.CurrencyEUR, nil)

	registry.CloseAccount(stranger)
	if got := len(registry.Accounts()); got != 1 {
		t.Fatalf("registry size = %d, want 1", got)
	}
	if registry.Accounts()[0] != tracked {
		t.Error("tracked account was delisted by an unrelated close")
	}
}

func TestBank_AccountsPreserveCreationOrder(t *testing.T) {
	registry := NewBank()
	client := entity.Client{FirstName: "John", LastName: "Doe"}

	first := registry.CreateAccount(client, entity.CurrencyUSD, nil)
	second := registry.CreateAccount(client, entity.CurrencyEUR, nil)
	third := registry.CreateAccount(client, entity.CurrencyUAH, nil)

	accounts := registry.Accounts()
	if len(accounts) != 3 {
		t.Fatalf("registry size = %d, want 3", len(accounts))
	}
	if accounts[0] != first || accounts[1] != second || accounts[2] != third {
		t.Error("accounts are not in creation order")
	}
}

func TestBank_AccountsReturnsSnapshot(t *testing.T) {
	registry := NewBank()
	client := entity.Client{FirstName: "John", LastName: "Doe"}
	account := registry.CreateAccount(client, entity.CurrencyUSD, nil)

	snapshot := registry.Accounts()
	snapshot[0] = nil

	if registry.Accounts()[0] != account {
		t.Error("mutating the snapshot leaked into the registry")
	}
}
