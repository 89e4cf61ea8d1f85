package console

import (
	"log/slog"
	"os"

	"github.com/kettari/balance-bot/internal/bank"
	"github.com/kettari/balance-bot/internal/config"
	"github.com/kettari/balance-bot/internal/entity"
	"github.com/kettari/balance-bot/internal/exchange"
	middle "github.com/kettari/balance-bot/internal/middleware"
	"github.com/kettari/balance-bot/internal/notifier"
	"github.com/shopspring/decimal"
)

type AccountDemoCommand struct {
}

func NewAccountDemoCommand() *AccountDemoCommand {
	cmd := AccountDemoCommand{}
	return &cmd
}

func (cmd *AccountDemoCommand) Name() string {
	return "account:demo"
}

func (cmd *AccountDemoCommand) Description() string {
	return "runs the balance notification scenario on a demo account"
}

func (cmd *AccountDemoCommand) Run() error {
	slog.Info("running the demo scenario")
	conf := config.GetConfig()

	rates, err := exchange.ParseRateTable(conf.Rates)
	if err != nil {
		return err
	}
	fixedRate, err := decimal.NewFromString(conf.FixedRate)
	if err != nil {
		return err
	}
	currency, err := entity.ParseCurrency(conf.DefaultCurrency)
	if err != nil {
		return err
	}

	// Add middleware
	dispatcher := middle.Logger(slog.Default(), notifier.CreateConsole(os.Stdout))

	if err = runScenario(bank.GetBank(), dispatcher, currency, rates, fixedRate); err != nil {
		return err
	}

	slog.Info("demo scenario finished")
	return nil
}

// runScenario opens an account watched over three channels, posts a deposit,
// narrows the channels down to SMS, swaps the conversion strategy and posts a
// withdrawal in a foreign currency.
func runScenario(registry *bank.Bank, dispatcher notifier.Dispatcher, currency entity.Currency,
	rates map[entity.Currency]decimal.Decimal, fixedRate decimal.Decimal) error {
	client := entity.Client{FirstName: "John", LastName: "Doe"}
	account := registry.CreateAccount(client, currency, exchange.NewCurrentRate(rates))

	account.Attach(notifier.SMSObserver(dispatcher))
	account.Attach(notifier.EmailObserver(dispatcher))
	account.Attach(notifier.PushObserver(dispatcher))

	account.Deposit(decimal.NewFromInt(1000))

	account.Detach(notifier.EmailObserver(dispatcher))
	account.Detach(notifier.PushObserver(dispatcher))

	account.SetConversionStrategy(exchange.NewFixedRate(fixedRate))
	if err := account.Withdraw(decimal.NewFromInt(100), entity.CurrencyUAH); err != nil {
		return err
	}

	slog.Info("scenario account settled", "account", account.Number(),
		"holder", account.Holder().FullName(), "balance", account.Balance())

	registry.CloseAccount(account)
	return nil
}
