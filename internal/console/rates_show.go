package console

import (
	"fmt"
	"log/slog"

	"github.com/kettari/balance-bot/internal/config"
	"github.com/kettari/balance-bot/internal/entity"
	"github.com/kettari/balance-bot/internal/exchange"
)

type RatesShowCommand struct {
}

func NewRatesShowCommand() *RatesShowCommand {
	cmd := RatesShowCommand{}
	return &cmd
}

func (cmd *RatesShowCommand) Name() string {
	return "rates:show"
}

func (cmd *RatesShowCommand) Description() string {
	return "prints the configured conversion rate table"
}

func (cmd *RatesShowCommand) Run() error {
	slog.Info("reporting configured rates")
	conf := config.GetConfig()

	rates, err := exchange.ParseRateTable(conf.Rates)
	if err != nil {
		return err
	}

	fmt.Println("Configured conversion rates:")
	for _, currency := range entity.SupportedCurrencies() {
		rate, ok := rates[currency]
		if !ok || rate.IsZero() {
			fmt.Printf("\t%s - rate unavailable\n", currency)
			continue
		}
		fmt.Printf("\t%s - %s\n", currency, rate)
	}
	fmt.Printf("Fixed fallback rate: %s\n", conf.FixedRate)

	return nil
}
