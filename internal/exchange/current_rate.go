package exchange

import (
	"errors"
	"fmt"

	"github.com/kettari/balance-bot/internal/entity"
	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned when no usable rate is configured for the
// requested currency. A rate of exactly zero counts as unavailable, not as a
// zero-valued conversion.
var ErrRateUnavailable = errors.New("conversion rate unavailable")

// CurrentRate converts with a per-currency rate table.
type CurrentRate struct {
	rates map[entity.Currency]decimal.Decimal
}

func NewCurrentRate(rates map[entity.Currency]decimal.Decimal) *CurrentRate {
	table := make(map[entity.Currency]decimal.Decimal, len(rates))
	for currency, rate := range rates {
		table[currency] = rate
	}
	return &CurrentRate{rates: table}
}

func (s *CurrentRate) Convert(amount decimal.Decimal, currency entity.Currency) (decimal.Decimal, error) {
	rate, ok := s.rates[currency]
	if !ok || rate.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w for %s", ErrRateUnavailable, currency)
	}
	return amount.Mul(rate), nil
}
