package exchange

import (
	"github.com/kettari/balance-bot/internal/entity"
	"github.com/shopspring/decimal"
)

// FixedRate multiplies by a single rate fixed at construction. The currency
// argument is accepted and ignored.
type FixedRate struct {
	rate decimal.Decimal
}

func NewFixedRate(rate decimal.Decimal) *FixedRate {
	return &FixedRate{rate: rate}
}

func (s *FixedRate) Convert(amount decimal.Decimal, _ entity.Currency) (decimal.Decimal, error) {
	return amount.Mul(s.rate), nil
}
