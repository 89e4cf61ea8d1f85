package exchange

import (
	"fmt"
	"strings"

	"github.com/kettari/balance-bot/internal/entity"
	"github.com/shopspring/decimal"
)

// ParseRateTable parses a rate list string
//   - spec is a string "code1:rate1;code2:rate2", e.g. "USD:1.1;EUR:0.9;UAH:38"
func ParseRateTable(spec string) (map[entity.Currency]decimal.Decimal, error) {
	table := make(map[entity.Currency]decimal.Decimal)
	for _, pair := range strings.Split(spec, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed rate pair %q", pair)
		}
		currency, err := entity.ParseCurrency(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, err
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed rate for %s: %w", currency, err)
		}
		table[currency] = rate
	}
	return table, nil
}
