package entity

import "fmt"

// Currency is the code of a supported currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyUAH Currency = "UAH"
)

func SupportedCurrencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyUAH}
}

// ParseCurrency maps a code to a supported currency.
func ParseCurrency(code string) (Currency, error) {
	for _, currency := range SupportedCurrencies() {
		if string(currency) == code {
			return currency, nil
		}
	}
	return "", fmt.Errorf("unsupported currency %q", code)
}
