package entity

import "github.com/shopspring/decimal"

// ConversionStrategy converts an amount in the given currency into the
// account's native currency.
type ConversionStrategy interface {
	Convert(amount decimal.Decimal, currency Currency) (decimal.Decimal, error)
}
