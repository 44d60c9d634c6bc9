// Package service contains the business logic for the craft service.
package service

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyPrinter renders grouped integers with the pt-BR convention
// (period as thousands separator), matching the game community the
// service was built for.
var currencyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a money-like value for display: the value is
// floored and grouped with thousands separators, no decimal places and
// no currency symbol. Non-finite input renders as "0".
//
// Examples: 12345 -> "12.345", 1234.9 -> "1.234".
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	return currencyPrinter.Sprintf("%d", int64(math.Floor(value)))
}

// FormatQuantity renders a count-like value with the same grouping as
// FormatCurrency. Kept separate so call sites say what they format.
func FormatQuantity(value int) string {
	return currencyPrinter.Sprintf("%d", value)
}

// FormatCurrencyValue formats loosely typed values, as decoded from JSON
// or assistant arguments. Anything that is not a number renders as "0".
func FormatCurrencyValue(value any) string {
	switch v := value.(type) {
	case float64:
		return FormatCurrency(v)
	case float32:
		return FormatCurrency(float64(v))
	case int:
		return FormatCurrency(float64(v))
	case int32:
		return FormatCurrency(float64(v))
	case int64:
		return FormatCurrency(float64(v))
	default:
		return "0"
	}
}
