package entity

import "github.com/shopspring/decimal"

// MoneyDecimalPlaces is the precision applied at the presentation boundary
const MoneyDecimalPlaces = 2

// RoundMoney rounds d to MoneyDecimalPlaces, half away from zero.
// Internal accumulation must stay unrounded; call this only when presenting a value.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyDecimalPlaces)
}

// MoneyFloat converts d to a JSON-friendly float without rounding
func MoneyFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// PresentMoney rounds d and converts it for a response body
func PresentMoney(d decimal.Decimal) float64 {
	return MoneyFloat(RoundMoney(d))
}

// FormatMoney renders d with exactly two decimal places, e.g. "10.50"
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyDecimalPlaces)
}
