package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places reported for premium totals.
const MoneyPrecision = 2

// RoundMoney rounds an amount to MoneyPrecision places, half away from zero.
// Example: 67.945 returns 67.95, -0.005 returns -0.01
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
