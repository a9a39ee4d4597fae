package domain

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// DailyRateTable maps a coverage tier to its daily rate.
// It is copied on construction and never modified afterwards, so a single
// table can be shared by concurrent requests.
type DailyRateTable struct {
	rates map[int]decimal.Decimal
}

// NewDailyRateTable builds an immutable table from the given rates.
func NewDailyRateTable(rates map[int]decimal.Decimal) DailyRateTable {
	return DailyRateTable{rates: maps.Clone(rates)}
}

// Rate returns the daily rate configured for amount.
func (t DailyRateTable) Rate(amount int) (decimal.Decimal, bool) {
	rate, ok := t.rates[amount]
	return rate, ok
}

// Amounts returns the configured coverage tiers in ascending order.
func (t DailyRateTable) Amounts() []int {
	return slices.Sorted(maps.Keys(t.rates))
}

// Len reports the number of configured tiers.
func (t DailyRateTable) Len() int {
	return len(t.rates)
}
