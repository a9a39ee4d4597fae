package rates

import (
	"context"
	"maps"
	"slices"

	"github.com/SscSPs/travel_insurance_app/internal/apperrors"
	portssvc "github.com/SscSPs/travel_insurance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// FixedProvider serves exchange rates from a table configured at startup.
type FixedProvider struct {
	rates map[string]decimal.Decimal
}

// NewFixedProvider copies rates into a new provider. An empty table is
// valid; every lookup against it fails.
func NewFixedProvider(rates map[string]decimal.Decimal) *FixedProvider {
	return &FixedProvider{rates: maps.Clone(rates)}
}

func (p *FixedProvider) GetExchangeRate(_ context.Context, currency string) (decimal.Decimal, error) {
	rate, ok := p.rates[currency]
	if !ok {
		return decimal.Zero, &apperrors.UnsupportedCurrencyError{Currency: currency}
	}
	return rate, nil
}

// Currencies returns the configured currency codes in ascending order.
func (p *FixedProvider) Currencies() []string {
	return slices.Sorted(maps.Keys(p.rates))
}

var _ portssvc.ExchangeRateProvider = (*FixedProvider)(nil)
