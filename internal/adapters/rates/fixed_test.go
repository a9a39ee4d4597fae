package rates_test

import (
	"context"
	"testing"

	"github.com/SscSPs/travel_insurance_app/internal/adapters/rates"
	"github.com/SscSPs/travel_insurance_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("75.5"),
		"EUR": decimal.RequireFromString("80.0"),
	}
}

func TestFixedProvider_ValidCurrency(t *testing.T) {
	provider := rates.NewFixedProvider(testRates())

	usd, err := provider.GetExchangeRate(context.Background(), "USD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("75.5").Equal(usd))

	eur, err := provider.GetExchangeRate(context.Background(), "EUR")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("80").Equal(eur))
}

func TestFixedProvider_InvalidCurrency(t *testing.T) {
	provider := rates.NewFixedProvider(testRates())

	_, err := provider.GetExchangeRate(context.Background(), "GBP")

	require.EqualError(t, err, "Unsupported currency: GBP")
	var currencyErr *apperrors.UnsupportedCurrencyError
	require.ErrorAs(t, err, &currencyErr)
	assert.Equal(t, "GBP", currencyErr.Currency)
}

func TestFixedProvider_EmptyRates(t *testing.T) {
	provider := rates.NewFixedProvider(map[string]decimal.Decimal{})
	require.NotNil(t, provider)
	assert.Empty(t, provider.Currencies())

	_, err := provider.GetExchangeRate(context.Background(), "USD")

	assert.EqualError(t, err, "Unsupported currency: USD")
}

func TestFixedProvider_CopiesInput(t *testing.T) {
	input := testRates()
	provider := rates.NewFixedProvider(input)

	input["USD"] = decimal.NewFromInt(1)
	delete(input, "EUR")

	usd, err := provider.GetExchangeRate(context.Background(), "USD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("75.5").Equal(usd))
	assert.Equal(t, []string{"EUR", "USD"}, provider.Currencies())
}
