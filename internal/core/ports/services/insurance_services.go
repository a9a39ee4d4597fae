package services

import (
	"context"

	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InsuranceRequestValidatorSvc turns a decoded JSON object into a validated request.
type InsuranceRequestValidatorSvc interface {
	// Validate returns a MissingFieldsError, MalformedInputError or ValidationError
	// from the apperrors package when the input is not acceptable.
	Validate(input map[string]any) (domain.InsuranceRequest, error)
}

// InsuranceCalculatorSvc prices a validated request.
type InsuranceCalculatorSvc interface {
	Calculate(ctx context.Context, req domain.InsuranceRequest) (*domain.InsuranceResult, error)
}

// TariffReaderSvc exposes the configured pricing tables.
type TariffReaderSvc interface {
	// DailyRates returns the configured coverage tiers and their daily rates.
	DailyRates() domain.DailyRateTable
}

// ExchangeRateProvider maps a currency code to its rate in the reference currency.
// Implementations must be safe for concurrent use.
type ExchangeRateProvider interface {
	// GetExchangeRate returns an apperrors.UnsupportedCurrencyError when no rate is known.
	GetExchangeRate(ctx context.Context, currency string) (decimal.Decimal, error)
}
