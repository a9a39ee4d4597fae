package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted calendar date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ReferenceCurrency is the local currency every premium is converted into.
const ReferenceCurrency = "RUB"

// SupportedInsuranceAmounts lists the coverage tiers that can be priced.
var SupportedInsuranceAmounts = []int{30000, 50000}

// SupportedCurrencies lists the policy currencies accepted by the API.
var SupportedCurrencies = []string{"EUR", "USD"}

// InsuranceRequest is a validated premium calculation request.
// It is only built by the request validator and is passed around by value.
type InsuranceRequest struct {
	InsuranceAmount int    `json:"insuranceAmount"`
	StartDate       string `json:"startDate"` // YYYY-MM-DD
	EndDate         string `json:"endDate"`   // YYYY-MM-DD
	Currency        string `json:"currency"`  // e.g. "EUR"
}

// InsuranceResult is the outcome of a single premium calculation.
type InsuranceResult struct {
	TotalInCurrency decimal.Decimal `json:"totalInCurrency"` // rounded to 2 places
	TotalInRubles   decimal.Decimal `json:"totalInRubles"`   // rounded to 2 places
	DaysCount       int             `json:"daysCount"`
	DailyRate       decimal.Decimal `json:"dailyRate"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	InsuranceAmount int             `json:"insuranceAmount"`
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}
