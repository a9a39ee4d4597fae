package dto

import (
	"strconv"

	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
)

// CalculateInsuranceRequest documents the calculation request body.
// The handler decodes the body into a generic map so that presence and type
// problems can be reported per field; this type exists for the API docs.
type CalculateInsuranceRequest struct {
	InsuranceAmount int    `json:"insuranceAmount" example:"30000"`
	StartDate       string `json:"startDate" example:"2025-01-01"`
	EndDate         string `json:"endDate" example:"2025-01-10"`
	Currency        string `json:"currency" example:"EUR"`
}

// InsuranceCalculationData is the payload of a successful calculation.
type InsuranceCalculationData struct {
	TotalInCurrency float64 `json:"totalInCurrency" example:"6"`
	TotalInRubles   float64 `json:"totalInRubles" example:"480"`
	DaysCount       int     `json:"daysCount" example:"10"`
	DailyRate       float64 `json:"dailyRate" example:"0.6"`
	ExchangeRate    float64 `json:"exchangeRate" example:"80"`
	InsuranceAmount int     `json:"insuranceAmount" example:"30000"`
}

// CalculateInsuranceResponse is the success envelope.
type CalculateInsuranceResponse struct {
	Success bool                     `json:"success" example:"true"`
	Data    InsuranceCalculationData `json:"data"`
}

// ErrorResponse is the envelope for request-level and server errors.
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error"`
	Exception string `json:"exception,omitempty"`
	Trace     string `json:"trace,omitempty"`
}

// FieldErrorsResponse is the envelope for per-field validation errors.
type FieldErrorsResponse struct {
	Success bool              `json:"success" example:"false"`
	Errors  map[string]string `json:"errors"`
}

// TariffsData describes the configured pricing tables.
type TariffsData struct {
	DailyRates        map[string]float64 `json:"dailyRates"`
	Currencies        []string           `json:"currencies"`
	ReferenceCurrency string             `json:"referenceCurrency" example:"RUB"`
}

// TariffsResponse is the envelope for the tariffs endpoint.
type TariffsResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    TariffsData `json:"data"`
}

// ToCalculateInsuranceResponse converts a domain.InsuranceResult to its response envelope.
// Decimal values are emitted as JSON numbers.
func ToCalculateInsuranceResponse(result *domain.InsuranceResult) CalculateInsuranceResponse {
	return CalculateInsuranceResponse{
		Success: true,
		Data: InsuranceCalculationData{
			TotalInCurrency: result.TotalInCurrency.InexactFloat64(),
			TotalInRubles:   result.TotalInRubles.InexactFloat64(),
			DaysCount:       result.DaysCount,
			DailyRate:       result.DailyRate.InexactFloat64(),
			ExchangeRate:    result.ExchangeRate.InexactFloat64(),
			InsuranceAmount: result.InsuranceAmount,
		},
	}
}

// ToTariffsResponse converts the daily rate table to its response envelope.
func ToTariffsResponse(table domain.DailyRateTable, currencies []string) TariffsResponse {
	rates := make(map[string]float64, table.Len())
	for _, amount := range table.Amounts() {
		rate, _ := table.Rate(amount)
		rates[strconv.Itoa(amount)] = rate.InexactFloat64()
	}
	return TariffsResponse{
		Success: true,
		Data: TariffsData{
			DailyRates:        rates,
			Currencies:        currencies,
			ReferenceCurrency: domain.ReferenceCurrency,
		},
	}
}
