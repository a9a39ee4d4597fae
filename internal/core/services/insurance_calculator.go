package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/travel_insurance_app/internal/apperrors"
	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/travel_insurance_app/internal/utils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const secondsPerDay = 24 * 60 * 60

// DaysCount returns the number of days covered by a policy, counting both
// the start and the end date. A policy starting and ending on the same day
// covers one day.
func DaysCount(start, end time.Time) (int, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return 0, &apperrors.InvalidDateRangeError{
			StartDate: start.Format(domain.DateLayout),
			EndDate:   end.Format(domain.DateLayout),
		}
	}
	// Unix seconds do not saturate like time.Duration over long ranges
	return int((end.Unix()-start.Unix())/secondsPerDay) + 1, nil
}

// CalculateTotal multiplies the daily rate by the number of days without rounding.
func CalculateTotal(dailyRate decimal.Decimal, days int) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(days)))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// InsuranceCalculator prices validated requests against a daily rate table
// and an exchange rate provider. It holds no mutable state.
type InsuranceCalculator struct {
	BaseService
	dailyRates   domain.DailyRateTable
	rateProvider portssvc.ExchangeRateProvider
}

// NewInsuranceCalculator creates a new InsuranceCalculator.
func NewInsuranceCalculator(dailyRates domain.DailyRateTable, rateProvider portssvc.ExchangeRateProvider) *InsuranceCalculator {
	return &InsuranceCalculator{
		dailyRates:   dailyRates,
		rateProvider: rateProvider,
	}
}

// DailyRate returns the daily rate for a coverage tier.
func (c *InsuranceCalculator) DailyRate(insuranceAmount int) (decimal.Decimal, error) {
	rate, ok := c.dailyRates.Rate(insuranceAmount)
	if !ok {
		return decimal.Zero, &apperrors.UnsupportedInsuranceAmountError{Amount: insuranceAmount}
	}
	return rate, nil
}

// DailyRates returns the table the calculator prices against.
func (c *InsuranceCalculator) DailyRates() domain.DailyRateTable {
	return c.dailyRates
}

// Calculate computes the premium for req. Only the two totals are rounded;
// the daily rate and exchange rate are reported as configured.
func (c *InsuranceCalculator) Calculate(ctx context.Context, req domain.InsuranceRequest) (*domain.InsuranceResult, error) {
	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.WithStack(&apperrors.MalformedInputError{Field: "startDate", Detail: err.Error()})
	}
	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.WithStack(&apperrors.MalformedInputError{Field: "endDate", Detail: err.Error()})
	}

	daysCount, err := DaysCount(startDate, endDate)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	dailyRate, err := c.DailyRate(req.InsuranceAmount)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	totalInCurrency := CalculateTotal(dailyRate, daysCount)

	exchangeRate, err := c.rateProvider.GetExchangeRate(ctx, req.Currency)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDomain) {
			c.LogError(ctx, err, "Failed to get exchange rate", slog.String("currency", req.Currency))
		}
		return nil, errors.WithStack(err)
	}
	totalInRubles := totalInCurrency.Mul(exchangeRate)

	result := &domain.InsuranceResult{
		TotalInCurrency: utils.RoundMoney(totalInCurrency),
		TotalInRubles:   utils.RoundMoney(totalInRubles),
		DaysCount:       daysCount,
		DailyRate:       dailyRate,
		ExchangeRate:    exchangeRate,
		InsuranceAmount: req.InsuranceAmount,
	}

	c.LogDebug(ctx, "Premium calculated",
		slog.Int("insurance_amount", req.InsuranceAmount),
		slog.String("currency", req.Currency),
		slog.Int("days_count", daysCount),
		slog.String("total_in_currency", utils.FormatWithPrecision(result.TotalInCurrency, utils.MoneyPrecision)),
		slog.String("total_in_rubles", utils.FormatWithPrecision(result.TotalInRubles, utils.MoneyPrecision)),
	)

	return result, nil
}

var (
	_ portssvc.InsuranceCalculatorSvc = (*InsuranceCalculator)(nil)
	_ portssvc.TariffReaderSvc        = (*InsuranceCalculator)(nil)
)
