package apperrors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDomain indicates that a validated request could not be priced.
var ErrDomain = errors.New("calculation error")

// MissingFieldsError is returned when required request keys are absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool { return target == ErrValidation }

// MalformedInputError is returned when a field cannot be coerced to its expected type.
type MalformedInputError struct {
	Field  string
	Detail string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("Invalid request data: %s: %s", e.Field, e.Detail)
}

func (e *MalformedInputError) Is(target error) bool { return target == ErrValidation }

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UnsupportedInsuranceAmountError is returned when no daily rate exists for an amount.
type UnsupportedInsuranceAmountError struct {
	Amount int
}

func (e *UnsupportedInsuranceAmountError) Error() string {
	return fmt.Sprintf("Unsupported insurance amount: %d", e.Amount)
}

func (e *UnsupportedInsuranceAmountError) Is(target error) bool { return target == ErrDomain }

// UnsupportedCurrencyError is returned when a rate source has no rate for a currency.
type UnsupportedCurrencyError struct {
	Currency string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("Unsupported currency: %s", e.Currency)
}

func (e *UnsupportedCurrencyError) Is(target error) bool { return target == ErrDomain }

// InvalidDateRangeError is returned when the end date precedes the start date.
type InvalidDateRangeError struct {
	StartDate string
	EndDate   string
}

func (e *InvalidDateRangeError) Error() string {
	return "End date must be after start date"
}

func (e *InvalidDateRangeError) Is(target error) bool { return target == ErrDomain }
