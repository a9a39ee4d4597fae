package services

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/SscSPs/travel_insurance_app/internal/apperrors"
	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_insurance_app/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// requiredFields lists the request keys in the order they are reported when missing.
var requiredFields = []string{"insuranceAmount", "startDate", "endDate", "currency"}

// calculateInsuranceInput is the coerced, not yet validated request.
type calculateInsuranceInput struct {
	InsuranceAmount int    `json:"insuranceAmount" validate:"oneof=30000 50000"`
	StartDate       string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"endDate" validate:"required,datetime=2006-01-02,date_after=StartDate"`
	Currency        string `json:"currency" validate:"required,len=3,oneof=EUR USD"`
}

// RequestValidator validates raw calculation requests.
// The underlying validator caches struct metadata and is safe for concurrent use.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new RequestValidator.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("date_after", dateAfterField)
	return &RequestValidator{validate: v}
}

// Validate checks field presence, coerces types and applies the domain rules.
func (rv *RequestValidator) Validate(input map[string]any) (domain.InsuranceRequest, error) {
	var missing []string
	for _, field := range requiredFields {
		// null counts as absent
		if value, ok := input[field]; !ok || value == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return domain.InsuranceRequest{}, &apperrors.MissingFieldsError{Fields: missing}
	}

	in, err := coerceInput(input)
	if err != nil {
		return domain.InsuranceRequest{}, err
	}

	if err := rv.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.InsuranceRequest{}, fmt.Errorf("validate request: %w", err)
		}
		messages := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			// the validator stops at the first failing tag of each field
			if _, seen := messages[fe.Field()]; !seen {
				messages[fe.Field()] = fieldErrorMessage(fe, in)
			}
		}
		return domain.InsuranceRequest{}, &apperrors.ValidationError{Fields: messages}
	}

	return domain.InsuranceRequest{
		InsuranceAmount: in.InsuranceAmount,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Currency:        in.Currency,
	}, nil
}

func coerceInput(input map[string]any) (calculateInsuranceInput, error) {
	var in calculateInsuranceInput
	var err error

	if in.InsuranceAmount, err = toAmount(input["insuranceAmount"]); err != nil {
		return in, &apperrors.MalformedInputError{Field: "insuranceAmount", Detail: "must be an integer"}
	}
	if in.StartDate, err = cast.ToStringE(input["startDate"]); err != nil {
		return in, &apperrors.MalformedInputError{Field: "startDate", Detail: "must be a string"}
	}
	if in.EndDate, err = cast.ToStringE(input["endDate"]); err != nil {
		return in, &apperrors.MalformedInputError{Field: "endDate", Detail: "must be a string"}
	}
	if in.Currency, err = cast.ToStringE(input["currency"]); err != nil {
		return in, &apperrors.MalformedInputError{Field: "currency", Detail: "must be a string"}
	}
	return in, nil
}

// toAmount reads numeric strings as base-10 integers, so leading zeros are
// ignored and hex or octal prefixes are rejected. Other values go through cast.
func toAmount(v any) (int, error) {
	if s, ok := v.(string); ok {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	return cast.ToIntE(v)
}

// dateAfterField reports whether the field holds a date strictly later than
// the sibling field named by the tag parameter. An unparsable sibling is
// reported on its own field, so the comparison passes.
func dateAfterField(fl validator.FieldLevel) bool {
	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}
	start, err := domain.ParseDate(other.String())
	if err != nil {
		return true
	}
	end, err := domain.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return end.After(start)
}

func fieldErrorMessage(fe validator.FieldError, in calculateInsuranceInput) string {
	switch fe.Tag() {
	case "required":
		return "This value should not be blank."
	case "datetime":
		return "This value is not a valid date."
	case "date_after":
		return fmt.Sprintf("This value should be greater than %q.", in.StartDate)
	case "len":
		return fmt.Sprintf("This value should have exactly %s characters.", fe.Param())
	case "oneof":
		switch fe.Field() {
		case "insuranceAmount":
			return "Insurance amount must be either 30000 or 50000"
		case "currency":
			return "Currency must be either EUR or USD"
		}
		return "The value you selected is not a valid choice."
	}
	return fmt.Sprintf("This value failed the %q rule.", fe.Tag())
}

var _ portssvc.InsuranceRequestValidatorSvc = (*RequestValidator)(nil)
