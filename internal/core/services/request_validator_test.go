package services_test

import (
	"sync"
	"testing"

	"github.com/SscSPs/travel_insurance_app/internal/apperrors"
	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
	"github.com/SscSPs/travel_insurance_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() map[string]any {
	return map[string]any{
		"insuranceAmount": float64(30000),
		"startDate":       "2025-01-01",
		"endDate":         "2025-01-10",
		"currency":        "EUR",
	}
}

func TestRequestValidator_Valid(t *testing.T) {
	v := services.NewRequestValidator()

	req, err := v.Validate(validInput())

	require.NoError(t, err)
	assert.Equal(t, domain.InsuranceRequest{
		InsuranceAmount: 30000,
		StartDate:       "2025-01-01",
		EndDate:         "2025-01-10",
		Currency:        "EUR",
	}, req)
}

func TestRequestValidator_CoercesLooseTypes(t *testing.T) {
	v := services.NewRequestValidator()
	input := validInput()
	input["insuranceAmount"] = "50000"

	req, err := v.Validate(input)

	require.NoError(t, err)
	assert.Equal(t, 50000, req.InsuranceAmount)
}

func TestRequestValidator_AmountStringsAreDecimal(t *testing.T) {
	v := services.NewRequestValidator()

	tests := []struct {
		name      string
		amount    string
		want      int
		malformed bool
	}{
		{name: "leading zero", amount: "030000", want: 30000},
		{name: "surrounding spaces", amount: " 50000 ", want: 50000},
		{name: "hex prefix", amount: "0x7530", malformed: true},
		{name: "fraction in string", amount: "30000.5", malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input["insuranceAmount"] = tt.amount

			req, err := v.Validate(input)

			if tt.malformed {
				var malformed *apperrors.MalformedInputError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, "insuranceAmount", malformed.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.InsuranceAmount)
		})
	}
}

func TestRequestValidator_MissingFields(t *testing.T) {
	v := services.NewRequestValidator()

	tests := []struct {
		name  string
		input map[string]any
		want  []string
	}{
		{
			name:  "empty object",
			input: map[string]any{},
			want:  []string{"insuranceAmount", "startDate", "endDate", "currency"},
		},
		{
			name:  "nil map",
			input: nil,
			want:  []string{"insuranceAmount", "startDate", "endDate", "currency"},
		},
		{
			name:  "currency and end date absent",
			input: map[string]any{"insuranceAmount": float64(30000), "startDate": "2025-01-01"},
			want:  []string{"endDate", "currency"},
		},
		{
			name: "null counts as missing",
			input: map[string]any{
				"insuranceAmount": nil,
				"startDate":       "2025-01-01",
				"endDate":         "2025-01-10",
				"currency":        "EUR",
			},
			want: []string{"insuranceAmount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.input)

			var missing *apperrors.MissingFieldsError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.want, missing.Fields)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestRequestValidator_MalformedInput(t *testing.T) {
	v := services.NewRequestValidator()

	tests := []struct {
		name  string
		field string
		value any
	}{
		{name: "non numeric amount", field: "insuranceAmount", value: "thirty thousand"},
		{name: "object amount", field: "insuranceAmount", value: map[string]any{"value": 30000}},
		{name: "array start date", field: "startDate", value: []any{"2025-01-01"}},
		{name: "object currency", field: "currency", value: map[string]any{"code": "EUR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input[tt.field] = tt.value

			_, err := v.Validate(input)

			var malformed *apperrors.MalformedInputError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.field, malformed.Field)
			assert.NotEmpty(t, malformed.Detail)
		})
	}
}

func TestRequestValidator_DomainRules(t *testing.T) {
	v := services.NewRequestValidator()

	tests := []struct {
		name   string
		modify func(map[string]any)
		want   map[string]string
	}{
		{
			name:   "unsupported amount",
			modify: func(in map[string]any) { in["insuranceAmount"] = float64(100000) },
			want:   map[string]string{"insuranceAmount": "Insurance amount must be either 30000 or 50000"},
		},
		{
			name:   "bad start date",
			modify: func(in map[string]any) { in["startDate"] = "01.01.2025" },
			want:   map[string]string{"startDate": "This value is not a valid date."},
		},
		{
			name:   "impossible end date",
			modify: func(in map[string]any) { in["endDate"] = "2025-02-30" },
			want:   map[string]string{"endDate": "This value is not a valid date."},
		},
		{
			name:   "end equals start",
			modify: func(in map[string]any) { in["endDate"] = "2025-01-01" },
			want:   map[string]string{"endDate": `This value should be greater than "2025-01-01".`},
		},
		{
			name:   "end before start",
			modify: func(in map[string]any) { in["endDate"] = "2024-12-31" },
			want:   map[string]string{"endDate": `This value should be greater than "2025-01-01".`},
		},
		{
			name:   "blank currency",
			modify: func(in map[string]any) { in["currency"] = "" },
			want:   map[string]string{"currency": "This value should not be blank."},
		},
		{
			name:   "currency wrong length reports length only",
			modify: func(in map[string]any) { in["currency"] = "EURO" },
			want:   map[string]string{"currency": "This value should have exactly 3 characters."},
		},
		{
			name:   "unsupported currency",
			modify: func(in map[string]any) { in["currency"] = "GBP" },
			want:   map[string]string{"currency": "Currency must be either EUR or USD"},
		},
		{
			name:   "lower case currency",
			modify: func(in map[string]any) { in["currency"] = "eur" },
			want:   map[string]string{"currency": "Currency must be either EUR or USD"},
		},
		{
			name: "every field collected",
			modify: func(in map[string]any) {
				in["insuranceAmount"] = float64(1)
				in["startDate"] = "nope"
				in["endDate"] = "2025/01/10"
				in["currency"] = "RUB"
			},
			want: map[string]string{
				"insuranceAmount": "Insurance amount must be either 30000 or 50000",
				"startDate":       "This value is not a valid date.",
				"endDate":         "This value is not a valid date.",
				"currency":        "Currency must be either EUR or USD",
			},
		},
		{
			name:   "invalid start skips ordering check",
			modify: func(in map[string]any) { in["startDate"] = "2025-99-01" },
			want:   map[string]string{"startDate": "This value is not a valid date."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.modify(input)

			_, err := v.Validate(input)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.want, validationErr.Fields)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestRequestValidator_ConcurrentUse(t *testing.T) {
	v := services.NewRequestValidator()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := v.Validate(validInput())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
