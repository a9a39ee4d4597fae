package utils_test

import (
	"testing"

	"github.com/SscSPs/travel_insurance_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "already two places", amount: "67.95", want: "67.95"},
		{name: "half rounds up", amount: "0.125", want: "0.13"},
		{name: "below half rounds down", amount: "0.1249", want: "0.12"},
		{name: "negative half rounds away from zero", amount: "-0.005", want: "-0.01"},
		{name: "integer", amount: "480", want: "480"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.RoundMoney(decimal.RequireFromString(tt.amount))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "6.00", utils.FormatWithPrecision(decimal.NewFromInt(6), 2))
	assert.Equal(t, "67.95", utils.FormatWithPrecision(decimal.RequireFromString("67.945"), 2))
}
