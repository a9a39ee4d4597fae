package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/travel_insurance_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDailyRates(t *testing.T) {
	rates, err := config.ParseDailyRates(" 30000:0.6 , 50000:0.9 ")

	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.True(t, decimal.RequireFromString("0.6").Equal(rates[30000]))
	assert.True(t, decimal.RequireFromString("0.9").Equal(rates[50000]))
}

func TestParseDailyRates_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		msg  string
	}{
		{name: "not an integer amount", raw: "lots:0.6", msg: "not an integer"},
		{name: "missing separator", raw: "30000=0.6", msg: "key:value"},
		{name: "bad rate", raw: "30000:abc", msg: "rate for"},
		{name: "zero rate", raw: "30000:0", msg: "must be positive"},
		{name: "duplicate", raw: "30000:0.6,30000:0.7", msg: "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseDailyRates(tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseExchangeRates(t *testing.T) {
	rates, err := config.ParseExchangeRates("eur:80.0,USD:75.5")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("80").Equal(rates["EUR"]))
	assert.True(t, decimal.RequireFromString("75.5").Equal(rates["USD"]))

	empty, err := config.ParseExchangeRates("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = config.ParseExchangeRates("EURO:80")
	assert.ErrorContains(t, err, "3 letters")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.RatesProviderFixed, cfg.RatesProvider)
	assert.Len(t, cfg.DailyRates, 2)
	assert.True(t, decimal.RequireFromString("75.5").Equal(cfg.ExchangeRates["USD"]))
	assert.Equal(t, 15*time.Minute, cfg.RatesFeedTTL)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.False(t, cfg.DebugErrors)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG_ERRORS", "true")
	t.Setenv("DAILY_RATES", "30000:0.7")
	t.Setenv("RATES_PROVIDER", "feed")
	t.Setenv("RATES_FEED_URL", "http://rates.local/latest")
	t.Setenv("RATES_FEED_TTL", "bogus")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.DebugErrors)
	assert.Len(t, cfg.DailyRates, 1)
	assert.Equal(t, config.RatesProviderFeed, cfg.RatesProvider)
	assert.Equal(t, "http://rates.local/latest", cfg.RatesFeedURL)
	assert.Equal(t, 15*time.Minute, cfg.RatesFeedTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_DebugErrorsOffInProduction(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("DEBUG_ERRORS", "true")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
	assert.False(t, cfg.DebugErrors)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("feed without url", func(t *testing.T) {
		t.Setenv("RATES_PROVIDER", "feed")
		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "RATES_FEED_URL")
	})
	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("RATES_PROVIDER", "oracle")
		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "unknown RATES_PROVIDER")
	})
	t.Run("bad daily rates", func(t *testing.T) {
		t.Setenv("DAILY_RATES", "abc")
		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "invalid DAILY_RATES")
	})
}
