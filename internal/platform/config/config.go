package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Exchange rate provider kinds accepted in RATES_PROVIDER.
const (
	RatesProviderFixed = "fixed"
	RatesProviderFeed  = "feed"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	// DebugErrors adds exception types and stack traces to 500 responses.
	// It is always off in production.
	DebugErrors bool

	// Pricing tables, loaded once at startup
	DailyRates    map[int]decimal.Decimal
	ExchangeRates map[string]decimal.Decimal

	// Live rate feed
	RatesProvider    string
	RatesFeedURL     string
	RatesFeedAPIKey  string
	RatesFeedTTL     time.Duration
	RatesFeedTimeout time.Duration

	RateLimit          string   // ulule limiter format, e.g. "60-M"; empty disables
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DEBUG_ERRORS", false)
	v.SetDefault("DAILY_RATES", "30000:0.6,50000:0.9")
	v.SetDefault("EXCHANGE_RATES", "EUR:80.0,USD:75.5")
	v.SetDefault("RATES_PROVIDER", RatesProviderFixed)
	v.SetDefault("RATES_FEED_URL", "")
	v.SetDefault("RATES_FEED_API_KEY", "")
	v.SetDefault("RATES_FEED_TTL", "15m")
	v.SetDefault("RATES_FEED_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.DebugErrors = v.GetBool("DEBUG_ERRORS") && !cfg.IsProduction
	if v.GetBool("DEBUG_ERRORS") && cfg.IsProduction {
		log.Println("Warning: DEBUG_ERRORS is ignored when IS_PRODUCTION is set.")
	}

	dailyRates, err := ParseDailyRates(v.GetString("DAILY_RATES"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_RATES: %w", err)
	}
	cfg.DailyRates = dailyRates

	exchangeRates, err := ParseExchangeRates(v.GetString("EXCHANGE_RATES"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXCHANGE_RATES: %w", err)
	}
	cfg.ExchangeRates = exchangeRates

	cfg.RatesProvider = strings.ToLower(strings.TrimSpace(v.GetString("RATES_PROVIDER")))
	switch cfg.RatesProvider {
	case RatesProviderFixed:
	case RatesProviderFeed:
		cfg.RatesFeedURL = v.GetString("RATES_FEED_URL")
		if cfg.RatesFeedURL == "" {
			return nil, fmt.Errorf("RATES_FEED_URL is required when RATES_PROVIDER=%s", RatesProviderFeed)
		}
	default:
		return nil, fmt.Errorf("unknown RATES_PROVIDER %q", cfg.RatesProvider)
	}
	cfg.RatesFeedAPIKey = v.GetString("RATES_FEED_API_KEY")
	cfg.RatesFeedTTL = parseDurationOr(v.GetString("RATES_FEED_TTL"), 15*time.Minute, "RATES_FEED_TTL")
	cfg.RatesFeedTimeout = parseDurationOr(v.GetString("RATES_FEED_TIMEOUT"), 10*time.Second, "RATES_FEED_TIMEOUT")

	cfg.RateLimit = strings.TrimSpace(v.GetString("RATE_LIMIT"))
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// ParseDailyRates parses "30000:0.6,50000:0.9" into a coverage tier table.
func ParseDailyRates(raw string) (map[int]decimal.Decimal, error) {
	pairs, err := parsePairs(raw)
	if err != nil {
		return nil, err
	}
	rates := make(map[int]decimal.Decimal, len(pairs))
	for key, rate := range pairs {
		amount, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("insurance amount %q is not an integer", key)
		}
		rates[amount] = rate
	}
	return rates, nil
}

// ParseExchangeRates parses "EUR:80.0,USD:75.5" into a currency rate table.
func ParseExchangeRates(raw string) (map[string]decimal.Decimal, error) {
	pairs, err := parsePairs(raw)
	if err != nil {
		return nil, err
	}
	rates := make(map[string]decimal.Decimal, len(pairs))
	for code, rate := range pairs {
		code = strings.ToUpper(code)
		if len(code) != 3 {
			return nil, fmt.Errorf("currency code %q must have 3 letters", code)
		}
		rates[code] = rate
	}
	return rates, nil
}

func parsePairs(raw string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	for _, item := range splitList(raw) {
		key, value, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q must look like key:value", item)
		}
		key = strings.TrimSpace(key)
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("rate for %q: %w", key, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %q must be positive", key)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("duplicate entry for %q", key)
		}
		out[key] = rate
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseDurationOr(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
