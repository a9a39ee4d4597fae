package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/travel_insurance_app/internal/adapters/rates"
	portssvc "github.com/SscSPs/travel_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/travel_insurance_app/internal/core/services"
	"github.com/SscSPs/travel_insurance_app/internal/handlers"
	"github.com/SscSPs/travel_insurance_app/internal/middleware"
	"github.com/SscSPs/travel_insurance_app/internal/platform/config"
	"github.com/SscSPs/travel_insurance_app/internal/platform/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// @title Travel Insurance Calculator API
// @version 1.0
// @description Computes travel insurance premiums and converts them to rubles.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger) // Optional: Set as default logger

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateProvider := newExchangeRateProvider(ctx, cfg, logger)
	serviceContainer := services.NewServiceContainer(cfg, rateProvider)
	logger.Info("Pricing tables loaded",
		slog.Int("daily_rates", len(cfg.DailyRates)),
		slog.Int("exchange_rates", len(cfg.ExchangeRates)),
		slog.String("rates_provider", cfg.RatesProvider),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, metrics, recovery)
	r.Use(middleware.Global(logger, appMetrics, cfg.DebugErrors)...)
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		r.Use(cors.New(corsCfg))
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, appMetrics, registry); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serveHTTP(gctx, logger, ":"+cfg.Port, r)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func serveHTTP(ctx context.Context, logger *slog.Logger, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("Server starting", slog.String("addr", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newExchangeRateProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) portssvc.ExchangeRateProvider {
	if cfg.RatesProvider == config.RatesProviderFeed {
		logger.Info("Using live exchange rate feed", slog.String("url", cfg.RatesFeedURL), slog.Duration("ttl", cfg.RatesFeedTTL))
		feed := rates.NewFeedProvider(rates.FeedConfig{
			URL:     cfg.RatesFeedURL,
			APIKey:  cfg.RatesFeedAPIKey,
			TTL:     cfg.RatesFeedTTL,
			Timeout: cfg.RatesFeedTimeout,
		})
		// instant fetch; requests retry lazily if it fails
		if err := feed.Refresh(middleware.WithLogger(ctx, logger)); err != nil {
			logger.Warn("Initial exchange rate fetch failed", slog.String("error", err.Error()))
		}
		return feed
	}
	fixed := rates.NewFixedProvider(cfg.ExchangeRates)
	logger.Info("Using fixed exchange rates", slog.Any("currencies", fixed.Currencies()))
	return fixed
}
