package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/travel_insurance_app/internal/apperrors"
	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/travel_insurance_app/internal/middleware"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const maxBodyBytes = 32 << 10

// FeedSnapshot is the document served by a rate feed. Rates are quoted in
// the reference currency per one unit of the keyed currency.
type FeedSnapshot struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FeedConfig configures a FeedProvider.
type FeedConfig struct {
	URL     string
	APIKey  string
	TTL     time.Duration
	Timeout time.Duration
}

// FeedProvider fetches rates from an HTTP feed and caches the latest
// snapshot for TTL. Concurrent refreshes share a single request.
type FeedProvider struct {
	cfg        FeedConfig
	httpClient *http.Client
	now        func() time.Time

	group     singleflight.Group
	mu        sync.RWMutex
	snapshot  *FeedSnapshot
	fetchedAt time.Time
}

// NewFeedProvider creates a FeedProvider.
func NewFeedProvider(cfg FeedConfig) *FeedProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &FeedProvider{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		now: time.Now,
	}
}

func (p *FeedProvider) GetExchangeRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	snapshot, err := p.current(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := snapshot.Rates[currency]
	if !ok {
		return decimal.Zero, &apperrors.UnsupportedCurrencyError{Currency: currency}
	}
	return rate, nil
}

func (p *FeedProvider) current(ctx context.Context) (*FeedSnapshot, error) {
	p.mu.RLock()
	snapshot, fetchedAt := p.snapshot, p.fetchedAt
	p.mu.RUnlock()
	if snapshot != nil && p.now().Sub(fetchedAt) < p.cfg.TTL {
		return snapshot, nil
	}

	return p.refresh(ctx)
}

// Refresh fetches a new snapshot regardless of the cache age.
func (p *FeedProvider) Refresh(ctx context.Context) error {
	_, err := p.refresh(ctx)
	return err
}

// refresh shares one fetch between concurrent callers. The fetch is detached
// from the caller that started it; each caller still stops waiting when its
// own context ends.
func (p *FeedProvider) refresh(ctx context.Context) (*FeedSnapshot, error) {
	ch := p.group.DoChan("snapshot", func() (any, error) {
		fresh, err := p.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.snapshot, p.fetchedAt = fresh, p.now()
		p.mu.Unlock()
		return fresh, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		middleware.GetLoggerFromCtx(ctx).Debug("Exchange rate feed refreshed", slog.Bool("shared", res.Shared))
		return res.Val.(*FeedSnapshot), nil
	}
}

func (p *FeedProvider) fetch(ctx context.Context) (*FeedSnapshot, error) {
	u, err := url.Parse(p.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	if p.cfg.APIKey != "" {
		q := u.Query()
		q.Set("apikey", p.cfg.APIKey)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("rate feed: %w", apperrors.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rate feed http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out FeedSnapshot
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if out.Base != "" && !strings.EqualFold(out.Base, domain.ReferenceCurrency) {
		return nil, fmt.Errorf("rate feed quoted in %s, want %s", out.Base, domain.ReferenceCurrency)
	}
	return &out, nil
}

var _ portssvc.ExchangeRateProvider = (*FeedProvider)(nil)
