package orderbook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/domain"
)

//go:generate mockgen -source internal/orderbook/client.go -destination=internal/orderbook/client_mock_test.go -package=orderbook

type brk interface {
	Allow() error
	Success()
	Failure()
}

// Client fetches the full order list from the orderbook API.
type Client struct {
	url     string
	http    *http.Client
	breaker brk
	logger  *zap.Logger
}

func NewClient(url string, timeout time.Duration, breaker brk, logger *zap.Logger) *Client {
	return &Client{
		url:     url,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
		logger:  logger,
	}
}

// FetchAll makes exactly one GET against the orderbook. Transport failures,
// timeouts and non-2xx answers are domain.ErrFetch; a body that is not an
// order array is domain.ErrDeserialization.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Order, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.Warn("orderbook breaker rejected fetch", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.breaker.Failure()
		c.logger.Error("failed to build orderbook request", zap.String("url", c.url), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// A caller giving up says nothing about the orderbook's health.
		if ctx.Err() == nil {
			c.breaker.Failure()
		}
		c.logger.Error("orderbook request failed", zap.String("url", c.url), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		c.breaker.Failure()
		c.logger.Error("orderbook returned non-success status",
			zap.String("url", c.url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetch, resp.StatusCode)
	}

	var orders []domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		c.breaker.Failure()
		c.logger.Error("error while deserializing orders", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}

	c.breaker.Success()
	return orders, nil
}
