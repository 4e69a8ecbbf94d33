package cache

import (
	"context"
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/domain"
	"github.com/TemirB/settlement-analytics/internal/observability"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

type source interface {
	FetchAll(ctx context.Context) ([]domain.Order, error)
}

type Source string

const (
	SourceCache     Source = "cache"
	SourceOrderbook Source = "orderbook"
)

// Stats describes where a snapshot read was served from.
type Stats struct {
	Source  Source
	FetchMs float64
	Age     time.Duration
}

// OrderCache owns the order snapshot. Every read runs the staleness check and
// a possible refresh under one lock, so concurrent callers on a stale snapshot
// queue behind a single upstream fetch and never see a list paired with the
// wrong timestamp.
type OrderCache struct {
	lock chan struct{}

	// guarded by lock
	orders    []domain.Order
	fetchedAt time.Time
	byMaker   *lru.Cache[string, []domain.Order]

	source    source
	staleness time.Duration
	now       func() time.Time
	logger    *zap.Logger
	metrics   observability.Metrics
}

// New returns a cache whose zero fetchedAt forces a fetch on first read.
func New(src source, staleness time.Duration, indexSize int, logger *zap.Logger, metrics observability.Metrics) (*OrderCache, error) {
	idx, err := lru.New[string, []domain.Order](indexSize)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &OrderCache{
		lock:      make(chan struct{}, 1),
		byMaker:   idx,
		source:    src,
		staleness: staleness,
		now:       time.Now,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// Warm loads the first snapshot. Failures are logged and left for the next read.
func (c *OrderCache) Warm(ctx context.Context) {
	if _, err := c.Orders(ctx); err != nil {
		c.logger.Warn("initial order fetch failed", zap.Error(err))
	}
}

func (c *OrderCache) Orders(ctx context.Context) ([]domain.Order, error) {
	orders, _, err := c.OrdersWithStats(ctx)
	return orders, err
}

// OrdersWithStats returns a copy of the current snapshot, refreshing it first
// when it is older than the staleness threshold. A failed refresh returns the
// fetch error and leaves the previous snapshot in place.
func (c *OrderCache) OrdersWithStats(ctx context.Context) ([]domain.Order, Stats, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, Stats{}, err
	}
	defer c.release()

	st, err := c.ensureFresh(ctx)
	if err != nil {
		return nil, st, err
	}
	return slices.Clone(c.orders), st, nil
}

// OrdersByMaker returns the snapshot's orders whose maker equals maker. Results
// are indexed per snapshot and dropped on every refresh.
func (c *OrderCache) OrdersByMaker(ctx context.Context, maker string) ([]domain.Order, Stats, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, Stats{}, err
	}
	defer c.release()

	st, err := c.ensureFresh(ctx)
	if err != nil {
		return nil, st, err
	}

	if orders, ok := c.byMaker.Get(maker); ok {
		return slices.Clone(orders), st, nil
	}
	var orders []domain.Order
	for _, o := range c.orders {
		if o.Maker == maker {
			orders = append(orders, o)
		}
	}
	c.byMaker.Add(maker, orders)
	return slices.Clone(orders), st, nil
}

func (c *OrderCache) acquire(ctx context.Context) error {
	select {
	case c.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: waiting for snapshot: %w", domain.ErrFetch, ctx.Err())
	}
}

func (c *OrderCache) release() { <-c.lock }

// ensureFresh must be called with the lock held.
func (c *OrderCache) ensureFresh(ctx context.Context) (Stats, error) {
	now := c.now()
	age := now.Sub(c.fetchedAt)
	if age <= c.staleness {
		c.metrics.IncCacheHit()
		c.logger.Debug("Used cached orders", zap.Duration("age", age))
		return Stats{Source: SourceCache, Age: age}, nil
	}

	c.metrics.IncCacheMiss()
	c.logger.Info("Fetching from orderbook", zap.Time("last_fetched", c.fetchedAt))

	t0 := time.Now()
	orders, err := c.source.FetchAll(ctx)
	st := Stats{Source: SourceOrderbook, FetchMs: convertToMs(t0)}
	c.metrics.ObserveFetch(err == nil, st.FetchMs)
	if err != nil {
		c.logger.Error("Error fetching orders",
			zap.Error(err),
			zap.Float64("fetch_ms", st.FetchMs),
		)
		return st, err
	}

	c.orders = orders
	c.fetchedAt = now
	c.byMaker.Purge()

	c.logger.Info("Fetched orders from orderbook",
		zap.Int("orders", len(orders)),
		zap.Float64("fetch_ms", st.FetchMs),
	)
	return st, nil
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
