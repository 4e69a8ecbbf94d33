package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/domain"
	"github.com/TemirB/settlement-analytics/internal/observability"
)

type TagReader interface {
	GetTags(ctx context.Context, address string) (domain.TagSet, error)
}

// Enriched is the outcome of one enrichment pass. Orders whose maker lookup
// failed carry nil Tags and their maker is listed in Degraded.
type Enriched struct {
	Orders   []domain.Order
	Degraded []string
}

func (e Enriched) Partial() bool { return len(e.Degraded) > 0 }

type lookup struct {
	tags domain.TagSet
	err  error
}

// Enricher attaches maker tags to orders. Lookups are memoized for a single
// Enrich call only, failures included.
type Enricher struct {
	tags    TagReader
	timeout time.Duration
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewEnricher(tags TagReader, timeout time.Duration, logger *zap.Logger, metrics observability.Metrics) *Enricher {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Enricher{
		tags:    tags,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
	}
}

// Enrich sets Tags on every order in place. It never fails: a tag store
// error degrades the affected orders to no tags.
func (e *Enricher) Enrich(ctx context.Context, orders []domain.Order) Enriched {
	memo := make(map[string]lookup)
	res := Enriched{Orders: orders}

	for i := range orders {
		maker := orders[i].Maker
		l, ok := memo[maker]
		if !ok {
			l = e.lookup(ctx, maker)
			memo[maker] = l
			if l.err != nil {
				res.Degraded = append(res.Degraded, maker)
			}
		}
		if l.err != nil {
			orders[i].Tags = nil
			continue
		}
		orders[i].Tags = l.tags
	}

	if res.Partial() {
		e.logger.Warn("Orders returned without tags",
			zap.Strings("makers", res.Degraded),
		)
	}
	return res
}

func (e *Enricher) lookup(ctx context.Context, address string) lookup {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	tags, err := e.tags.GetTags(ctx, address)
	e.metrics.ObserveTagLookup(err == nil)
	if err != nil {
		e.logger.Error("Error getting tags",
			zap.String("address", address),
			zap.Error(err),
		)
	}
	return lookup{tags: tags, err: err}
}
