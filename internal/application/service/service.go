package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/cache"
	"github.com/TemirB/settlement-analytics/internal/domain"
	"github.com/TemirB/settlement-analytics/internal/observability"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Cache interface {
	OrdersWithStats(ctx context.Context) ([]domain.Order, cache.Stats, error)
	OrdersByMaker(ctx context.Context, maker string) ([]domain.Order, cache.Stats, error)
}

type TagStore interface {
	GetTags(ctx context.Context, address string) (domain.TagSet, error)
	AddTag(ctx context.Context, address, tag string) (domain.UserTags, error)
}

type Publisher interface {
	TagAdded(ctx context.Context, row domain.UserTags, tag string) error
}

// SearchResult is an address's own tags plus its orders. Orders here are not
// tag-annotated.
type SearchResult struct {
	Tags   domain.TagSet  `json:"tags"`
	Orders []domain.Order `json:"orders"`
}

type Service struct {
	cache      Cache
	tags       TagStore
	enricher   *Enricher
	publisher  Publisher
	tagTimeout time.Duration
	logger     *zap.Logger
	metrics    observability.Metrics
}

func NewService(
	cache Cache,
	tags TagStore,
	publisher Publisher,
	tagTimeout time.Duration,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Service {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Service{
		cache:      cache,
		tags:       tags,
		enricher:   NewEnricher(tags, tagTimeout, logger, metrics),
		publisher:  publisher,
		tagTimeout: tagTimeout,
		logger:     logger,
		metrics:    metrics,
	}
}

func (s *Service) ListOrders(ctx context.Context, from, to *int64) ([]domain.Order, error) {
	res, _, err := s.ListOrdersWithStats(ctx, Criteria{From: from, To: to})
	return res.Orders, err
}

// ListOrdersWithStats returns the completed mainnet orders inside the window
// of c, each with its maker's tags. Only a snapshot failure is an error.
func (s *Service) ListOrdersWithStats(ctx context.Context, c Criteria) (Enriched, QueryStats, error) {
	var st QueryStats

	t0 := time.Now()
	orders, cst, err := s.cache.OrdersWithStats(ctx)
	st.CacheMs = convertToMs(t0)
	st.Source, st.FetchMs = cst.Source, cst.FetchMs
	if err != nil {
		return Enriched{}, st, err
	}

	filtered := Filter(orders, c)

	t1 := time.Now()
	res := s.enricher.Enrich(ctx, filtered)
	st.EnrichMs = convertToMs(t1)
	st.Degraded = len(res.Degraded)

	s.logger.Info("Orders listed",
		zap.Int("snapshot", len(orders)),
		zap.Int("matched", len(res.Orders)),
		zap.String("source", string(st.Source)),
		zap.Float64("enrich_ms", st.EnrichMs),
	)
	return res, st, nil
}

func (s *Service) SearchByAddress(ctx context.Context, address string) (SearchResult, error) {
	res, _, err := s.SearchByAddressWithStats(ctx, address)
	return res, err
}

// SearchByAddressWithStats returns address's tags and its completed mainnet
// orders. A tag store failure yields an empty tag set.
func (s *Service) SearchByAddressWithStats(ctx context.Context, address string) (SearchResult, QueryStats, error) {
	var st QueryStats

	t0 := time.Now()
	tags, err := s.getTags(ctx, address)
	st.EnrichMs = convertToMs(t0)
	s.metrics.ObserveTagLookup(err == nil)
	if err != nil {
		s.logger.Error("Error getting tags",
			zap.String("address", address),
			zap.Error(err),
		)
		tags = domain.TagSet{}
		st.Degraded = 1
	}

	t1 := time.Now()
	orders, cst, err := s.cache.OrdersByMaker(ctx, address)
	st.CacheMs = convertToMs(t1)
	st.Source, st.FetchMs = cst.Source, cst.FetchMs
	if err != nil {
		return SearchResult{}, st, err
	}

	return SearchResult{
		Tags:   tags,
		Orders: Filter(orders, Criteria{Maker: &address}),
	}, st, nil
}

func (s *Service) getTags(ctx context.Context, address string) (domain.TagSet, error) {
	ctx, cancel := s.tagContext(ctx)
	defer cancel()
	return s.tags.GetTags(ctx, address)
}

func (s *Service) tagContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.tagTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.tagTimeout)
}
