package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/application/service"
	"github.com/TemirB/settlement-analytics/internal/cache"
	"github.com/TemirB/settlement-analytics/internal/config"
	"github.com/TemirB/settlement-analytics/internal/database"
	"github.com/TemirB/settlement-analytics/internal/httpapi"
	"github.com/TemirB/settlement-analytics/internal/kafka"
	"github.com/TemirB/settlement-analytics/internal/observability"
	"github.com/TemirB/settlement-analytics/internal/orderbook"
	"github.com/TemirB/settlement-analytics/internal/pkg/breaker"
	"github.com/TemirB/settlement-analytics/internal/pkg/retry"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("analytics backend stopped", zap.Error(err))
	}
	logger.Info("analytics backend stopped")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewPrometheus(reg)

	pool, err := connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	client := orderbook.NewClient(
		cfg.Orderbook.URL,
		cfg.Orderbook.Timeout,
		breaker.New(cfg.Breaker),
		logger.Named("orderbook"),
	)

	orders, err := cache.New(client, cfg.Cache.Staleness, cfg.Cache.MakerIndexSize, logger.Named("cache"), metrics)
	if err != nil {
		return err
	}
	go orders.Warm(ctx)

	var publisher service.Publisher
	if cfg.KafkaEnabled() {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka, 1, logger.Named("kafka")); err != nil {
			logger.Warn("kafka topic not ensured", zap.Error(err))
		}
		p := kafka.NewPublisher(cfg.Kafka, logger.Named("kafka"))
		defer func() {
			if err := p.Close(); err != nil {
				logger.Warn("kafka writer close", zap.Error(err))
			}
		}()
		publisher = p
	}

	svc := service.NewService(
		orders,
		database.NewTagRepo(pool),
		publisher,
		cfg.Pg.TagTimeout,
		logger.Named("service"),
		metrics,
	)

	server := httpapi.New(
		svc,
		database.NewMarketRepo(pool, cfg.MarketLimit),
		pool,
		httpapi.Options{
			RequestTimeout: cfg.RequestTimeout,
			CORSOrigins:    cfg.CORSOrigins,
			MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		},
		logger.Named("http"),
		metrics,
	)

	logger.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("orderbook", cfg.Orderbook.URL),
		zap.Duration("staleness", cfg.Cache.Staleness),
		zap.Bool("kafka", cfg.KafkaEnabled()),
	)
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// connect retries the first pool connection; requests never retry.
func connect(ctx context.Context, cfg config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	attempt := 0
	err := retry.Do(ctx, cfg.Retry, func() error {
		attempt++
		p, err := database.Connect(ctx, cfg.DSN(), cfg.Pg, logger)
		if err != nil {
			logger.Warn("postgres connect failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("postgres connected", zap.Int32("max_conns", cfg.Pg.MaxConns))
	return pool, nil
}
