package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/config"
)

// querier is the part of *pgxpool.Pool the repositories use. Every call
// acquires and releases its own connection.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Connect opens a pool bounded by cfg.MaxConns and pings it once.
func Connect(ctx context.Context, dsn string, cfg config.Postgres, logger *zap.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pcfg.MaxConns = cfg.MaxConns

	level, err := tracelog.LogLevelFromString(cfg.TraceLevel)
	if err != nil {
		logger.Warn("invalid PG_TRACE_LEVEL, tracing disabled",
			zap.String("level", cfg.TraceLevel),
			zap.Error(err),
		)
		level = tracelog.LogLevelNone
	}
	if level != tracelog.LogLevelNone {
		pcfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   newZapTracer(logger.Named("pgx")),
			LogLevel: level,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
