package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/TemirB/settlement-analytics/internal/domain"
)

const (
	swapsSQL = `
		SELECT id, timestamp, source_asset, destination_asset, source_amount,
		       destination_amount, source_address, destination_address, tx_hash
		FROM %s
		ORDER BY timestamp DESC
		LIMIT $1`

	closingPricesSQL = `SELECT date, close FROM btc_prices ORDER BY date`
)

// MarketRepo serves the swap and price tables as they are, without caching.
type MarketRepo struct {
	db    querier
	limit int
}

func NewMarketRepo(db querier, limit int) *MarketRepo {
	return &MarketRepo{db: db, limit: limit}
}

func (r *MarketRepo) ThorchainSwaps(ctx context.Context) ([]domain.CrossChainSwap, error) {
	return r.swaps(ctx, "thorchain_swaps")
}

func (r *MarketRepo) ChainflipSwaps(ctx context.Context) ([]domain.CrossChainSwap, error) {
	return r.swaps(ctx, "chainflip_swaps")
}

func (r *MarketRepo) swaps(ctx context.Context, table string) ([]domain.CrossChainSwap, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(swapsSQL, pgx.Identifier{table}.Sanitize()), r.limit)
	if err != nil {
		return nil, domain.NewStoreError("list "+table, err)
	}
	defer rows.Close()

	out := make([]domain.CrossChainSwap, 0)
	for rows.Next() {
		var s domain.CrossChainSwap
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.SourceAsset, &s.DestinationAsset, &s.SourceAmount,
			&s.DestinationAmount, &s.SourceAddress, &s.DestinationAddress, &s.TxHash); err != nil {
			return nil, domain.NewStoreError("scan "+table, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list "+table, err)
	}
	return out, nil
}

func (r *MarketRepo) BTCClosingPrices(ctx context.Context) ([]domain.ClosingPrice, error) {
	rows, err := r.db.Query(ctx, closingPricesSQL)
	if err != nil {
		return nil, domain.NewStoreError("list btc_prices", err)
	}
	defer rows.Close()

	out := make([]domain.ClosingPrice, 0)
	for rows.Next() {
		var p domain.ClosingPrice
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, domain.NewStoreError("scan btc_prices", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list btc_prices", err)
	}
	return out, nil
}
