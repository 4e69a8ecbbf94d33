package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCompleted is the lifecycle status of a fully settled order.
const StatusCompleted = 3

// Swap is one leg of a matched order: the atomic swap on a single chain.
type Swap struct {
	ID               int64     `json:"ID"`
	CreatedAt        time.Time `json:"CreatedAt"`
	UpdatedAt        time.Time `json:"UpdatedAt"`
	InitiatorAddress string    `json:"initiatorAddress"`
	RedeemerAddress  *string   `json:"redeemerAddress"`
	Chain            string    `json:"chain"`
	Asset            string    `json:"asset"`
	Amount           string    `json:"amount"`
	PriceByOracle    float64   `json:"priceByOracle"`
}

// AmountDecimal parses Amount. The raw text is what gets re-served; callers
// that need arithmetic parse on demand.
func (s Swap) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(s.Amount)
}

// Order is a settlement record as served by the orderbook. Tags is nil on a
// raw fetch and only filled by enrichment.
type Order struct {
	ID                    int64     `json:"ID"`
	CreatedAt             time.Time `json:"CreatedAt"`
	UpdatedAt             time.Time `json:"UpdatedAt"`
	InitiatorAtomicSwapID int64     `json:"InitiatorAtomicSwapID"`
	FollowerAtomicSwapID  int64     `json:"FollowerAtomicSwapID"`
	InitiatorAtomicSwap   Swap      `json:"initiatorAtomicSwap"`
	FollowerAtomicSwap    Swap      `json:"followerAtomicSwap"`
	UserBtcWalletAddress  *string   `json:"userBtcWalletAddress"`
	Tags                  TagSet    `json:"tags"`
	Maker                 string    `json:"maker"`
	Taker                 string    `json:"taker"`
	OrderPair             string    `json:"orderPair"`
	Status                int32     `json:"status"`
}

// CreatedAtMillis is the creation instant as a millisecond epoch, the unit
// the time window filter works in.
func (o *Order) CreatedAtMillis() int64 {
	return o.CreatedAt.UnixMilli()
}
