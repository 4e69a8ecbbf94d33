package service

import (
	"math"
	"strings"

	"github.com/TemirB/settlement-analytics/internal/domain"
)

// Pair labels containing any of these belong to test networks.
var testnetMarkers = []string{"testnet", "sepolia"}

// Criteria selects the orders a request is about. From and To are inclusive
// millisecond bounds; a nil bound is open. Maker, when set, must equal the
// order's maker exactly.
type Criteria struct {
	From  *int64
	To    *int64
	Maker *string
}

func (c Criteria) bounds() (int64, int64) {
	from, to := int64(math.MinInt64), int64(math.MaxInt64)
	if c.From != nil {
		from = *c.From
	}
	if c.To != nil {
		to = *c.To
	}
	return from, to
}

// Match applies the predicates in order: completed status, mainnet pair,
// time window, maker.
func (c Criteria) Match(o *domain.Order) bool {
	if o.Status != domain.StatusCompleted {
		return false
	}
	if isTestnet(o.OrderPair) {
		return false
	}
	from, to := c.bounds()
	if ts := o.CreatedAtMillis(); ts < from || ts > to {
		return false
	}
	if c.Maker != nil && o.Maker != *c.Maker {
		return false
	}
	return true
}

// Filter returns the orders matching c. The result is never nil.
func Filter(orders []domain.Order, c Criteria) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for i := range orders {
		if c.Match(&orders[i]) {
			out = append(out, orders[i])
		}
	}
	return out
}

func isTestnet(pair string) bool {
	for _, m := range testnetMarkers {
		if strings.Contains(pair, m) {
			return true
		}
	}
	return false
}
