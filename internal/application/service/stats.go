package service

import (
	"time"

	"github.com/TemirB/settlement-analytics/internal/cache"
)

// QueryStats times the stages of a read request.
type QueryStats struct {
	Source   cache.Source
	CacheMs  float64
	FetchMs  float64
	EnrichMs float64
	Degraded int
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
