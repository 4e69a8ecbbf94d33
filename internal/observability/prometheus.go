package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exports Metrics through a prometheus registry.
type Prometheus struct {
	fetchLatency *prometheus.HistogramVec
	tagLookups   *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	cacheLookups *prometheus.CounterVec
}

func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		fetchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orderbook_fetch_duration_seconds",
			Help:    "Upstream orderbook fetch latency in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"result"}),
		tagLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tag_lookups_total",
			Help: "Tag store lookups by outcome.",
		}, []string{"result"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "order_cache_lookups_total",
			Help: "Order snapshot reads by outcome.",
		}, []string{"result"}),
	}
	reg.MustRegister(p.fetchLatency, p.tagLookups, p.httpLatency, p.cacheLookups)
	return p
}

func (p *Prometheus) ObserveFetch(ok bool, durMs float64) {
	p.fetchLatency.WithLabelValues(result(ok)).Observe(durMs / 1000.0)
}

func (p *Prometheus) ObserveTagLookup(ok bool) {
	p.tagLookups.WithLabelValues(result(ok)).Inc()
}

func (p *Prometheus) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs / 1000.0)
}

func (p *Prometheus) IncCacheHit()  { p.cacheLookups.WithLabelValues("hit").Inc() }
func (p *Prometheus) IncCacheMiss() { p.cacheLookups.WithLabelValues("miss").Inc() }

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
