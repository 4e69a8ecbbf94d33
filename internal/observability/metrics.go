package observability

// Metrics receives the service's measurements. Durations are milliseconds.
type Metrics interface {
	ObserveFetch(ok bool, durMs float64)
	ObserveTagLookup(ok bool)
	ObserveHTTP(method, route string, status int, durMs float64)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveFetch(bool, float64)               {}
func (Noop) ObserveTagLookup(bool)                    {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
