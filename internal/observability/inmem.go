package observability

import "sync"

type observation struct {
	Kind   string
	Method string
	Route  string
	Status int
	Dur    float64
	OK     bool
}

// Inmem keeps the last max observations plus running counters.
type Inmem struct {
	mu     sync.Mutex
	last   []observation
	max    int
	totals struct {
		cacheHits, cacheMiss  int
		fetchOK, fetchFailed  int
		tagLookups, tagFailed int
		httpRequests          int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v observation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveFetch(ok bool, durMs float64) {
	m.mu.Lock()
	if ok {
		m.totals.fetchOK++
	} else {
		m.totals.fetchFailed++
	}
	m.mu.Unlock()
	m.push(observation{Kind: "fetch", Dur: durMs, OK: ok})
}

func (m *Inmem) ObserveTagLookup(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals.tagLookups++
	if !ok {
		m.totals.tagFailed++
	}
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.mu.Lock()
	m.totals.httpRequests++
	m.mu.Unlock()
	m.push(observation{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.cacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.cacheMiss++
	m.mu.Unlock()
}

// Snapshot is a copy of the Inmem counters.
type Snapshot struct {
	CacheHits, CacheMisses int
	FetchOK, FetchFailed   int
	TagLookups, TagFailed  int
	HTTPRequests           int
}

func (m *Inmem) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		CacheHits:   m.totals.cacheHits,
		CacheMisses: m.totals.cacheMiss,
		FetchOK:     m.totals.fetchOK,
		FetchFailed: m.totals.fetchFailed,
		TagLookups:  m.totals.tagLookups,
		TagFailed:   m.totals.tagFailed,

		HTTPRequests: m.totals.httpRequests,
	}
}
