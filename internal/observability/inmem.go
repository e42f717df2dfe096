package observability

import "sync"

type observe struct {
	Kind   string
	Op     string
	Method string
	Route  string
	Status int
	DurMs  float64
	OK     bool
}

// Inmem keeps the last max observations and cache counters in memory.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		cacheHits, cacheMiss int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveRemoteCall(op string, durMs float64, ok bool) {
	m.push(&observe{Kind: "remote", Op: op, DurMs: durMs, OK: ok})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, DurMs: durMs})
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

// CacheStats returns hit and miss totals.
func (m *Inmem) CacheStats() (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheHits, m.totals.cacheMiss
}

// RemoteCalls returns the recorded remote operation names, oldest first.
func (m *Inmem) RemoteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ops []string
	for _, o := range m.last {
		if o.Kind == "remote" {
			ops = append(ops, o.Op)
		}
	}
	return ops
}

// HTTPRoutes returns the recorded HTTP route patterns, oldest first.
func (m *Inmem) HTTPRoutes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var routes []string
	for _, o := range m.last {
		if o.Kind == "http" {
			routes = append(routes, o.Route)
		}
	}
	return routes
}
