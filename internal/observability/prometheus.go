package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus exports metrics through its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	remoteCalls  *prometheus.HistogramVec
	httpRequests *prometheus.HistogramVec
	cacheLookups *prometheus.CounterVec
}

func NewPrometheus(namespace string) *Prometheus {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		remoteCalls: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_call_duration_ms",
			Help:      "Duration of calls to the remote voucher service.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"op", "ok"}),
		httpRequests: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "Duration of served HTTP requests.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"method", "route", "status"}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Reference data cache lookups by result.",
		}, []string{"result"}),
	}
}

func (p *Prometheus) ObserveRemoteCall(op string, durMs float64, ok bool) {
	p.remoteCalls.WithLabelValues(op, strconv.FormatBool(ok)).Observe(durMs)
}

func (p *Prometheus) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs)
}

func (p *Prometheus) IncCacheHit() {
	p.cacheLookups.WithLabelValues("hit").Inc()
}

func (p *Prometheus) IncCacheMiss() {
	p.cacheLookups.WithLabelValues("miss").Inc()
}

func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
