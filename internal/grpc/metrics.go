package grpc

import "github.com/prometheus/client_golang/prometheus"

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// CacheMetrics counts read-through cache lookups by result.
type CacheMetrics struct {
	lookups *prometheus.CounterVec
}

func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	m := &CacheMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ticket_scoring",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Read-through cache lookups by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.lookups)
	}
	return m
}

func (m *CacheMetrics) observe(result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
}
