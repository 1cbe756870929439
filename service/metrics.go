package service

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

// Metrics collects registrar counters in Prometheus.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	heartbeats      *prometheus.CounterVec
	sweeps          *prometheus.CounterVec
	evictions       *prometheus.CounterVec
	entries         prometheus.Gauge
	storeOpDuration *prometheus.HistogramVec
}

// NewMetrics creates the registrar collectors and registers them on reg.
// namespace defaults to "myregistrar".
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "myregistrar"
	}

	m := &Metrics{
		heartbeats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heartbeats_total",
			Help:      "Heartbeat runs by result (success, failure, skipped).",
		}, []string{"result"}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Sweep runs by result (success, failure, skipped).",
		}, []string{"result"}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Stale entry deletions by result (success, failure).",
		}, []string{"result"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_entries",
			Help:      "Entries seen by the last sweep, stale ones included.",
		}),
		storeOpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_op_duration_seconds",
			Help:      "Latency of registry store operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}, []string{"op"}),
	}

	for _, c := range []prometheus.Collector{m.heartbeats, m.sweeps, m.evictions, m.entries, m.storeOpDuration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("can't register registrar metrics, err: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) heartbeat(result string) {
	if m == nil {
		return
	}
	m.heartbeats.WithLabelValues(result).Inc()
}

func (m *Metrics) sweep(result string) {
	if m == nil {
		return
	}
	m.sweeps.WithLabelValues(result).Inc()
}

func (m *Metrics) eviction(result string) {
	if m == nil {
		return
	}
	m.evictions.WithLabelValues(result).Inc()
}

func (m *Metrics) setEntries(n int) {
	if m == nil {
		return
	}
	m.entries.Set(float64(n))
}

func (m *Metrics) observeStoreOp(op string, d time.Duration) {
	if m == nil {
		return
	}
	m.storeOpDuration.WithLabelValues(op).Observe(d.Seconds())
}
