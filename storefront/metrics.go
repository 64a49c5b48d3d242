package storefront

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the service's prometheus collectors.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Sessions   prometheus.Gauge
	CartItems  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when reg is
// non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "operations_total",
			Help:      "Storefront operations by name and result.",
		}, []string{"operation", "result"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "operation_duration_seconds",
			Help:      "Storefront operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"operation"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storefront",
			Name:      "active_sessions",
			Help:      "Open shopping sessions.",
		}),
		CartItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "checkout_cart_units",
			Help:      "Units in carts that passed the checkout gate.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Operations, m.Duration, m.Sessions, m.CartItems)
	}
	return m
}
