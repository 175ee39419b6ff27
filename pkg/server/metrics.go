package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsNamespace prefixes every metric the service exports.
const metricsNamespace = "domify"

// metrics holds the Prometheus instruments for the conversion service.
type metrics struct {
	conversionsTotal *prometheus.CounterVec
	convertDuration  *prometheus.HistogramVec
	previewClients   prometheus.Gauge
}

// newMetrics registers the instruments with reg, falling back to the
// default registerer. Each Server owns its instruments so tests can use
// isolated registries.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &metrics{
		conversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "conversions_total",
			Help:      "Total number of conversion requests by output format and status",
		}, []string{"format", "status"}),

		convertDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "convert_duration_seconds",
			Help:      "Conversion request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),

		previewClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "preview_clients",
			Help:      "Number of connected live preview clients",
		}),
	}
}

func (m *metrics) recordConversion(format, status string, seconds float64) {
	m.conversionsTotal.WithLabelValues(format, status).Inc()
	m.convertDuration.WithLabelValues(format).Observe(seconds)
}
