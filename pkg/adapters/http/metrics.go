package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus collectors for the HTTP adapter. Each handler
// gets its own registry so multiple handlers can coexist in one process.
type metrics struct {
	registry      *prometheus.Registry
	conversions   *prometheus.CounterVec
	parseFailures prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamut",
			Name:      "conversions_total",
			Help:      "Number of color conversions served, by source and destination space.",
		}, []string{"from", "to"}),
		parseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gamut",
			Name:      "parse_failures_total",
			Help:      "Number of color strings that failed to parse.",
		}),
	}
	m.registry.MustRegister(m.conversions, m.parseFailures)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
