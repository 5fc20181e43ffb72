package metrics

import (
	"athena-relay-service/internal/app/contracts"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "athena_relay"

type prometheusRelayMetrics struct {
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	registrations    *prometheus.CounterVec
}

// NewPrometheusRelayMetrics registers the relay collectors on registerer.
// It panics when they are already registered there.
func NewPrometheusRelayMetrics(registerer prometheus.Registerer) contracts.RelayMetrics {
	m := &prometheusRelayMetrics{
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Outbound athena calls by service and outcome.",
		}, []string{"service", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Latency of outbound athena calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patient_registrations_total",
			Help:      "Patient registrations relayed, by outcome.",
		}, []string{"outcome"}),
	}
	registerer.MustRegister(m.upstreamCalls, m.upstreamDuration, m.registrations)
	return m
}

func (m *prometheusRelayMetrics) ObserveUpstreamCall(service, outcome string, duration time.Duration) {
	m.upstreamCalls.WithLabelValues(service, outcome).Inc()
	m.upstreamDuration.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *prometheusRelayMetrics) IncRegistration(outcome string) {
	m.registrations.WithLabelValues(outcome).Inc()
}
