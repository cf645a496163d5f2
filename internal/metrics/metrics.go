// Package metrics holds the application-level Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "controldoc"

// Metrics groups the counters recorded by the guard and the upstream client.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	GuardDecisions   *prometheus.CounterVec
	UpstreamRequests *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GuardDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "guard_decisions_total", Help: "Route guard decisions by path class and action."},
			[]string{"class", "action"},
		),
		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "upstream_requests_total", Help: "Requests to the external API by operation and outcome."},
			[]string{"operation", "outcome"},
		),
	}
	reg.MustRegister(m.GuardDecisions, m.UpstreamRequests)
	return m
}

// ObserveGuard records one guard decision.
func (m *Metrics) ObserveGuard(class, action string) {
	if m == nil {
		return
	}
	m.GuardDecisions.WithLabelValues(class, action).Inc()
}

// ObserveUpstream records the outcome of one upstream call.
func (m *Metrics) ObserveUpstream(operation, outcome string) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(operation, outcome).Inc()
}
