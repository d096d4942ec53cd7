// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const subsystem = "waitlist_relay"

// Outcome labels
const (
	OutcomeAccepted         = "accepted"
	OutcomePreflight        = "preflight"
	OutcomeMethodNotAllowed = "method_not_allowed"
	OutcomeInvalidEmail     = "invalid_email"
	OutcomeNotConfigured    = "not_configured"
	OutcomeForwardFailed    = "forward_failed"
)

// Registry holds the relay's collectors. It is separate from the default
// registry so /metrics only shows what this process registers.
var Registry = prometheus.NewRegistry()

var (
	requestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Count of relay requests by outcome.",
		},
		[]string{"outcome"},
	)
	forwardDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "forward_duration_seconds",
			Help:      "Time spent posting to the sink, including calls that failed.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var registerMetrics sync.Once

// Register all metrics.
func Register() {
	registerMetrics.Do(func() {
		Registry.MustRegister(requestsCounter)
		Registry.MustRegister(forwardDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// RecordOutcome counts one relay request.
func RecordOutcome(outcome string) {
	requestsCounter.WithLabelValues(outcome).Inc()
}

// ObserveForward records how long one sink post took.
func ObserveForward(d time.Duration) {
	forwardDuration.Observe(d.Seconds())
}

// OutcomeCounter exposes the counter for a label, for tests.
func OutcomeCounter(outcome string) prometheus.Counter {
	return requestsCounter.WithLabelValues(outcome)
}
