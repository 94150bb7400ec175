package authz

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	capabilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "authz",
		Subsystem: "capabilities",
		Name:      "checks_total",
		Help:      "Total number of capability evaluations broken down by mode and result.",
	}, []string{"mode", "result"})

	capabilityLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "authz",
		Subsystem: "capabilities",
		Name:      "latency_seconds",
		Help:      "Latency distribution for building a capability view state.",
		Buckets: []float64{
			0.0005, 0.001, 0.002, 0.005,
			0.01, 0.02, 0.05, 0.1,
			0.2, 0.5, 1,
		},
	}, []string{"mode"})
)

func recordCapability(mode Mode, allowed bool) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	capabilityChecks.With(prometheus.Labels{
		"mode":   string(mode),
		"result": result,
	}).Inc()
}

func recordCapabilityLatency(mode Mode, latency time.Duration) {
	capabilityLatency.With(prometheus.Labels{"mode": string(mode)}).Observe(latency.Seconds())
}
