package gate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "vitakit"

const (
	outcomeAllowed = "allowed"
	outcomeDenied  = "denied"
)

var (
	gateChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "gate",
			Name:      "checks_total",
			Help:      "Total number of feature access evaluations",
		},
		[]string{"feature", "tier", "outcome"},
	)

	gateIncrementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "gate",
			Name:      "increments_total",
			Help:      "Total number of recorded usage increments",
		},
		[]string{"feature"},
	)

	gateStoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "gate",
			Name:      "store_errors_total",
			Help:      "Total number of usage store failures",
		},
		[]string{"op"},
	)
)

func observeCheck(feature FeatureKey, tier Tier, outcome string) {
	gateChecksTotal.WithLabelValues(string(feature), string(tier), outcome).Inc()
}

func observeDecision(feature FeatureKey, tier Tier, allowed bool) {
	if allowed {
		observeCheck(feature, tier, outcomeAllowed)
	} else {
		observeCheck(feature, tier, outcomeDenied)
	}
}

func observeIncrement(feature FeatureKey) {
	gateIncrementsTotal.WithLabelValues(string(feature)).Inc()
}

func observeStoreError(op string) {
	gateStoreErrorsTotal.WithLabelValues(op).Inc()
}
