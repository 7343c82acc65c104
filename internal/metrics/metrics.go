package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_rounds_total",
			Help: "Total rounds resolved, by outcome",
		},
		[]string{"outcome"},
	)
	MatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_matches_total",
			Help: "Total matches played, by result",
		},
		[]string{"result"},
	)
	DiagnosticsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_diagnostics_total",
			Help: "Tolerated scoring problems, by kind",
		},
		[]string{"kind"},
	)

	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(RoundsTotal)
	prometheus.MustRegister(MatchesTotal)
	prometheus.MustRegister(DiagnosticsTotal)
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
}
