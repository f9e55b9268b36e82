package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas del matcher. Se registran en el registry default y se exponen en /metrics.
var (
	MatchRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playdate_match_runs_total",
			Help: "Total number of matching pipeline runs",
		},
		[]string{"source", "outcome"}, // source: request|generated|postgres|directory; outcome: matched|empty|error
	)

	MatchRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playdate_match_run_duration_seconds",
			Help:    "Duration of a matching pipeline run in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PhaseSurvivors = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playdate_phase_candidates",
			Help:    "Candidates remaining after each pipeline phase",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
		},
		[]string{"phase"}, // pool, location, availability, compatibility, returned
	)

	CandidateSourceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playdate_candidate_source_errors_total",
			Help: "Total number of candidate source failures",
		},
		[]string{"source"},
	)

	GeneratedOwners = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playdate_generated_owners_total",
			Help: "Total number of random owner profiles generated",
		},
	)
)

// RecordRun registra una corrida completa.
func RecordRun(source, outcome string, elapsed time.Duration) {
	MatchRuns.WithLabelValues(source, outcome).Inc()
	MatchRunDuration.Observe(elapsed.Seconds())
}

// RecordPhase registra cuántos candidatos quedaron tras una fase.
func RecordPhase(phase string, n int) {
	PhaseSurvivors.WithLabelValues(phase).Observe(float64(n))
}
