// Package metrics records workload runs as Prometheus metrics. Nothing is exported over the network; callers gather
// from the registry they supplied.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace         = "dispatch"
	workloadSubsystem = "workload"

	StatusSuccess = "success"
	StatusError   = "error"
)

type Metrics struct {
	// RunsTotal counts runs by workload and status.
	RunsTotal *prometheus.CounterVec

	// IterationsTotal counts completed iterations by workload.
	IterationsTotal *prometheus.CounterVec

	// RunDurationSeconds measures time spent evaluating, excluding input generation.
	RunDurationSeconds *prometheus.HistogramVec
}

func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: workloadSubsystem,
			Name:      "runs_total",
			Help:      "Workload runs by outcome.",
		}, []string{"workload", "status"}),

		IterationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: workloadSubsystem,
			Name:      "iterations_total",
			Help:      "Completed workload iterations.",
		}, []string{"workload"}),

		RunDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: workloadSubsystem,
			Name:      "run_duration_seconds",
			Help:      "Evaluation time of a workload run.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"workload"}),
	}
}

func (s *Metrics) RecordRun(workload string, iterations int, elapsed time.Duration, err error) {
	status := StatusSuccess

	if err != nil {
		status = StatusError
	}

	s.RunsTotal.WithLabelValues(workload, status).Inc()
	s.IterationsTotal.WithLabelValues(workload).Add(float64(iterations))
	s.RunDurationSeconds.WithLabelValues(workload).Observe(elapsed.Seconds())
}
