package observability

import (
	"context"
	"errors"

	"github.com/aretw0/pushdown/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine collectors.
type Metrics struct {
	Runs       *prometheus.CounterVec
	Steps      *prometheus.CounterVec
	Rejections *prometheus.CounterVec
	TraceSize  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushdown_runs_total",
				Help: "Total number of simulation runs by verdict",
			},
			[]string{"result"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushdown_steps_total",
				Help: "Total number of applied transitions by phase",
			},
			[]string{"phase"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushdown_rejections_total",
				Help: "Total number of rejected runs by cause",
			},
			[]string{"reason"},
		),
		TraceSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pushdown_trace_steps",
				Help:    "Number of transitions per run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.Rejections, m.TraceSize)
	}
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(e.Phase.String()).Inc()
		},
		OnComplete: func(_ context.Context, e *domain.RunEvent) {
			m.TraceSize.Observe(float64(len(e.Result.Trace)))
			if e.Result.Accepted {
				m.Runs.WithLabelValues("accepted").Inc()
				return
			}
			m.Runs.WithLabelValues("rejected").Inc()
			m.Rejections.WithLabelValues(RejectionReason(e.Result.Err)).Inc()
		},
	}
}

// RejectionReason maps a rejection cause to a low-cardinality label.
func RejectionReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrInvalidSymbol):
		return "invalid_symbol"
	case errors.Is(err, domain.ErrNoTransition):
		return "no_transition"
	case errors.Is(err, domain.ErrStackMismatch):
		return "stack_mismatch"
	case errors.Is(err, domain.ErrEpsilonCycle):
		return "epsilon_cycle"
	case errors.Is(err, domain.ErrNotAccepted):
		return "not_accepted"
	}
	return "other"
}
