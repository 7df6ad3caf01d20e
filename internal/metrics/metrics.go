// Package metrics exposes prometheus collectors for solve requests.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vyevs/wordbrain"
)

const namespace = "wordbrain"

// Solver records the outcome and cost of every solve.
type Solver struct {
	registry *prometheus.Registry

	solves    *prometheus.CounterVec
	duration  prometheus.Histogram
	solutions prometheus.Histogram
	visited   prometheus.Counter
	pruned    prometheus.Counter
}

// NewSolver registers the solve collectors plus the go and process
// collectors on a fresh registry.
func NewSolver() *Solver {
	s := &Solver{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solve requests by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Time spent solving a puzzle.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		solutions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solutions",
			Help:      "Solutions found per puzzle.",
			Buckets:   []float64{0, 1, 2, 5, 10, 50, 100, 1000},
		}),
		visited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_visited_total",
			Help:      "Cells tried as the next letter of a path.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prefixes_pruned_total",
			Help:      "Partial words cut off by the dictionary prefix check.",
		}),
	}

	s.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.solves, s.duration, s.solutions, s.visited, s.pruned,
	)
	return s
}

// Observe records one finished solve. err is the solve error, if any.
func (s *Solver) Observe(took time.Duration, solutions int, stats wordbrain.Stats, err error) {
	result := "ok"
	switch {
	case err != nil:
		result = "error"
	case solutions == 0:
		result = "unsolved"
	}

	s.solves.WithLabelValues(result).Inc()
	s.duration.Observe(took.Seconds())
	s.visited.Add(float64(stats.Visited))
	s.pruned.Add(float64(stats.Pruned))
	if err == nil {
		s.solutions.Observe(float64(solutions))
	}
}

// Handler serves the registry in the prometheus exposition format.
func (s *Solver) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
