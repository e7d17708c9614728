// Package metrics provides Prometheus instrumentation for the SSH server.
//
// Metrics live on their own registry so that tests and multiple servers in
// one process do not collide on the default one. All operations are safe
// for concurrent use by sessions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/slide/internal/core"
)

const namespace = "slide"

// Metrics holds the server counters.
type Metrics struct {
	registry *prometheus.Registry

	// SessionsTotal counts SSH sessions started.
	SessionsTotal prometheus.Counter

	// ActiveSessions tracks currently connected sessions.
	ActiveSessions prometheus.Gauge

	// MovesTotal counts accepted moves. Labels: game
	MovesTotal *prometheus.CounterVec

	// UndosTotal counts undone moves. Labels: game
	UndosTotal *prometheus.CounterVec

	// LevelsSolvedTotal counts completed levels. Labels: game, rating
	LevelsSolvedTotal *prometheus.CounterVec

	// SolveMoves records the move count of each solve. Labels: game
	SolveMoves *prometheus.HistogramVec
}

// New creates the metrics on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "sessions_total",
			Help:      "Total number of SSH sessions started",
		}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "active_sessions",
			Help:      "Number of connected SSH sessions",
		}),
		MovesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Total number of accepted moves by game",
		}, []string{"game"}),
		UndosTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undos_total",
			Help:      "Total number of undone moves by game",
		}, []string{"game"}),
		LevelsSolvedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_solved_total",
			Help:      "Total number of solved levels by game and rating",
		}, []string{"game", "rating"}),
		SolveMoves: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_moves",
			Help:      "Moves used to solve a level",
			Buckets:   []float64{2, 5, 10, 15, 20, 30, 50, 100},
		}, []string{"game"}),
	}
}

// SessionStarted records a new connection.
func (m *Metrics) SessionStarted() {
	m.SessionsTotal.Inc()
	m.ActiveSessions.Inc()
}

// SessionEnded records a closed connection.
func (m *Metrics) SessionEnded() {
	m.ActiveSessions.Dec()
}

// Observe counts the events of one game step. rate maps a solve's move count
// to a rating label; nil labels every solve "solved".
func (m *Metrics) Observe(gameID string, events []core.Event, rate func(level, moves int) string) {
	for _, e := range events {
		switch e.Kind {
		case core.EventMoved:
			m.MovesTotal.WithLabelValues(gameID).Inc()
		case core.EventUndone:
			m.UndosTotal.WithLabelValues(gameID).Inc()
		case core.EventSolved:
			rating := "solved"
			if rate != nil {
				rating = rate(e.Level, e.Moves)
			}
			m.LevelsSolvedTotal.WithLabelValues(gameID, rating).Inc()
			m.SolveMoves.WithLabelValues(gameID).Observe(float64(e.Moves))
		}
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
