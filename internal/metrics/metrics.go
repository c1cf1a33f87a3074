// Package metrics exposes Prometheus collectors for the election service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voteverse"

// Verification outcomes.
const (
	OutcomeVerified  = "verified"
	OutcomeRejected  = "rejected"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Metrics holds every collector and the registry they are registered on.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	votesCast           prometheus.Counter
	ballotsSubmitted    prometheus.Counter
	verificationResults *prometheus.CounterVec
	voiceCommands       *prometheus.CounterVec
	sessionTransitions  *prometheus.CounterVec
	registrySynced      *prometheus.CounterVec
}

// New creates collectors on a fresh registry, including Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		votesCast: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Individual position votes stored.",
		}),
		ballotsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ballots_submitted_total",
			Help:      "Complete ballots submitted through voting sessions.",
		}),
		verificationResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_verification_attempts_total",
			Help:      "Voice verification attempts by outcome.",
		}, []string{"outcome"}),
		voiceCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_commands_total",
			Help:      "Dispatched voice commands by kind.",
		}, []string{"kind"}),
		sessionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voting_session_transitions_total",
			Help:      "Voting session state changes by target state.",
		}, []string{"state"}),
		registrySynced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_voters_synced_total",
			Help:      "Registry voters synced into the local store by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.votesCast,
		m.ballotsSubmitted,
		m.verificationResults,
		m.voiceCommands,
		m.sessionTransitions,
		m.registrySynced,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// VotesCast adds n stored votes.
func (m *Metrics) VotesCast(n int) {
	if m == nil {
		return
	}
	m.votesCast.Add(float64(n))
}

// BallotSubmitted counts one complete ballot.
func (m *Metrics) BallotSubmitted() {
	if m == nil {
		return
	}
	m.ballotsSubmitted.Inc()
}

// VerificationAttempt counts one verification by outcome.
func (m *Metrics) VerificationAttempt(outcome string) {
	if m == nil {
		return
	}
	m.verificationResults.WithLabelValues(outcome).Inc()
}

// VoiceCommand counts one dispatched command.
func (m *Metrics) VoiceCommand(kind string) {
	if m == nil {
		return
	}
	m.voiceCommands.WithLabelValues(kind).Inc()
}

// SessionTransition counts a session entering state.
func (m *Metrics) SessionTransition(state string) {
	if m == nil {
		return
	}
	m.sessionTransitions.WithLabelValues(state).Inc()
}

// RegistrySynced counts synced registry rows by result (created, updated, failed).
func (m *Metrics) RegistrySynced(result string, n int) {
	if m == nil {
		return
	}
	m.registrySynced.WithLabelValues(result).Add(float64(n))
}
