package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeTranscribed = "transcribed"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
	OutcomeCleaned     = "cleaned"
	OutcomeDegraded    = "degraded"
)

// Metrics records transcription and cleanup outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	transcriptions       *prometheus.CounterVec
	transcriptionLatency *prometheus.HistogramVec
	cleanups             *prometheus.CounterVec
	cleanupLatency       *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transcriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transcript_cleaner",
			Name:      "transcriptions_total",
			Help:      "Transcription requests by backend and outcome.",
		}, []string{"backend", "outcome"}),
		transcriptionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "transcript_cleaner",
			Name:      "transcription_duration_seconds",
			Help:      "Time spent in the speech model.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"backend"}),
		cleanups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transcript_cleaner",
			Name:      "cleanups_total",
			Help:      "Cleanup requests by backend and outcome.",
		}, []string{"backend", "outcome"}),
		cleanupLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "transcript_cleaner",
			Name:      "cleanup_duration_seconds",
			Help:      "Time spent waiting on the remote cleanup backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend"}),
	}

	reg.MustRegister(m.transcriptions, m.transcriptionLatency, m.cleanups, m.cleanupLatency)
	return m
}

// RecordTranscription counts one transcription request. Latency is only
// observed when the model was actually invoked.
func (m *Metrics) RecordTranscription(backend, outcome string, latency time.Duration) {
	if m == nil {
		return
	}
	m.transcriptions.WithLabelValues(backend, outcome).Inc()
	if outcome != OutcomeRejected {
		m.transcriptionLatency.WithLabelValues(backend).Observe(latency.Seconds())
	}
}

// RecordCleanup counts one cleanup request
func (m *Metrics) RecordCleanup(backend, outcome string, latency time.Duration) {
	if m == nil {
		return
	}
	m.cleanups.WithLabelValues(backend, outcome).Inc()
	m.cleanupLatency.WithLabelValues(backend).Observe(latency.Seconds())
}
