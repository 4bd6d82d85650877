// Package metrics defines the Prometheus metric collectors used across the
// indexer and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for one pipeline run.
type Metrics struct {
	registry *prometheus.Registry

	FilesProcessed   *prometheus.CounterVec
	WordsIndexed     prometheus.Counter
	TokensDiscarded  prometheus.Counter
	ArtifactsWritten *prometheus.CounterVec
	ShardEntries     *prometheus.GaugeVec
	PhaseDuration    *prometheus.HistogramVec
}

// New creates all collectors and registers them on a fresh registry, so
// multiple runs (and tests) never collide on the default registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FilesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "index_files_processed_total",
				Help: "Input files handled by mappers, by status (ok, open_error, read_error).",
			},
			[]string{"status"},
		),
		WordsIndexed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "index_words_total",
				Help: "Distinct (file, word) pairs merged into the shard table.",
			},
		),
		TokensDiscarded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "index_tokens_discarded_total",
				Help: "Raw tokens dropped because nothing alphabetic survived normalization.",
			},
		),
		ArtifactsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "index_artifacts_written_total",
				Help: "Per-letter output artifacts, by status (ok, error).",
			},
			[]string{"status"},
		),
		ShardEntries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "index_shard_entries",
				Help: "Number of distinct words per letter shard at emit time.",
			},
			[]string{"letter"},
		),
		PhaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "index_phase_duration_seconds",
				Help:    "Per-worker active time by phase (map, reduce).",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"phase"},
		),
	}

	m.registry.MustRegister(
		m.FilesProcessed,
		m.WordsIndexed,
		m.TokensDiscarded,
		m.ArtifactsWritten,
		m.ShardEntries,
		m.PhaseDuration,
	)

	return m
}

// Handler returns the Prometheus scrape handler for this run's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
