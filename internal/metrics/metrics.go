// Package metrics provides Prometheus metric collection and exposition.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface consumed by the service layer.
type Recorder interface {
	RecordGenerationSuccess(kind string)
	RecordGenerationFailure(kind string)
	RecordGenerationLatency(d time.Duration)
	RecordEntrySaved(created bool)
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	generationOK   *prometheus.CounterVec
	generationFail *prometheus.CounterVec
	generationTime prometheus.Histogram
	entriesSaved   *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		generationOK: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kokorolog_generation_success_total",
			Help: "Successful commentary generation calls by kind.",
		}, []string{"kind"}),
		generationFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kokorolog_generation_fail_total",
			Help: "Failed commentary generation calls by kind.",
		}, []string{"kind"}),
		generationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kokorolog_generation_latency_seconds",
			Help:    "Latency of commentary generation calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		entriesSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kokorolog_entries_saved_total",
			Help: "Diary entries persisted, by created/updated outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.generationOK,
		c.generationFail,
		c.generationTime,
		c.entriesSaved,
	)

	return c
}

// RecordGenerationSuccess records one successful generator call.
func (c *Collector) RecordGenerationSuccess(kind string) {
	c.generationOK.WithLabelValues(kind).Inc()
}

// RecordGenerationFailure records one failed generator call.
func (c *Collector) RecordGenerationFailure(kind string) {
	c.generationFail.WithLabelValues(kind).Inc()
}

// RecordGenerationLatency records the wall time of a generator call.
func (c *Collector) RecordGenerationLatency(d time.Duration) {
	c.generationTime.Observe(d.Seconds())
}

// RecordEntrySaved records one persisted entry.
func (c *Collector) RecordEntrySaved(created bool) {
	outcome := "updated"
	if created {
		outcome = "created"
	}
	c.entriesSaved.WithLabelValues(outcome).Inc()
}

// Handler returns the exposition handler for the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Noop is a Recorder that discards everything. Used in tests.
type Noop struct{}

func (Noop) RecordGenerationSuccess(string)        {}
func (Noop) RecordGenerationFailure(string)        {}
func (Noop) RecordGenerationLatency(time.Duration) {}
func (Noop) RecordEntrySaved(bool)                 {}
