// Package metrics collects generation statistics on a private Prometheus
// registry. A CLI run has no scrape endpoint, so the registry is dumped in
// node exporter textfile format on request.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flaggen"

// Batch results.
const (
	ResultOK                 = "ok"
	ResultInsufficientUnique = "insufficient_unique"
	ResultError              = "error"
)

// Metrics holds the generator collectors.
type Metrics struct {
	Registry *prometheus.Registry

	attempts   *prometheus.CounterVec
	generated  *prometheus.CounterVec
	duplicates *prometheus.CounterVec
	batches    *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_total",
			Help:      "Number of sampled flags, accepted or not.",
		}, []string{"charset"}),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flags_generated_total",
			Help:      "Number of flags accepted into a batch.",
		}, []string{"charset"}),
		duplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_total",
			Help:      "Number of sampled flags discarded as duplicates.",
		}, []string{"charset"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Number of batches, differentiated by result.",
		}, []string{"result"}),
	}

	m.Registry.MustRegister(m.attempts, m.generated, m.duplicates, m.batches)

	return m
}

// Attempt counts one sampled flag.
func (m *Metrics) Attempt(charset string) {
	m.attempts.WithLabelValues(charset).Inc()
}

// Duplicate counts one discarded flag.
func (m *Metrics) Duplicate(charset string) {
	m.duplicates.WithLabelValues(charset).Inc()
}

// Generated counts n accepted flags.
func (m *Metrics) Generated(charset string, n int) {
	m.generated.WithLabelValues(charset).Add(float64(n))
}

// Batch counts a finished batch.
func (m *Metrics) Batch(result string) {
	m.batches.WithLabelValues(result).Inc()
}

// WriteTextfile writes the registry to path in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}

	return nil
}
