// Package metrics counts what a generation run did and can dump the result
// in the Prometheus text format for a textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters of one run. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	reg *prometheus.Registry

	RecordsGenerated   prometheus.Counter
	FieldsMasked       *prometheus.CounterVec
	ConfigLoadFailures *prometheus.CounterVec
}

// New creates counters registered on a private registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		RecordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zfake_records_generated_total",
			Help: "Records assembled by the dataset generator",
		}),
		FieldsMasked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zfake_fields_masked_total",
				Help: "Field values passed through a masking strategy",
			},
			[]string{"strategy"}, // fake|mask|partial|hash
		),
		ConfigLoadFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zfake_config_load_failures_total",
				Help: "Config files that were unreadable or malformed",
			},
			[]string{"file"},
		),
	}

	m.reg.MustRegister(
		m.RecordsGenerated,
		m.FieldsMasked,
		m.ConfigLoadFailures,
	)
	return m
}

// Registry exposes the underlying gatherer.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// RecordGenerated counts one assembled record.
func (m *Metrics) RecordGenerated() {
	if m == nil {
		return
	}
	m.RecordsGenerated.Inc()
}

// FieldMasked counts one value handled by strategy.
func (m *Metrics) FieldMasked(strategy string) {
	if m == nil {
		return
	}
	m.FieldsMasked.WithLabelValues(strategy).Inc()
}

// ConfigLoadFailed counts one degraded config file.
func (m *Metrics) ConfigLoadFailed(file string) {
	if m == nil {
		return
	}
	m.ConfigLoadFailures.WithLabelValues(file).Inc()
}

// WriteTextfile writes all counters to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
