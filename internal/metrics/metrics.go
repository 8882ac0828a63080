// Package metrics tracks the greedy progress as prometheus metrics.
// The metrics live in their own registry and are dumped in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/drakos74/roq/internal/rb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type Metrics struct {
	mutex      *sync.RWMutex
	registry   *prometheus.Registry
	prometheus Prometheus
}

// NewMetrics creates and registers the greedy metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		mutex:      new(sync.RWMutex),
		registry:   prometheus.NewRegistry(),
		prometheus: NewPrometheusMetrics(),
	}
	m.registry.MustRegister(m.prometheus.collectors()...)
	return m
}

// Greedy returns an observer recording the steps of the given run.
func (m *Metrics) Greedy(run string) rb.Observer {
	return rb.ObserverFunc(func(step rb.Step) {
		m.mutex.Lock()
		defer m.mutex.Unlock()
		m.prometheus.MaxError.WithLabelValues(run).Set(step.MaxError)
		m.prometheus.Bases.WithLabelValues(run).Set(float64(step.Bases))
		m.prometheus.Iterations.WithLabelValues(run).Inc()
	})
}

// WriteText writes the current state of the metrics in the prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	mfs, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("could not encode metric '%s': %w", mf.GetName(), err)
		}
	}
	return nil
}
