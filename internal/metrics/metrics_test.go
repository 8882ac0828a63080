package metrics

import (
	"bytes"
	"testing"

	"github.com/drakos74/roq/internal/rb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Greedy(t *testing.T) {
	m := NewMetrics()

	a := m.Greedy("a")
	b := m.Greedy("b")

	steps := []rb.Step{
		{Iteration: 0, Bases: 1, MaxError: 0.5, Index: 3},
		{Iteration: 1, Bases: 2, MaxError: 1e-3, Index: 7},
		{Iteration: 2, Bases: 3, MaxError: 1e-13, Index: 1},
	}
	for _, s := range steps {
		a.Observe(s)
	}
	b.Observe(steps[0])

	assert.Equal(t, 1e-13, testutil.ToFloat64(m.prometheus.MaxError.WithLabelValues("a")))
	assert.Equal(t, 3., testutil.ToFloat64(m.prometheus.Bases.WithLabelValues("a")))
	assert.Equal(t, 3., testutil.ToFloat64(m.prometheus.Iterations.WithLabelValues("a")))

	assert.Equal(t, 0.5, testutil.ToFloat64(m.prometheus.MaxError.WithLabelValues("b")))
	assert.Equal(t, 1., testutil.ToFloat64(m.prometheus.Iterations.WithLabelValues("b")))

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "# TYPE roq_greedy_max_error gauge")
	assert.Contains(t, out, `roq_greedy_bases{run="a"} 3`)
	assert.Contains(t, out, `roq_greedy_iterations_total{run="b"} 1`)
}

func TestMetrics_Independent(t *testing.T) {
	m := NewMetrics()
	n := NewMetrics()
	m.Greedy("run").Observe(rb.Step{Bases: 1, MaxError: 1})

	var buf bytes.Buffer
	require.NoError(t, n.WriteText(&buf))
	assert.NotContains(t, buf.String(), `run="run"`)
}
