package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	MaxError   *prometheus.GaugeVec
	Bases      *prometheus.GaugeVec
	Iterations *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		MaxError: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "roq",
				Subsystem: "greedy",
				Name:      "max_error",
				Help:      "Maximum training set projection error of the current basis.",
			}, []string{"run"}),
		Bases: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "roq",
				Subsystem: "greedy",
				Name:      "bases",
				Help:      "Number of basis vectors the error was measured with.",
			}, []string{"run"}),
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "roq",
				Subsystem: "greedy",
				Name:      "iterations_total",
				Help:      "Greedy iterations performed.",
			}, []string{"run"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.MaxError, p.Bases, p.Iterations}
}
