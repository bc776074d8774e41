package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	Hit  = "hit"
	Miss = "miss"
	Tie  = "tie"
)

var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Instances,
		Observer.prometheus.Evaluations,
		Observer.prometheus.Accuracy,
	)
}

type Metrics struct {
	prometheus Prometheus
}

// Classified tracks the outcome of a single classification.
func (m *Metrics) Classified(dataset, outcome string) {
	m.prometheus.Instances.WithLabelValues(dataset, outcome).Inc()
}

// Evaluated tracks a finished evaluation run.
func (m *Metrics) Evaluated(dataset string, accuracy float64) {
	m.prometheus.Evaluations.WithLabelValues(dataset).Inc()
	m.prometheus.Accuracy.WithLabelValues(dataset).Set(accuracy)
}
