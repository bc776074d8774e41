package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "bayes"

type Prometheus struct {
	Instances   *prometheus.CounterVec
	Evaluations *prometheus.CounterVec
	Accuracy    *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Instances: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "instances",
				Help:      "classified instances by dataset and outcome",
			}, []string{"dataset", "outcome"}),
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations",
				Help:      "completed evaluation runs by dataset",
			}, []string{"dataset"}),
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accuracy_percent",
				Help:      "accuracy of the last evaluation by dataset",
			}, []string{"dataset"}),
	}
}
