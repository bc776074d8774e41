package metrics

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Serve exposes the registered metrics on the given address under /metrics.
// It blocks until the server stops.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info().Str("addr", addr).Msg("serving metrics")
	return http.ListenAndServe(addr, mux)
}

// Flush writes the current value of every bayes metric to the given logger,
// so that a short lived run still leaves its numbers behind.
func Flush(logger zerolog.Logger) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), namespace+"_") {
			continue
		}
		for _, metric := range family.GetMetric() {
			event := logger.Log().Str("metric", family.GetName())
			for _, label := range metric.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				event = event.Float64("value", metric.GetCounter().GetValue())
			case metric.GetGauge() != nil:
				event = event.Float64("value", metric.GetGauge().GetValue())
			}
			event.Msg("metric")
		}
	}
	return nil
}
