package ml

import (
	"fmt"

	coinmath "github.com/drakos74/free-bayes/internal/math"
	"github.com/drakos74/free-bayes/internal/metrics"
	"github.com/drakos74/free-bayes/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// AccuracyReport is the outcome of evaluating a model against a dataset.
type AccuracyReport struct {
	Label   string  `json:"label"`
	Total   int     `json:"total"`
	Correct int     `json:"correct"`
	Ties    int     `json:"ties"`
	Percent float64 `json:"percent"`
}

// Evaluate classifies every instance of the dataset and counts the correct predictions.
// An exact tie between the two class scores counts as a miss, whatever the true label.
// Any instance that does not match the model attributes aborts the evaluation.
func Evaluate(m *Model, ds *model.Dataset, label string) (AccuracyReport, error) {
	report := AccuracyReport{
		Label: label,
		Total: ds.Total(),
	}

	for i, inst := range ds.Instances {
		p, err := m.Predict(inst)
		if err != nil {
			return AccuracyReport{}, fmt.Errorf("%s set instance %d: %w", label, i, err)
		}
		outcome := metrics.Miss
		if _, ok := p.Label(); !ok {
			report.Ties++
			outcome = metrics.Tie
		} else if p.Hit(inst.Label) {
			report.Correct++
			outcome = metrics.Hit
		}
		metrics.Observer.Classified(label, outcome)
	}

	pct, err := coinmath.Percent(report.Correct, report.Total)
	if err != nil {
		return AccuracyReport{}, fmt.Errorf("accuracy over total instances of %s set: %w", label, err)
	}
	report.Percent = pct

	metrics.Observer.Evaluated(label, pct)
	log.Debug().
		Str("model", m.id).
		Str("set", label).
		Int("total", report.Total).
		Int("correct", report.Correct).
		Int("ties", report.Ties).
		Float64("percent", report.Percent).
		Msg("evaluated model")

	return report, nil
}

// Target is a labeled dataset to evaluate.
type Target struct {
	Label   string
	Dataset *model.Dataset
}

// EvaluateAll evaluates the model against all targets concurrently.
// Reports are returned in the order of the targets.
func EvaluateAll(m *Model, targets ...Target) ([]AccuracyReport, error) {
	reports := make([]AccuracyReport, len(targets))
	var group errgroup.Group
	for i, target := range targets {
		i, target := i, target
		group.Go(func() error {
			report, err := Evaluate(m, target.Dataset, target.Label)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
