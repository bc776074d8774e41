package ml

import (
	"fmt"

	"github.com/drakos74/free-bayes/internal/model"
	"gonum.org/v1/gonum/floats"
)

// Prediction holds the unnormalized likelihood of each class for an instance.
type Prediction struct {
	Negative float64
	Positive float64
}

// Label returns the class with the strictly larger score.
// On an exact tie there is no prediction and ok is false.
func (p Prediction) Label() (label model.Label, ok bool) {
	switch {
	case p.Positive > p.Negative:
		return model.Positive, true
	case p.Positive < p.Negative:
		return model.Negative, true
	}
	return model.Negative, false
}

// Hit reports if the prediction matches the given label. A tie is never a hit.
func (p Prediction) Hit(label model.Label) bool {
	l, ok := p.Label()
	return ok && l == label
}

// Score returns the naive bayes joint likelihood of the instance for the given class,
// the product of the conditional probabilities of its attribute values scaled by the class prior.
// Only the model attributes are considered, extra instance attributes are ignored.
func (m *Model) Score(inst model.Instance, label model.Label) (float64, error) {
	factors := make([]float64, len(m.attributes))
	for i, a := range m.attributes {
		v, ok := inst.Value(a)
		if !ok {
			return 0, fmt.Errorf("attribute '%s' not found in instance: %w", a, AttributeMismatchErr)
		}
		if v != 0 && v != 1 {
			return 0, fmt.Errorf("attribute '%s' = %d: %w", a, v, model.InvalidValueErr)
		}
		factors[i] = m.conditional[label][a].Of(v)
	}
	return floats.Prod(factors) * m.priors[label], nil
}

// Predict scores the instance for both classes.
func (m *Model) Predict(inst model.Instance) (Prediction, error) {
	pos, err := m.Score(inst, model.Positive)
	if err != nil {
		return Prediction{}, err
	}
	neg, err := m.Score(inst, model.Negative)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Negative: neg,
		Positive: pos,
	}, nil
}

// Classify predicts the class of the instance. ok is false if both classes score exactly the same.
func (m *Model) Classify(inst model.Instance) (label model.Label, ok bool, err error) {
	p, err := m.Predict(inst)
	if err != nil {
		return model.Negative, false, err
	}
	label, ok = p.Label()
	return label, ok, nil
}
