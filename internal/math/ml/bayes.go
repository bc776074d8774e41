package ml

import (
	"errors"
	"fmt"

	coinmath "github.com/drakos74/free-bayes/internal/math"
	"github.com/drakos74/free-bayes/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	// DivisionByZeroErr signals an undefined estimate, a population with no instances.
	DivisionByZeroErr = coinmath.DivisionByZeroErr
	// AttributeMismatchErr signals that an instance does not carry an attribute the model was trained on.
	AttributeMismatchErr = errors.New("mismatched attributes")
)

// Pair holds the probabilities for the values 0 and 1, in that order.
type Pair [2]float64

// Of returns the probability of the given binary value.
func (p Pair) Of(v int) float64 {
	return p[v]
}

// Model is a binary naive bayes model.
// It is immutable once built and safe for concurrent use.
type Model struct {
	id          string
	className   string
	attributes  []string
	priors      Pair
	conditional [2]map[string]Pair
}

// Build estimates the class priors and the conditional probabilities of each attribute from the given dataset.
func Build(ds *model.Dataset) (*Model, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset '%s': %w", ds.Name, err)
	}

	total := ds.Total()
	positives := ds.Positives()
	negatives := total - positives

	p0, p1, err := coinmath.Estimate(positives, total)
	if err != nil {
		return nil, fmt.Errorf("class prior over total instances of '%s': %w", ds.Name, err)
	}

	m := &Model{
		id:         uuid.New().String(),
		className:  ds.ClassName,
		attributes: append(make([]string, 0, len(ds.Attributes)), ds.Attributes...),
		priors:     Pair{p0, p1},
	}

	denoms := map[model.Label]int{
		model.Positive: positives,
		model.Negative: negatives,
	}
	quantity := map[model.Label]string{
		model.Positive: "positive instances",
		model.Negative: "negative instances",
	}

	for _, label := range model.Labels {
		subset := ds.Subset(label)
		table := make(map[string]Pair, len(m.attributes))
		for _, a := range m.attributes {
			count := 0
			for _, inst := range subset {
				if v, ok := inst.Value(a); ok && v == 1 {
					count++
				}
			}
			p0, p1, err := coinmath.Estimate(count, denoms[label])
			if err != nil {
				return nil, fmt.Errorf("conditional for '%s' over %s of '%s': %w", a, quantity[label], ds.Name, err)
			}
			table[a] = Pair{p0, p1}
		}
		m.conditional[label] = table
	}

	log.Debug().
		Str("model", m.id).
		Str("dataset", ds.Name).
		Int("instances", total).
		Int("positives", positives).
		Int("negatives", negatives).
		Int("attributes", len(m.attributes)).
		Msg("built model")

	return m, nil
}

// ID returns the unique identifier of the model.
func (m *Model) ID() string {
	return m.id
}

// ClassName returns the name of the class label the model was trained on.
func (m *Model) ClassName() string {
	return m.className
}

// Attributes returns the attribute names in training order.
func (m *Model) Attributes() []string {
	return append(make([]string, 0, len(m.attributes)), m.attributes...)
}

// Prior returns the prior probability of the given class.
func (m *Model) Prior(label model.Label) float64 {
	return m.priors[label]
}

// Priors returns the class priors as (P(class=0), P(class=1)).
func (m *Model) Priors() Pair {
	return m.priors
}

// Conditional returns (P(attribute=0|class), P(attribute=1|class)).
func (m *Model) Conditional(label model.Label, attribute string) (Pair, bool) {
	p, ok := m.conditional[label][attribute]
	return p, ok
}
