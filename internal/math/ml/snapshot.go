package ml

import (
	"fmt"

	"github.com/drakos74/free-bayes/internal/model"
	"github.com/drakos74/free-bayes/internal/storage"
	"gonum.org/v1/gonum/floats"
)

// Snapshot is the serialisable form of a model.
type Snapshot struct {
	ID         string          `json:"id"`
	ClassName  string          `json:"class"`
	Attributes []string        `json:"attributes"`
	Priors     Pair            `json:"priors"`
	Positive   map[string]Pair `json:"positive"`
	Negative   map[string]Pair `json:"negative"`
}

// Snapshot exports the model estimates.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		ID:         m.id,
		ClassName:  m.className,
		Attributes: m.Attributes(),
		Priors:     m.priors,
		Positive:   copyTable(m.conditional[model.Positive]),
		Negative:   copyTable(m.conditional[model.Negative]),
	}
}

// Restore re-creates a model from a snapshot.
func Restore(s Snapshot) (*Model, error) {
	if !sumsToOne(s.Priors) {
		return nil, fmt.Errorf("priors %v of model '%s' do not add up to 1", s.Priors, s.ID)
	}
	tables := map[model.Label]map[string]Pair{
		model.Positive: s.Positive,
		model.Negative: s.Negative,
	}
	m := &Model{
		id:         s.ID,
		className:  s.ClassName,
		attributes: append(make([]string, 0, len(s.Attributes)), s.Attributes...),
		priors:     s.Priors,
	}
	for label, table := range tables {
		for _, a := range s.Attributes {
			p, ok := table[a]
			if !ok {
				return nil, fmt.Errorf("conditional for '%s|%s' of model '%s': %w", a, label, s.ID, AttributeMismatchErr)
			}
			if !sumsToOne(p) {
				return nil, fmt.Errorf("conditional %v for '%s|%s' of model '%s' does not add up to 1", p, a, label, s.ID)
			}
		}
		m.conditional[label] = copyTable(table)
	}
	return m, nil
}

func sumsToOne(p Pair) bool {
	return floats.Sum(p[:]) == 1
}

func copyTable(table map[string]Pair) map[string]Pair {
	t := make(map[string]Pair, len(table))
	for k, v := range table {
		t[k] = v
	}
	return t
}

// Key returns the storage key of the model with the given id.
func Key(id string) storage.Key {
	return storage.Key{Name: id}
}

// Save stores the snapshot of the model.
func Save(p storage.Persistence, m *Model) (storage.Key, error) {
	k := Key(m.id)
	err := p.Store(k, m.Snapshot())
	if err != nil {
		return k, fmt.Errorf("could not store model '%s': %w", m.id, err)
	}
	return k, nil
}

// Load restores the model with the given id.
func Load(p storage.Persistence, id string) (*Model, error) {
	var s Snapshot
	err := p.Load(Key(id), &s)
	if err != nil {
		return nil, fmt.Errorf("could not load model '%s': %w", id, err)
	}
	return Restore(s)
}
