package ml

import (
	"fmt"
	"strconv"

	"github.com/drakos74/free-bayes/internal/model"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
)

// NoClass marks an instance without prediction, because of a tie, in the golearn grids.
const NoClass = "-"

// ToInstances converts the dataset into golearn instances.
// Attributes become binary attributes and the label a categorical class attribute.
func ToInstances(ds *model.Dataset) (*base.DenseInstances, error) {
	instances := base.NewDenseInstances()

	attrs := make([]*base.BinaryAttribute, len(ds.Attributes))
	specs := make([]base.AttributeSpec, len(ds.Attributes))
	for i, a := range ds.Attributes {
		attrs[i] = base.NewBinaryAttribute(a)
		specs[i] = instances.AddAttribute(attrs[i])
	}

	class := base.NewCategoricalAttribute()
	class.SetName(ds.ClassName)
	// fix the category order
	class.GetSysValFromString(model.Negative.String())
	class.GetSysValFromString(model.Positive.String())
	classSpec := instances.AddAttribute(class)
	err := instances.AddClassAttribute(class)
	if err != nil {
		return nil, fmt.Errorf("could not add class attribute '%s': %w", ds.ClassName, err)
	}

	err = instances.Extend(ds.Total())
	if err != nil {
		return nil, fmt.Errorf("could not allocate %d rows: %w", ds.Total(), err)
	}

	for r, inst := range ds.Instances {
		for i, a := range ds.Attributes {
			v, ok := inst.Value(a)
			if !ok {
				return nil, fmt.Errorf("instance %d attribute '%s': %w", r, a, model.MissingAttributeErr)
			}
			instances.Set(specs[i], r, attrs[i].GetSysValFromString(strconv.Itoa(v)))
		}
		instances.Set(classSpec, r, class.GetSysValFromString(inst.Label.String()))
	}

	return instances, nil
}

// ConfusionMatrix classifies the dataset and compares the predictions to the true labels.
// Ties are reported under the NoClass prediction.
func ConfusionMatrix(m *Model, ds *model.Dataset) (evaluation.ConfusionMatrix, error) {
	ref, err := ToInstances(ds)
	if err != nil {
		return nil, err
	}

	predictions := base.GeneratePredictionVector(ref)
	for r, inst := range ds.Instances {
		label, ok, err := m.Classify(inst)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", r, err)
		}
		class := NoClass
		if ok {
			class = label.String()
		}
		base.SetClass(predictions, r, class)
	}

	cf, err := evaluation.GetConfusionMatrix(ref, predictions)
	if err != nil {
		return nil, fmt.Errorf("could not get confusion matrix: %w", err)
	}
	return cf, nil
}
