package ml

import (
	"testing"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstances(t *testing.T) {
	ds := trainingSet(t)
	instances, err := ToInstances(ds)
	require.NoError(t, err)

	cols, rows := instances.Size()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 4, rows)

	classes := instances.AllClassAttributes()
	require.Len(t, classes, 1)
	assert.Equal(t, "Class", classes[0].GetName())

	for r, inst := range ds.Instances {
		assert.Equal(t, inst.Label.String(), base.GetClass(instances, r))
	}
}

func TestConfusionMatrix(t *testing.T) {
	ds := trainingSet(t)
	m, err := Build(ds)
	require.NoError(t, err)

	cf, err := ConfusionMatrix(m, ds)
	require.NoError(t, err)

	assert.Equal(t, 2, cf["1"]["1"])
	assert.Equal(t, 2, cf["0"]["0"])
	assert.Equal(t, 0, cf["1"]["0"])
	assert.Equal(t, 1.0, evaluation.GetAccuracy(cf))
}

func TestConfusionMatrix_Tie(t *testing.T) {
	ds := tieSet(t)
	m, err := Build(ds)
	require.NoError(t, err)

	cf, err := ConfusionMatrix(m, ds)
	require.NoError(t, err)

	assert.Equal(t, 2, cf["1"][NoClass])
	assert.Equal(t, 2, cf["0"][NoClass])
	assert.Equal(t, 0.0, evaluation.GetAccuracy(cf))
}
