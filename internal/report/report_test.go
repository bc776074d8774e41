package report

import (
	"bytes"
	"testing"

	"github.com/drakos74/free-bayes/internal/math/ml"
	"github.com/drakos74/free-bayes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedModel(t *testing.T) (*ml.Model, *model.Dataset) {
	ds, err := model.NewDataset("training", []string{"A", "B", "Class"}, [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{0, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	m, err := ml.Build(ds)
	require.NoError(t, err)
	return m, ds
}

func TestProbabilities(t *testing.T) {
	m, _ := trainedModel(t)

	buffer := new(bytes.Buffer)
	require.NoError(t, Probabilities(buffer, m))

	expected := "P(Class=1)=0.50 P(A=1|1)=1.00 P(A=0|1)=0.00 P(B=1|1)=0.50 P(B=0|1)=0.50 \n" +
		"P(Class=0)=0.50 P(A=1|0)=0.00 P(A=0|0)=1.00 P(B=1|0)=0.50 P(B=0|0)=0.50 \n" +
		"\n"
	assert.Equal(t, expected, buffer.String())
}

func TestProbabilities_Complement(t *testing.T) {
	// 9 positives out of 100, 3 of them with A=1 and 1 negative with A=1
	rows := make([][]int, 100)
	for i := range rows {
		switch {
		case i < 3:
			rows[i] = []int{1, 1}
		case i < 9:
			rows[i] = []int{0, 1}
		case i == 9:
			rows[i] = []int{1, 0}
		default:
			rows[i] = []int{0, 0}
		}
	}
	ds, err := model.NewDataset("training", []string{"A", "C"}, rows)
	require.NoError(t, err)
	m, err := ml.Build(ds)
	require.NoError(t, err)

	buffer := new(bytes.Buffer)
	require.NoError(t, Probabilities(buffer, m))
	assert.Equal(t, "P(C=1)=0.09 P(A=1|1)=0.33 P(A=0|1)=0.67 \n"+
		"P(C=0)=0.91 P(A=1|0)=0.01 P(A=0|0)=0.99 \n\n", buffer.String())
}

func TestAccuracy(t *testing.T) {

	type test struct {
		report   ml.AccuracyReport
		expected string
	}

	tests := map[string]test{
		"full": {
			report:   ml.AccuracyReport{Label: Training, Total: 4, Correct: 4, Percent: 100},
			expected: "Accuracy on training set (4 instances): 100.0%\n\n",
		},
		"partial": {
			report:   ml.AccuracyReport{Label: Testing, Total: 3, Correct: 2, Percent: 66.7},
			expected: "Accuracy on testing set (3 instances): 66.7%\n\n",
		},
		"none": {
			report:   ml.AccuracyReport{Label: Testing, Total: 7, Percent: 0},
			expected: "Accuracy on testing set (7 instances): 0.0%\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buffer := new(bytes.Buffer)
			require.NoError(t, Accuracy(buffer, tt.report))
			assert.Equal(t, tt.expected, buffer.String())
		})
	}
}

func TestSummary(t *testing.T) {
	m, ds := trainedModel(t)
	cf, err := ml.ConfusionMatrix(m, ds)
	require.NoError(t, err)

	buffer := new(bytes.Buffer)
	require.NoError(t, Summary(buffer, cf))
	assert.Contains(t, buffer.String(), "Overall accuracy")
}

func TestUsage(t *testing.T) {
	buffer := new(bytes.Buffer)
	require.NoError(t, Usage(buffer, "bayes"))
	assert.Equal(t, "Bayesian Learning Program\n\nUsage: bayes <TrainingFile> <TestingFile>\n", buffer.String())
}
