package report

import (
	"fmt"
	"io"
	"strings"

	coinmath "github.com/drakos74/free-bayes/internal/math"
	"github.com/drakos74/free-bayes/internal/math/ml"
	"github.com/drakos74/free-bayes/internal/model"
	"github.com/sjwhitworth/golearn/evaluation"
)

const (
	Training = "training"
	Testing  = "testing"
)

// Usage writes the program banner and usage line.
func Usage(w io.Writer, program string) error {
	_, err := fmt.Fprintf(w, "Bayesian Learning Program\n\nUsage: %s <TrainingFile> <TestingFile>\n", program)
	return err
}

// Probabilities writes one line per class, positive first,
// with the class prior followed by the conditional probabilities of every attribute.
func Probabilities(w io.Writer, m *ml.Model) error {
	_, err := io.WriteString(w, formatProbabilities(m))
	return err
}

func formatProbabilities(m *ml.Model) string {
	buffer := new(strings.Builder)
	for _, label := range model.Labels {
		buffer.WriteString(fmt.Sprintf("P(%s=%s)=%s ", m.ClassName(), label, coinmath.Format(m.Prior(label))))
		for _, a := range m.Attributes() {
			p, _ := m.Conditional(label, a)
			buffer.WriteString(fmt.Sprintf("P(%s=1|%s)=%s ", a, label, coinmath.Format(p.Of(1))))
			buffer.WriteString(fmt.Sprintf("P(%s=0|%s)=%s ", a, label, coinmath.Format(p.Of(0))))
		}
		buffer.WriteString("\n")
	}
	buffer.WriteString("\n")
	return buffer.String()
}

// Accuracy writes the accuracy line of an evaluation.
func Accuracy(w io.Writer, r ml.AccuracyReport) error {
	_, err := io.WriteString(w, formatAccuracy(r))
	return err
}

func formatAccuracy(r ml.AccuracyReport) string {
	return fmt.Sprintf("Accuracy on %s set (%d instances): %.1f%%\n\n", r.Label, r.Total, r.Percent)
}

// Summary writes the golearn confusion matrix summary.
func Summary(w io.Writer, cf evaluation.ConfusionMatrix) error {
	_, err := fmt.Fprintf(w, "%s\n", evaluation.GetSummary(cf))
	return err
}
