package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/drakos74/free-bayes/infra/config"
	"github.com/drakos74/free-bayes/internal/math/ml"
	"github.com/drakos74/free-bayes/internal/metrics"
	"github.com/drakos74/free-bayes/internal/model"
	"github.com/drakos74/free-bayes/internal/report"
	"github.com/drakos74/free-bayes/internal/storage/file"
	jsonstorage "github.com/drakos74/free-bayes/internal/storage/file/json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const program = "bayes"

type args struct {
	Files     []string `arg:"positional" placeholder:"FILE" help:"training file followed by testing file"`
	Config    string   `help:"json config file"`
	SaveModel string   `arg:"--save-model" help:"directory to store the trained model in"`
	LoadModel string   `arg:"--load-model" placeholder:"FILE" help:"saved model file to evaluate instead of training one"`
	Summary   bool     `help:"print the confusion matrix summary after each accuracy line"`
	Metrics   string   `help:"address to serve prometheus metrics on e.g. :6021, the final values are also logged on exit"`
	Verbose   bool     `arg:"-v" help:"debug logging"`
}

func (args) Description() string {
	return "Trains a binary naive bayes classifier and reports its accuracy on the training and testing data."
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var a args
	parser, err := arg.NewParser(arg.Config{Program: program}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return 1
	}

	err = parser.Parse(argv)
	if err != nil || len(a.Files) != 2 {
		if err != nil && err != arg.ErrHelp {
			fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		}
		_ = report.Usage(stdout, program)
		parser.WriteHelp(stdout)
		return 0
	}

	cfg := config.Default()
	if a.Config != "" {
		if err := config.Load(a.Config, &cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err.Error())
			return 1
		}
	}
	if a.SaveModel != "" {
		cfg.ModelDir = a.SaveModel
	}
	if a.Summary {
		cfg.Summary = true
	}
	if a.Metrics != "" {
		cfg.MetricsAddr = a.Metrics
	}
	if a.Verbose {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("could not serve metrics")
			}
		}()
	}

	if err := execute(a.Files[0], a.Files[1], a.LoadModel, cfg, stdout); err != nil {
		if errors.Is(err, ml.AttributeMismatchErr) {
			fmt.Fprintln(stderr, "Error: Mismatched Attributes, are you sure you selected the proper training/testing pair?")
		}
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return 1
	}

	if cfg.MetricsAddr != "" {
		if err := metrics.Flush(log.Logger); err != nil {
			log.Error().Err(err).Msg("could not flush metrics")
		}
	}
	return 0
}

func execute(trainingFile, testingFile, modelFile string, cfg config.Config, stdout io.Writer) error {
	training, err := file.LoadDataset(trainingFile)
	if err != nil {
		return err
	}
	testing, err := file.LoadDataset(testingFile)
	if err != nil {
		return err
	}

	var m *ml.Model
	if modelFile != "" {
		m, err = load(modelFile)
		if err != nil {
			return err
		}
		log.Info().Str("model", m.ID()).Str("file", modelFile).Msg("loaded model")
	} else {
		m, err = ml.Build(training)
		if err != nil {
			return err
		}
		log.Info().Str("model", m.ID()).Str("file", trainingFile).Msg("trained model")
		if cfg.ModelDir != "" {
			if err := save(cfg.ModelDir, m); err != nil {
				return err
			}
		}
	}

	if err := report.Probabilities(stdout, m); err != nil {
		return err
	}

	sets := map[string]*model.Dataset{
		report.Training: training,
		report.Testing:  testing,
	}
	reports, err := ml.EvaluateAll(m,
		ml.Target{Label: report.Training, Dataset: training},
		ml.Target{Label: report.Testing, Dataset: testing},
	)
	if err != nil {
		return err
	}

	for _, r := range reports {
		if err := report.Accuracy(stdout, r); err != nil {
			return err
		}
		if cfg.Summary {
			cf, err := ml.ConfusionMatrix(m, sets[r.Label])
			if err != nil {
				return err
			}
			if err := report.Summary(stdout, cf); err != nil {
				return err
			}
		}
	}
	return nil
}

func save(dir string, m *ml.Model) error {
	persistence, err := jsonstorage.BlobShard(dir)("")
	if err != nil {
		return err
	}
	k, err := ml.Save(persistence, m)
	if err != nil {
		return err
	}
	log.Info().Str("model", m.ID()).Str("dir", dir).Str("file", k.Path()).Msg("saved model")
	return nil
}

// load restores a model from the json file written by save.
func load(modelFile string) (*ml.Model, error) {
	persistence, err := jsonstorage.BlobShard(filepath.Dir(modelFile))("")
	if err != nil {
		return nil, err
	}
	id := strings.TrimSuffix(filepath.Base(modelFile), filepath.Ext(modelFile))
	return ml.Load(persistence, id)
}
