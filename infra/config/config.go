package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the run options that can be provided through a json file.
type Config struct {
	ModelDir    string `json:"model_dir"`
	Summary     bool   `json:"summary"`
	MetricsAddr string `json:"metrics_addr"`
	LogLevel    string `json:"log_level"`
}

// Default returns the default run configuration.
func Default() Config {
	return Config{
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Level returns the configured log level, falling back to warn.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return level
}

// Load loads the json config from the given file on top of the given value.
func Load(fileName string, v interface{}) error {

	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("could not load config from %s: %w", fileName, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config from %s: %w", fileName, err)
	}

	log.Info().Str("file", fileName).Msg("loaded config")

	return nil

}
