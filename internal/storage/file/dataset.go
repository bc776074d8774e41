package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/free-bayes/internal/model"
	"github.com/rs/zerolog/log"
)

// MalformedInputErr signals a data file that does not follow the expected layout.
var MalformedInputErr = errors.New("malformed input")

// LoadDataset reads the dataset from the given file.
func LoadDataset(fileName string) (*model.Dataset, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open data file '%s': %w", fileName, err)
	}
	defer f.Close()

	ds, err := ParseDataset(f, fileName)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("file", fileName).
		Int("attributes", len(ds.Attributes)).
		Int("instances", ds.Total()).
		Msg("loaded dataset")

	return ds, nil
}

// ParseDataset parses whitespace separated tokens.
// The first line holds the attribute names with the class name last,
// every following line the 0/1 values in the same column order.
func ParseDataset(r io.Reader, name string) (*model.Dataset, error) {
	scanner := bufio.NewScanner(r)

	var header []string
	rows := make([][]int, 0)
	line := 0
	for scanner.Scan() {
		line++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if header == nil {
			seen := make(map[string]bool, len(tokens))
			for _, t := range tokens {
				if seen[t] {
					return nil, fmt.Errorf("'%s' line %d: duplicate name '%s': %w", name, line, t, MalformedInputErr)
				}
				seen[t] = true
			}
			header = tokens
			continue
		}
		if len(tokens) != len(header) {
			return nil, fmt.Errorf("'%s' line %d: found %d values for %d names: %w",
				name, line, len(tokens), len(header), MalformedInputErr)
		}
		row := make([]int, len(tokens))
		for i, t := range tokens {
			v, err := strconv.Atoi(t)
			if err != nil || (v != 0 && v != 1) {
				return nil, fmt.Errorf("'%s' line %d: value '%s' for '%s' is not 0 or 1: %w",
					name, line, t, header[i], MalformedInputErr)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read '%s': %w", name, err)
	}
	if header == nil {
		return nil, fmt.Errorf("'%s' has no attribute names: %w", name, MalformedInputErr)
	}

	ds, err := model.NewDataset(name, header, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), MalformedInputErr)
	}
	return ds, nil
}
