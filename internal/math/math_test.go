package math

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0.00",
		},
		"-1": {
			input:  -1,
			output: "-1.00",
		},
		"+1": {
			input:  1,
			output: "1.00",
		},
		"5": {
			input:  1.5555,
			output: "1.56",
		},
		"4": {
			input:  1.4444,
			output: "1.44",
		},
		"complement": {
			input:  1 - 0.57,
			output: "0.43",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Format(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestRound2(t *testing.T) {

	type test struct {
		input  float64
		output float64
	}

	tests := map[string]test{
		"0":          {input: 0, output: 0},
		"1":          {input: 1, output: 1},
		"half-up":    {input: 0.125, output: 0.13},
		"half-neg":   {input: -0.125, output: -0.13},
		"down":       {input: 0.124, output: 0.12},
		"third":      {input: 1.0 / 3.0, output: 0.33},
		"two-thirds": {input: 2.0 / 3.0, output: 0.67},
		"0.875":      {input: 0.875, output: 0.88},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, Round2(tt.input))
		})
	}

}

func TestRound1(t *testing.T) {

	type test struct {
		input  float64
		output float64
	}

	tests := map[string]test{
		"100":   {input: 100, output: 100},
		"half":  {input: 62.5, output: 62.5},
		"66.67": {input: 2.0 / 3.0 * 100, output: 66.7},
		"12.25": {input: 12.25, output: 12.3},
		"0.05":  {input: 0.05, output: 0.1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, Round1(tt.input))
		})
	}

}

func TestRound2_Idempotent(t *testing.T) {
	for denom := 1; denom <= 250; denom++ {
		for count := 0; count <= denom; count++ {
			r := float64(count) / float64(denom)
			once := Round2(r)
			assert.Equal(t, once, Round2(once), fmt.Sprintf("%d/%d", count, denom))
		}
	}
}

func TestEstimate(t *testing.T) {

	type test struct {
		count int
		denom int
		p0    float64
		p1    float64
		err   error
	}

	tests := map[string]test{
		"all": {
			count: 4, denom: 4,
			p0: 0, p1: 1,
		},
		"none": {
			count: 0, denom: 4,
			p0: 1, p1: 0,
		},
		"half": {
			count: 2, denom: 4,
			p0: 0.5, p1: 0.5,
		},
		"boundary": {
			count: 1, denom: 8,
			p0: 1 - 0.13, p1: 0.13,
		},
		"empty": {
			count: 0, denom: 0,
			err: DivisionByZeroErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p0, p1, err := Estimate(tt.count, tt.denom)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.p0, p0)
			assert.Equal(t, tt.p1, p1)
		})
	}

}

func TestEstimate_Boundary(t *testing.T) {
	// the complement is derived, not rounded on its own
	p0, p1, err := Estimate(1, 8)
	assert.NoError(t, err)
	assert.Equal(t, "0.13", Format(p1))
	assert.Equal(t, "0.87", Format(p0))
	assert.Equal(t, 0.88, Round2(0.875))
}

func TestEstimate_PairSumsToOne(t *testing.T) {
	for denom := 1; denom <= 250; denom++ {
		for count := 0; count <= denom; count++ {
			p0, p1, err := Estimate(count, denom)
			assert.NoError(t, err)
			assert.Equal(t, 1.0, floats.Sum([]float64{p0, p1}), fmt.Sprintf("%d/%d", count, denom))
		}
	}
}

func TestPercent(t *testing.T) {

	type test struct {
		count int
		total int
		pct   float64
		err   error
	}

	tests := map[string]test{
		"all":    {count: 4, total: 4, pct: 100},
		"two-3":  {count: 2, total: 3, pct: 66.7},
		"one-8":  {count: 1, total: 8, pct: 12.5},
		"none":   {count: 0, total: 7, pct: 0},
		"empty":  {count: 0, total: 0, err: DivisionByZeroErr},
		"one-3":  {count: 1, total: 3, pct: 33.3},
		"five-6": {count: 5, total: 6, pct: 83.3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pct, err := Percent(tt.count, tt.total)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.pct, pct)
		})
	}

}
