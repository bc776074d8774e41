package math

import (
	"errors"
	"math"
	"strconv"
)

// DivisionByZeroErr is returned when a ratio is requested over an empty population.
var DivisionByZeroErr = errors.New("division by zero")

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Round rounds half away from zero to the given number of decimal places.
// The value is scaled, rounded and scaled back i.e. round(f*10^prec)/10^prec.
func Round(f float64, prec int) float64 {
	pow := math.Pow10(prec)
	return math.Round(f*pow) / pow
}

// Round2 rounds to 2 decimal places.
func Round2(f float64) float64 {
	return Round(f, 2)
}

// Round1 rounds to 1 decimal place.
func Round1(f float64) float64 {
	return Round(f, 1)
}

// Ratio returns count/denom.
func Ratio(count, denom int) (float64, error) {
	if denom == 0 {
		return 0, DivisionByZeroErr
	}
	return float64(count) / float64(denom), nil
}

// Estimate returns the pair (P(0), P(1)) for count hits out of denom trials.
// Only P(1) is rounded, P(0) is derived as 1-P(1), so that the pair always adds up to 1.
func Estimate(count, denom int) (float64, float64, error) {
	r, err := Ratio(count, denom)
	if err != nil {
		return 0, 0, err
	}
	p1 := Round2(r)
	return 1 - p1, p1, nil
}

// Percent returns the percentage of count out of total, rounded to 1 decimal place.
func Percent(count, total int) (float64, error) {
	r, err := Ratio(count, total)
	if err != nil {
		return 0, err
	}
	return Round1(r * 100), nil
}
