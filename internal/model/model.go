package model

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	InvalidValueErr     = errors.New("invalid binary value")
	MissingAttributeErr = errors.New("missing attribute")
)

// Label defines the binary class of an instance.
type Label int

const (
	// Negative is the class label 0
	Negative Label = 0
	// Positive is the class label 1
	Positive Label = 1
)

// Labels lists the class labels in report order.
var Labels = []Label{Positive, Negative}

// NewLabel creates a label from its numeric value.
func NewLabel(v int) (Label, error) {
	switch v {
	case 0:
		return Negative, nil
	case 1:
		return Positive, nil
	}
	return Negative, fmt.Errorf("label '%d': %w", v, InvalidValueErr)
}

func (l Label) String() string {
	return strconv.Itoa(int(l))
}

// Instance is a single data row, the attribute values and the class label.
type Instance struct {
	Values map[string]int `json:"values"`
	Label  Label          `json:"label"`
}

// Value returns the value of the given attribute for this instance.
func (i Instance) Value(attribute string) (int, bool) {
	v, ok := i.Values[attribute]
	return v, ok
}
