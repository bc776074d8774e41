package model

import (
	"fmt"
)

// Dataset is an in-memory table of instances.
// Attributes keeps the order of the source schema and excludes the class label.
type Dataset struct {
	Name       string     `json:"name"`
	ClassName  string     `json:"class"`
	Attributes []string   `json:"attributes"`
	Instances  []Instance `json:"instances"`
}

// NewDataset creates a dataset from a header and raw rows.
// The last header name and the last column of each row are the class label.
func NewDataset(name string, header []string, rows [][]int) (*Dataset, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("dataset '%s' has no class column: %w", name, MissingAttributeErr)
	}
	n := len(header) - 1
	attributes := make([]string, n)
	copy(attributes, header[:n])

	instances := make([]Instance, len(rows))
	for r, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("dataset '%s' row %d has %d values for %d columns: %w",
				name, r, len(row), len(header), InvalidValueErr)
		}
		label, err := NewLabel(row[n])
		if err != nil {
			return nil, fmt.Errorf("dataset '%s' row %d: %w", name, r, err)
		}
		values := make(map[string]int, n)
		for i, a := range attributes {
			if row[i] != 0 && row[i] != 1 {
				return nil, fmt.Errorf("dataset '%s' row %d attribute '%s' = %d: %w",
					name, r, a, row[i], InvalidValueErr)
			}
			values[a] = row[i]
		}
		instances[r] = Instance{
			Values: values,
			Label:  label,
		}
	}

	return &Dataset{
		Name:       name,
		ClassName:  header[n],
		Attributes: attributes,
		Instances:  instances,
	}, nil
}

// Total returns the number of instances.
func (d *Dataset) Total() int {
	return len(d.Instances)
}

// Count returns the number of instances with the given label.
func (d *Dataset) Count(label Label) int {
	c := 0
	for _, inst := range d.Instances {
		if inst.Label == label {
			c++
		}
	}
	return c
}

// Positives returns the number of instances with class 1.
func (d *Dataset) Positives() int {
	return d.Count(Positive)
}

// Negatives returns the number of instances with class 0.
func (d *Dataset) Negatives() int {
	return d.Total() - d.Positives()
}

// Subset returns the instances with the given label, in order.
func (d *Dataset) Subset(label Label) []Instance {
	ii := make([]Instance, 0)
	for _, inst := range d.Instances {
		if inst.Label == label {
			ii = append(ii, inst)
		}
	}
	return ii
}

// Validate checks that every instance carries exactly the dataset attributes with binary values.
func (d *Dataset) Validate() error {
	for r, inst := range d.Instances {
		if inst.Label != Negative && inst.Label != Positive {
			return fmt.Errorf("instance %d label '%d': %w", r, inst.Label, InvalidValueErr)
		}
		if len(inst.Values) != len(d.Attributes) {
			return fmt.Errorf("instance %d has %d attributes, expected %d: %w",
				r, len(inst.Values), len(d.Attributes), MissingAttributeErr)
		}
		for _, a := range d.Attributes {
			v, ok := inst.Value(a)
			if !ok {
				return fmt.Errorf("instance %d attribute '%s': %w", r, a, MissingAttributeErr)
			}
			if v != 0 && v != 1 {
				return fmt.Errorf("instance %d attribute '%s' = %d: %w", r, a, v, InvalidValueErr)
			}
		}
	}
	return nil
}
