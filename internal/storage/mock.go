package storage

import (
	"fmt"
	"reflect"
)

// MockStorage keeps the stored values for inspection.
type MockStorage struct {
	Elements map[Key]interface{}
}

func NewMockStorage() *MockStorage {
	return &MockStorage{Elements: make(map[Key]interface{})}
}

func (m *MockStorage) Store(k Key, value interface{}) error {
	m.Elements[k] = value
	return nil
}

// Load copies the stored value into the given pointer.
func (m *MockStorage) Load(k Key, value interface{}) error {
	v, ok := m.Elements[k]
	if !ok {
		return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
	}
	target := reflect.ValueOf(value)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return fmt.Errorf("cannot load '%v' into %T: %w", k, value, CouldNotLoadErr)
	}
	source := reflect.ValueOf(v)
	if !source.Type().AssignableTo(target.Elem().Type()) {
		return fmt.Errorf("cannot load %T of '%v' into %T: %w", v, k, value, CouldNotLoadErr)
	}
	target.Elem().Set(source)
	return nil
}
