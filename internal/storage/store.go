package storage

import (
	"errors"
	"fmt"
)

const (
	ModelDir = "models"
)

var (
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a general implementation
type Key struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Path returns the file name stem for the key.
func (k Key) Path() string {
	if k.Label == "" {
		return k.Name
	}
	return fmt.Sprintf("%s_%s", k.Label, k.Name)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
