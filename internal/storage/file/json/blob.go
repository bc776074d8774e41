package json

import (
	"fmt"
	"path/filepath"

	"github.com/drakos74/free-bayes/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage stores every key as a json file under <path>/<shard>.
type BlobStorage struct {
	path  string
	shard string
}

// BlobShard creates json file storages under the given root directory.
func BlobShard(root string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(root, shard), nil
	}
}

// NewJsonBlob creates a new json file storage.
// shard is a logical split under the root path
func NewJsonBlob(root, shard string) *BlobStorage {
	if root == "" {
		root = storage.DefaultDir
	}
	return &BlobStorage{
		path:  root,
		shard: shard,
	}
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := filepath.Join(s.path, s.shard)
	err := Save(p, fileName(k), value)
	if err != nil {
		return err
	}
	log.Debug().Str("path", p).Str("file", fileName(k)).Msg("stored json file")
	return nil
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(filepath.Join(s.path, s.shard), fileName(k), value)
}

func fileName(k storage.Key) string {
	return fmt.Sprintf("%s.json", k.Path())
}
