package json

import (
	"fmt"
	"path/filepath"

	"github.com/drakos74/roq/internal/storage"
)

// FileShard creates file storages under the given root, one directory per shard.
func FileShard(root string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewFileStorage(filepath.Join(root, shard)), nil
	}
}

// FileStorage stores every key as an indented json file.
// Keys are grouped in one directory per name.
type FileStorage struct {
	root string
}

// NewFileStorage creates a file storage rooted at the given directory.
func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) dir(k storage.Key) string {
	return filepath.Join(s.root, k.Name)
}

// File returns the file the key is stored in.
func (s *FileStorage) File(k storage.Key) string {
	return filepath.Join(s.dir(k), fileName(k))
}

func (s *FileStorage) Store(k storage.Key, value interface{}) error {
	if err := Save(s.dir(k), fileName(k), value); err != nil {
		return fmt.Errorf("could not store '%+v': %w", k, err)
	}
	return nil
}

func (s *FileStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.dir(k), fileName(k), value)
}

func fileName(k storage.Key) string {
	return fmt.Sprintf("%s.json", k.Path())
}
