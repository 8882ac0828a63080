package storage

import (
	"errors"
	"fmt"
)

const (
	ResultDir = "results"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key of a run artifact.
// Name groups the runs of the same experiment, Run identifies a single run
// and Label the artifact within the run.
type Key struct {
	Name  string `json:"name"`
	Run   string `json:"run"`
	Label string `json:"label"`
}

// Path returns the flat file name of the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s_%s", k.Name, k.Run, k.Label)
}

// Persistence stores and loads artifacts by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
