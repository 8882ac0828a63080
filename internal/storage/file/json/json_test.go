package json

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/roq/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type artifact struct {
	Errors  []float64 `json:"errors"`
	Indices []int     `json:"indices"`
}

func TestPersistence(t *testing.T) {

	type test struct {
		shard func(t *testing.T) storage.Shard
	}

	tests := map[string]test{
		"file": {
			shard: func(t *testing.T) storage.Shard {
				return FileShard(t.TempDir())
			},
		},
		"local": {
			shard: func(t *testing.T) storage.Shard {
				return LocalShard()
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := tt.shard(t)(storage.ResultDir)
			require.NoError(t, err)

			k := storage.Key{Name: "line", Run: "1", Label: "result"}
			a := artifact{
				Errors:  []float64{1, 0.5, 1e-12},
				Indices: []int{0, 7},
			}
			require.NoError(t, p.Store(k, a))

			var b artifact
			require.NoError(t, p.Load(k, &b))
			assert.Equal(t, a, b)

			err = p.Load(storage.Key{Name: "line", Run: "2", Label: "result"}, &b)
			assert.True(t, errors.Is(err, storage.NotFoundErr))
		})
	}
}

func TestFileStorage_Layout(t *testing.T) {
	root := t.TempDir()
	s := NewFileStorage(root)
	k := storage.Key{Name: "tone", Run: "abc", Label: "basis"}
	require.NoError(t, s.Store(k, []int{1, 2}))

	assert.Equal(t, filepath.Join(root, "tone", "tone_abc_basis.json"), s.File(k))
	_, err := os.Stat(s.File(k))
	assert.NoError(t, err)
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0600))

	var a artifact
	err := Load(dir, "bad.json", &a)
	assert.True(t, errors.Is(err, storage.CouldNotLoadErr))
}

func TestSave_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0600))

	err := Save(f, "a.json", artifact{})
	assert.Error(t, err)
}
