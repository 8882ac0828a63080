package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/roq/internal/experiment"
	"github.com/drakos74/roq/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {

	type test struct {
		file   string
		family model.Kind
		dim    int
	}

	tests := map[string]test{
		"line":     {file: "line.json", family: model.LineKind, dim: 2},
		"phase":    {file: "phase.json", family: model.SinusoidKind, dim: 4},
		"tone":     {file: "tone.yaml", family: model.ToneKind, dim: 1},
		"spectral": {file: "spectral.json", family: model.SpectralKind, dim: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var cfg experiment.Config
			require.NoError(t, Load(tt.file, &cfg))
			assert.Equal(t, name, cfg.Name)
			assert.Equal(t, tt.family, cfg.Family)
			assert.Equal(t, tt.dim, len(cfg.Training.Ranges))
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestLoad_YamlMatchesJson(t *testing.T) {
	dir := t.TempDir()
	y := filepath.Join(dir, "grid.yml")
	require.NoError(t, os.WriteFile(y, []byte("start: 1\nend: 2\nsamples: 3\nrule: cgl\n"), 0600))
	j := filepath.Join(dir, "grid.json")
	require.NoError(t, os.WriteFile(j, []byte(`{"start": 1, "end": 2, "samples": 3, "rule": "cgl"}`), 0600))

	var a, b model.Grid
	require.NoError(t, Load(y, &a))
	require.NoError(t, Load(j, &b))
	assert.Equal(t, a, b)
	assert.Equal(t, model.NewGrid(1, 2, 3).WithRule(model.CGLRule), a)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0600))
	toml := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(toml, []byte("name = 'x'"), 0600))

	var cfg experiment.Config
	assert.Error(t, Load(bad, &cfg))
	assert.Error(t, Load(filepath.Join(dir, "missing.json"), &cfg))
	assert.True(t, errors.Is(Load(toml, &cfg), UnknownFormatErr))
}
