package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaharness/internal/paramset"
	"gaharness/internal/runreport"
)

const sampleConfig = `
aggregate:
  prefixes: [skyri, oblivi]
  runs: 10
  selection: run-column
store:
  kind: sqlite
batches:
  - name: tiny
    extension: cfg
    scenarios:
      - {name: toy, source: toy.txt}
    constants:
      runs: 2
      mutation: 0.1
    sets:
      - {compression: 0.5, maxDistance: 2}
      - {runs: 3}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harness.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"skyri", "oblivi"}, cfg.Aggregate.Prefixes)
	assert.Equal(t, 10, cfg.Aggregate.Runs)
	assert.Equal(t, runreport.DefaultGenerations, cfg.Aggregate.Generations)
	assert.Equal(t, runreport.DefaultPrefixLength, cfg.Aggregate.PrefixLength)
	assert.Equal(t, "sqlite", cfg.Store.Kind)
	assert.Equal(t, "gaharness.db", cfg.Store.DBPath)

	opts, err := cfg.Aggregate.Options()
	require.NoError(t, err)
	assert.Equal(t, runreport.SelectRunColumn, opts.Selection)
	assert.Equal(t, 10, opts.Runs)
}

func TestLoadBatchKeepsOrderAndShadowing(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, []string{"tiny"}, cfg.BatchNames())

	b, err := cfg.Batch("tiny")
	require.NoError(t, err)
	files := b.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "toy2.cfg", files[1].Name)
	assert.Equal(t, []string{
		"outPrefix toy",
		"source toy.txt",
		"runs 3",
		"mutation 0.1",
	}, files[1].Lines())

	ppi, err := cfg.Batch("ppi")
	require.NoError(t, err)
	assert.Equal(t, "ppi", ppi.Name)

	_, err = cfg.Batch("missing")
	require.ErrorIs(t, err, paramset.ErrUnknownPreset)
}

func TestLoadDefaultsAndErrors(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "aggregate: [\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "batches:\n  - extension: dat\n"))
	require.Error(t, err)

	cfg, err = Load(writeConfig(t, "aggregate:\n  runs: 0\n"))
	require.NoError(t, err)
	_, err = cfg.Aggregate.Options()
	require.Error(t, err)
}
