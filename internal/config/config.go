package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gaharness/internal/paramset"
	"gaharness/internal/runreport"
	"gaharness/internal/storage"
)

// Config holds the harness settings loaded from a YAML file. Fields left out of
// the file keep their defaults.
type Config struct {
	Aggregate AggregateConfig  `yaml:"aggregate"`
	Store     StoreConfig      `yaml:"store"`
	Batches   []paramset.Batch `yaml:"batches"`
}

type AggregateConfig struct {
	Dir          string   `yaml:"dir"`
	Prefixes     []string `yaml:"prefixes"`
	PrefixLength int      `yaml:"prefix_length"`
	Runs         int      `yaml:"runs"`
	Generations  int      `yaml:"generations"`
	Selection    string   `yaml:"selection"`
}

type StoreConfig struct {
	Kind   string `yaml:"kind"`
	DBPath string `yaml:"db_path"`
}

func Default() Config {
	return Config{
		Aggregate: AggregateConfig{
			Dir:          ".",
			Prefixes:     runreport.DefaultPrefixes(),
			PrefixLength: runreport.DefaultPrefixLength,
			Runs:         runreport.DefaultRuns,
			Generations:  runreport.DefaultGenerations,
			Selection:    string(runreport.SelectAuto),
		},
		Store: StoreConfig{
			Kind:   storage.DefaultStoreKind(),
			DBPath: "gaharness.db",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, b := range cfg.Batches {
		if b.Name == "" {
			return Config{}, fmt.Errorf("parse config %s: batch name is required", path)
		}
	}
	return cfg, nil
}

// Batch resolves name against the configured batches first, then the
// built-in presets.
func (c Config) Batch(name string) (paramset.Batch, error) {
	for _, b := range c.Batches {
		if b.Name == name {
			return b, nil
		}
	}
	return paramset.Preset(name)
}

func (c Config) BatchNames() []string {
	names := make([]string, 0, len(c.Batches))
	for _, b := range c.Batches {
		names = append(names, b.Name)
	}
	return names
}

func (a AggregateConfig) Options() (runreport.Options, error) {
	selection, err := runreport.ParseSelection(a.Selection)
	if err != nil {
		return runreport.Options{}, err
	}
	opts := runreport.Options{
		Prefixes:     append([]string(nil), a.Prefixes...),
		PrefixLength: a.PrefixLength,
		Runs:         a.Runs,
		Generations:  a.Generations,
		Selection:    selection,
	}
	if err := opts.Validate(); err != nil {
		return runreport.Options{}, err
	}
	return opts, nil
}
