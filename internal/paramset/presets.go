package paramset

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]func() Batch{
	"ppi":   PPIBatch,
	"games": GamesBatch,
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Preset(name string) (Batch, error) {
	build, ok := presets[name]
	if !ok {
		return Batch{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return build(), nil
}

// PPIBatch covers the protein-interaction networks.
func PPIBatch() Batch {
	return Batch{
		Name:      "ppi",
		Extension: DefaultExtension,
		Scenarios: []Scenario{
			{Name: "ecoli", Source: "ecoli.txt"},
			{Name: "yeast", Source: "yeast.txt"},
			{Name: "figeys", Source: "figeys.txt"},
		},
		Constants: Params{
			P("generations", 500),
			P("population", 100),
			P("tournament", 5),
			P("runs", 5),
			P("elites", 1),
		},
		Sets: []Params{
			{P("compression", 0.25), P("mutation", 0.10), P("crossover", 0.90), P("maxDistance", 10)},
			{P("compression", 0.10), P("mutation", 0.10), P("crossover", 0.90), P("maxDistance", 5)},
			{P("compression", 0.20), P("mutation", 0.10), P("crossover", 0.90), P("maxDistance", 5)},
			{P("compression", 0.25), P("mutation", 0.10), P("crossover", 0.90), P("maxDistance", 5)},
			{P("compression", 0.25), P("mutation", 0.10), P("crossover", 0.90), P("maxDistance", 3)},
			{P("compression", 0.10), P("mutation", 0.10), P("crossover", 0.90), P("maxDistance", 3)},
			{P("compression", 0.20), P("mutation", 0.10), P("crossover", 0.90), P("maxDistance", 3)},
		},
	}
}

// GamesBatch covers the game-world graphs. Mutation and crossover are fixed,
// so the sets only vary compression and neighbour distance.
func GamesBatch() Batch {
	return Batch{
		Name:      "games",
		Extension: DefaultExtension,
		Scenarios: []Scenario{
			{Name: "fallout_4", Source: "fallout4.txt"},
			{Name: "fallout_nv", Source: "falloutNV.txt"},
			{Name: "skyrim", Source: "Skyrim.txt"},
			{Name: "oblivion", Source: "Oblivion.txt"},
		},
		Constants: Params{
			P("generations", 500),
			P("population", 100),
			P("tournament", 5),
			P("runs", 10),
			P("elites", 1),
			P("mutation", 0.10),
			P("crossover", 0.90),
		},
		Sets: []Params{
			{P("compression", 0.10), P("maxDistance", 3)},
			{P("compression", 0.25), P("maxDistance", 3)},
			{P("compression", 0.10), P("maxDistance", 3)},
			{P("compression", 0.10), P("maxDistance", 5)},
			{P("compression", 0.25), P("maxDistance", 5)},
			{P("compression", 0.40), P("maxDistance", 5)},
		},
	}
}
