package paramset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const DefaultExtension = "dat"

// Scenario names one input graph and the file the GA engine loads it from.
type Scenario struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// Batch is one generator invocation: every scenario is paired with every
// parameter set, constants first.
type Batch struct {
	Name      string     `yaml:"name"`
	Extension string     `yaml:"extension,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
	Constants Params     `yaml:"constants"`
	Sets      []Params   `yaml:"sets"`
}

// ConfigFile is one file a batch produces.
type ConfigFile struct {
	Name     string
	Scenario Scenario
	SetIndex int
	Params   Params
}

func (b Batch) Validate() error {
	if strings.ContainsAny(b.extension(), `/\`) {
		return fmt.Errorf("batch %s: invalid extension %q", b.Name, b.Extension)
	}
	seen := make(map[string]struct{}, len(b.Scenarios))
	for i, sc := range b.Scenarios {
		if strings.TrimSpace(sc.Name) == "" {
			return fmt.Errorf("batch %s: scenario %d name is required", b.Name, i)
		}
		if strings.ContainsAny(sc.Name, `/\ `) {
			return fmt.Errorf("batch %s: invalid scenario name %q", b.Name, sc.Name)
		}
		if strings.TrimSpace(sc.Source) == "" {
			return fmt.Errorf("batch %s: scenario %s source is required", b.Name, sc.Name)
		}
		if _, ok := seen[sc.Name]; ok {
			return fmt.Errorf("batch %s: duplicate scenario %s", b.Name, sc.Name)
		}
		seen[sc.Name] = struct{}{}
	}
	if err := b.Constants.Validate(); err != nil {
		return fmt.Errorf("batch %s constants: %w", b.Name, err)
	}
	for i, set := range b.Sets {
		if err := set.Validate(); err != nil {
			return fmt.Errorf("batch %s set %d: %w", b.Name, i+1, err)
		}
	}
	return nil
}

func (b Batch) extension() string {
	if b.Extension == "" {
		return DefaultExtension
	}
	return b.Extension
}

// FileName returns `{scenario}{index+1}.{ext}`.
func (b Batch) FileName(sc Scenario, setIndex int) string {
	return sc.Name + strconv.Itoa(setIndex+1) + "." + b.extension()
}

// Files expands the batch into its scenario × parameter-set product.
func (b Batch) Files() []ConfigFile {
	out := make([]ConfigFile, 0, len(b.Scenarios)*len(b.Sets))
	for _, sc := range b.Scenarios {
		for i, set := range b.Sets {
			out = append(out, ConfigFile{
				Name:     b.FileName(sc, i),
				Scenario: sc,
				SetIndex: i,
				Params:   Merge(b.Constants, set),
			})
		}
	}
	return out
}

// Lines renders the file body: outPrefix, source, then merged params.
func (f ConfigFile) Lines() []string {
	lines := make([]string, 0, 2+len(f.Params))
	lines = append(lines, "outPrefix "+f.Scenario.Name, "source "+f.Scenario.Source)
	for _, p := range f.Params {
		lines = append(lines, p.String())
	}
	return lines
}

func (f ConfigFile) Bytes() []byte {
	var sb strings.Builder
	for _, line := range f.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

type GenerateOptions struct {
	Dir    string
	Logger *zap.Logger
}

// Generate writes every file of the batch into opts.Dir, replacing existing
// files, and returns the written paths in generation order.
func Generate(b Batch, opts GenerateOptions) ([]string, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	for i, set := range b.Sets {
		if keys := Shadowed(b.Constants, set); len(keys) > 0 {
			logger.Debug("parameter set overrides constants",
				zap.String("batch", b.Name),
				zap.Int("set", i+1),
				zap.Strings("keys", keys),
			)
		}
	}

	files := b.Files()
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("write parameter file %s: %w", path, err)
		}
		logger.Debug("wrote parameter file",
			zap.String("path", path),
			zap.String("scenario", f.Scenario.Name),
			zap.Int("set", f.SetIndex+1),
			zap.Int("lines", 2+len(f.Params)),
			zap.Strings("keys", f.Params.Keys()),
		)
		paths = append(paths, path)
	}
	logger.Info("generated parameter files",
		zap.String("batch", b.Name),
		zap.String("dir", dir),
		zap.Int("files", len(paths)),
	)
	return paths, nil
}
