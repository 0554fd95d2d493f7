package runreport

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultRuns         = 5
	DefaultGenerations  = 1000
	DefaultPrefixLength = 5
)

// Selection picks how run boundaries are located in an output table.
type Selection string

const (
	// SelectAuto uses the run column when the header has one.
	SelectAuto Selection = "auto"
	// SelectPosition takes row Generations*i-1 for run i.
	SelectPosition Selection = "position"
	// SelectRunColumn takes the last row carrying run id i.
	SelectRunColumn Selection = "run-column"
)

func ParseSelection(raw string) (Selection, error) {
	switch Selection(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SelectAuto:
		return SelectAuto, nil
	case SelectPosition, "positional":
		return SelectPosition, nil
	case SelectRunColumn, "run_column", "run":
		return SelectRunColumn, nil
	default:
		return "", fmt.Errorf("unsupported selection mode: %s", raw)
	}
}

func DefaultPrefixes() []string {
	return []string{"figey", "ecoli", "yeast"}
}

type Options struct {
	Prefixes     []string
	PrefixLength int
	Runs         int
	Generations  int
	Selection    Selection
	Logger       *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Prefixes:     DefaultPrefixes(),
		PrefixLength: DefaultPrefixLength,
		Runs:         DefaultRuns,
		Generations:  DefaultGenerations,
		Selection:    SelectAuto,
	}
}

func (o Options) Validate() error {
	if o.Runs <= 0 {
		return fmt.Errorf("runs must be > 0: %d", o.Runs)
	}
	if o.Generations < 0 {
		return fmt.Errorf("generations must be >= 0: %d", o.Generations)
	}
	if o.Generations == 0 && o.Selection == SelectPosition {
		return fmt.Errorf("positional selection requires generations > 0")
	}
	if o.PrefixLength <= 0 {
		return fmt.Errorf("prefix length must be > 0: %d", o.PrefixLength)
	}
	if _, err := ParseSelection(string(o.Selection)); err != nil {
		return err
	}
	return nil
}

// Matches reports whether the first PrefixLength characters of name are one
// of the recognised prefixes.
func (o Options) Matches(name string) bool {
	if len(name) < o.PrefixLength {
		return false
	}
	head := name[:o.PrefixLength]
	for _, prefix := range o.Prefixes {
		if head == prefix {
			return true
		}
	}
	return false
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
