package runreport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gaharness/internal/model"
	"gaharness/internal/runtable"
)

// Metadata describes the scenario and GA configuration of one output file.
type Metadata = model.RunMetadata

type Report struct {
	File       string    `json:"file"`
	Index      int       `json:"index"`
	Total      int       `json:"total"`
	Meta       Metadata  `json:"meta"`
	RunBest    []float64 `json:"run_best"`
	GlobalBest float64   `json:"global_best"`
	Average    float64   `json:"average"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
	StdDev     float64   `json:"std_dev"`
}

// Summarize selects the run rows of table and derives the report. Metadata
// comes from the first run, the global best from the last; the average is the
// float mean of the run bests.
func Summarize(table *runtable.Table, opts Options) (Report, error) {
	rows, err := SelectRuns(table, opts)
	if err != nil {
		return Report{}, fmt.Errorf("summarize %s: %w", table.Name, err)
	}

	report := Report{File: table.Name}
	if report.Meta, err = readMetadata(rows[0]); err != nil {
		return Report{}, fmt.Errorf("summarize %s: %w", table.Name, err)
	}
	if report.GlobalBest, err = rows[len(rows)-1].Float(runtable.ColGlobalBestFitness); err != nil {
		return Report{}, fmt.Errorf("summarize %s: %w", table.Name, err)
	}

	report.RunBest = make([]float64, 0, len(rows))
	for _, row := range rows {
		best, err := row.Float(runtable.ColRunBestFitness)
		if err != nil {
			return Report{}, fmt.Errorf("summarize %s: %w", table.Name, err)
		}
		report.RunBest = append(report.RunBest, best)
	}
	report.Average = stat.Mean(report.RunBest, nil)
	report.Min = floats.Min(report.RunBest)
	report.Max = floats.Max(report.RunBest)
	report.StdDev = stat.PopStdDev(report.RunBest, nil)
	return report, nil
}

func readMetadata(row runtable.Row) (Metadata, error) {
	var meta Metadata
	fields := []struct {
		col string
		dst *string
	}{
		{runtable.ColSource, &meta.Source},
		{runtable.ColGraphSize, &meta.GraphSize},
		{runtable.ColCompressionRate, &meta.CompressionRate},
		{runtable.ColElitismRate, &meta.ElitismRate},
		{runtable.ColTournamentSize, &meta.TournamentSize},
		{runtable.ColMutationRate, &meta.MutationRate},
		{runtable.ColCrossoverRate, &meta.CrossoverRate},
		{runtable.ColMaximumDistance, &meta.MaximumDistance},
	}
	for _, f := range fields {
		v, err := row.String(f.col)
		if err != nil {
			return Metadata{}, err
		}
		*f.dst = v
	}
	return meta, nil
}

type WriteOptions struct {
	// Stats appends min, max and standard deviation of the run bests.
	Stats bool
}

// WriteReport prints the human-readable block for one file.
func WriteReport(w io.Writer, r Report, opts WriteOptions) error {
	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	line("#########################")
	line("Report %d/%d", r.Index, r.Total)
	line("File: %s", r.File)
	line("Source: %s", r.Meta.Source)
	line("Graph Size: %s", r.Meta.GraphSize)
	line("Compression Rate: %s", r.Meta.CompressionRate)
	line("Elitism Rate: %s", r.Meta.ElitismRate)
	line("Tournament Size: %s", r.Meta.TournamentSize)
	line("Mutation Rate: %s", r.Meta.MutationRate)
	line("Crossover Rate: %s", r.Meta.CrossoverRate)
	line("Maximum Neighbor Distance: %s", r.Meta.MaximumDistance)
	for i, best := range r.RunBest {
		line("Run %d Best Fitness: %s", i+1, FormatNumber(best))
	}
	line("#########")
	line("Global Best Fitness: %s", FormatNumber(r.GlobalBest))
	line("Best Fitness Average: %s", FormatNumber(r.Average))
	if opts.Stats {
		line("Best Fitness Min: %s", FormatNumber(r.Min))
		line("Best Fitness Max: %s", FormatNumber(r.Max))
		line("Best Fitness Std Dev: %s", FormatNumber(r.StdDev))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatNumber prints v rounded to six decimal places with trailing zeros
// removed: 30, 17.5, 0.333333. Magnitudes below 5e-7 print as 0; the stored
// summaries and the xlsx export keep full precision.
func FormatNumber(v float64) string {
	return humanize.Ftoa(v)
}

// ToSummary converts a report into the record a store persists.
func ToSummary(r Report, batchID string, opts Options, now time.Time) model.RunSummary {
	return model.RunSummary{
		ID:          model.SummaryID(batchID, r.File),
		BatchID:     batchID,
		File:        r.File,
		CreatedAt:   now.UTC().Format(time.RFC3339Nano),
		Runs:        opts.Runs,
		Generations: opts.Generations,
		Meta:        r.Meta,
		RunBest:     append([]float64(nil), r.RunBest...),
		GlobalBest:  r.GlobalBest,
		Average:     r.Average,
		Min:         r.Min,
		Max:         r.Max,
		StdDev:      r.StdDev,
	}
}
