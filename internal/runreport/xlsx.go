package runreport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// WriteXLSX writes one spreadsheet row per report. Run columns are sized to
// the report with the most runs.
func WriteXLSX(path string, reports []Report) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("xlsx path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	runs := 0
	for _, r := range reports {
		runs = max(runs, len(r.RunBest))
	}

	header := []any{
		"File", "Source", "Graph Size", "Compression Rate", "Elitism Rate",
		"Tournament Size", "Mutation Rate", "Crossover Rate", "Maximum Neighbor Distance",
	}
	for i := 1; i <= runs; i++ {
		header = append(header, fmt.Sprintf("Run %d Best Fitness", i))
	}
	header = append(header, "Global Best Fitness", "Best Fitness Average", "Min", "Max", "Std Dev")
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range reports {
		row := []any{
			r.File, r.Meta.Source, r.Meta.GraphSize, r.Meta.CompressionRate, r.Meta.ElitismRate,
			r.Meta.TournamentSize, r.Meta.MutationRate, r.Meta.CrossoverRate, r.Meta.MaximumDistance,
		}
		for j := 0; j < runs; j++ {
			if j < len(r.RunBest) {
				row = append(row, r.RunBest[j])
			} else {
				row = append(row, nil)
			}
		}
		row = append(row, r.GlobalBest, r.Average, r.Min, r.Max, r.StdDev)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
