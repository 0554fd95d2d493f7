package runreport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Runs = 2
	opts.Generations = 3
	return opts
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAggregateFiltersByPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ecoli1.dat", positionalCSV(6, 3, []float64{4, 6}))
	writeFile(t, dir, "figeys3.dat", positionalCSV(6, 3, []float64{10, 20}))
	writeFile(t, dir, "readme.txt", "not a table")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "yeast_dir"), 0o755))

	var reports []Report
	n, err := Aggregate(context.Background(), dir, smallOptions(), func(r Report) error {
		reports = append(reports, r)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, reports, 2)

	assert.Equal(t, "ecoli1.dat", reports[0].File)
	assert.Equal(t, 1, reports[0].Index)
	assert.Equal(t, 4, reports[0].Total)
	assert.Equal(t, 5.0, reports[0].Average)
	assert.Equal(t, "figeys3.dat", reports[1].File)
	assert.Equal(t, 2, reports[1].Index)
	assert.Equal(t, 4, reports[1].Total)
	assert.Equal(t, 15.0, reports[1].Average)
}

func TestAggregateStopsAtFirstBadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ecoli1.dat", positionalCSV(5, 3, []float64{4, 6}))
	writeFile(t, dir, "figeys3.dat", positionalCSV(6, 3, []float64{10, 20}))

	visited := 0
	n, err := Aggregate(context.Background(), dir, smallOptions(), func(Report) error {
		visited++
		return nil
	})
	require.ErrorIs(t, err, ErrShortTable)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, visited)
}

func TestAggregateHonoursCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ecoli1.dat", positionalCSV(6, 3, []float64{4, 6}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Aggregate(ctx, dir, smallOptions(), func(Report) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestAggregateMissingDir(t *testing.T) {
	_, err := Aggregate(context.Background(), filepath.Join(t.TempDir(), "nope"), smallOptions(), func(Report) error { return nil })
	require.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.xlsx")
	reports := []Report{
		{File: "ecoli1.dat", Meta: Metadata{Source: "ecoli.txt"}, RunBest: []float64{4, 6}, GlobalBest: 4, Average: 5},
		{File: "yeast2.dat", Meta: Metadata{Source: "yeast.txt"}, RunBest: []float64{7}, GlobalBest: 7, Average: 7},
	}
	require.NoError(t, WriteXLSX(path, reports))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = f.Close()
	})
	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "File", rows[0][0])
	assert.Equal(t, "Run 2 Best Fitness", rows[0][10])
	assert.Equal(t, "Global Best Fitness", rows[0][11])
	assert.Equal(t, "ecoli1.dat", rows[1][0])
	assert.Equal(t, "6", rows[1][10])
	assert.Equal(t, "5", rows[1][12])

	require.Error(t, WriteXLSX(" ", reports))
}
