//go:build sqlite

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAggregateThenReportsWithSQLite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ecoli1.dat"), []byte(outputTable(2, 3, []float64{15, 20})), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	dbPath := filepath.Join(t.TempDir(), "summaries.db")

	if _, err := runCLI(t, "aggregate", "--dir", dir, "--runs", "2", "--generations", "3",
		"--store", "sqlite", "--db-path", dbPath, "--batch-id", "batch-1"); err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	out, err := runCLI(t, "reports", "--store", "sqlite", "--db-path", dbPath)
	if err != nil {
		t.Fatalf("reports: %v", err)
	}
	for _, want := range []string{
		"summary batch=batch-1 file=ecoli1.dat source=ecoli.txt runs=2 global_best=94 average=17.5 ",
		"summaries count=1 store=sqlite\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in reports output:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "reports", "--store", "sqlite", "--db-path", dbPath, "--batch-id", "other")
	if err != nil {
		t.Fatalf("reports other batch: %v", err)
	}
	if !strings.Contains(out, "summaries count=0 store=sqlite\n") {
		t.Fatalf("unexpected filtered reports output:\n%s", out)
	}
}
