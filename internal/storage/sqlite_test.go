//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gaharness.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	first := testSummary("b1", "ecoli1.dat", 10, 20)
	second := testSummary("b2", "yeast1.dat", 5)
	if err := store.SaveSummary(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := store.SaveSummary(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	loaded, ok, err := store.GetSummary(ctx, first.ID)
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if !ok {
		t.Fatalf("expected summary %s", first.ID)
	}
	if loaded.File != "ecoli1.dat" || len(loaded.RunBest) != 2 {
		t.Fatalf("unexpected summary loaded: %+v", loaded)
	}

	first.Average = 15
	if err := store.SaveSummary(ctx, first); err != nil {
		t.Fatalf("update first: %v", err)
	}
	all, err := store.ListSummaries(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[0].Average != 15 {
		t.Fatalf("unexpected list: %+v", all)
	}
	batch, err := store.ListSummaries(ctx, "b2")
	if err != nil {
		t.Fatalf("list batch: %v", err)
	}
	if len(batch) != 1 || batch[0].File != "yeast1.dat" {
		t.Fatalf("unexpected batch list: %+v", batch)
	}
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "x.db"))
	if _, _, err := store.GetSummary(context.Background(), "x"); err == nil {
		t.Fatal("expected uninitialized store error")
	}
}
