package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gaharness/internal/storage"
)

// errNoPersistentStore is returned for the memory backend: summaries saved
// there are gone once the command exits.
var errNoPersistentStore = errors.New("store does not persist across invocations; use --store sqlite")

// storeSettings resolves the store backend from the config file and the
// --store / --db-path flags.
func storeSettings(cmd *cobra.Command, a *app, kindFlag, pathFlag string) (string, string) {
	kind, path := a.cfg.Store.Kind, a.cfg.Store.DBPath
	if cmd.Flags().Changed("store") {
		kind = kindFlag
	}
	if cmd.Flags().Changed("db-path") {
		path = pathFlag
	}
	return kind, path
}

func openSummaryStore(ctx context.Context, kind, path string) (storage.Store, error) {
	if kind == "" || kind == storage.KindMemory {
		return nil, fmt.Errorf("%w: %s", errNoPersistentStore, storage.KindMemory)
	}
	store, err := storage.NewStore(kind, path)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, err
	}
	return store, nil
}
