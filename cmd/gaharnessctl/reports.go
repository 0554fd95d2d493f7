package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gaharness/internal/runreport"
	"gaharness/internal/storage"
)

func newReportsCmd(a *app) *cobra.Command {
	var (
		storeKind string
		dbPath    string
		batchID   string
	)
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List run summaries persisted by aggregate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			kind, path := storeSettings(cmd, a, storeKind, dbPath)
			store, err := openSummaryStore(ctx, kind, path)
			if err != nil {
				return err
			}
			defer func() {
				_ = storage.CloseIfSupported(store)
			}()

			summaries, err := store.ListSummaries(ctx, batchID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range summaries {
				fmt.Fprintf(out, "summary batch=%s file=%s source=%s runs=%d global_best=%s average=%s created=%s\n",
					s.BatchID,
					s.File,
					s.Meta.Source,
					len(s.RunBest),
					runreport.FormatNumber(s.GlobalBest),
					runreport.FormatNumber(s.Average),
					s.CreatedAt,
				)
			}
			fmt.Fprintf(out, "summaries count=%d store=%s\n", len(summaries), kind)
			return nil
		},
	}
	cmd.Flags().StringVar(&storeKind, "store", storage.DefaultStoreKind(), "summary store backend; listing needs sqlite")
	cmd.Flags().StringVar(&dbPath, "db-path", "gaharness.db", "sqlite database path")
	cmd.Flags().StringVar(&batchID, "batch-id", "", "only list this batch")
	return cmd
}
