package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gaharness/internal/runreport"
	"gaharness/internal/storage"
)

type aggregateFlags struct {
	dir          string
	prefixes     []string
	prefixLength int
	runs         int
	generations  int
	selection    string
	stats        bool
	xlsxPath     string
	storeKind    string
	dbPath       string
	batchID      string
}

func newAggregateCmd(a *app) *cobra.Command {
	var f aggregateFlags
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Summarise GA output tables found in a directory",
		Long: `Processes every entry of --dir whose first --prefix-length characters match a
recognised prefix. For each run 1..--runs the final row of the run is selected:
by the run column when the table has one, otherwise row generations*i-1.
The report lists scenario metadata, each run's best fitness, the global best
of the last run and the average run best.

Any unreadable or short table stops the pass with a non-zero exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAggregate(cmd, a, f)
		},
	}
	cmd.Flags().StringVarP(&f.dir, "dir", "d", ".", "directory holding GA output files")
	cmd.Flags().StringSliceVar(&f.prefixes, "prefix", runreport.DefaultPrefixes(), "recognised file name prefixes")
	cmd.Flags().IntVar(&f.prefixLength, "prefix-length", runreport.DefaultPrefixLength, "characters of the file name compared with the prefixes")
	cmd.Flags().IntVar(&f.runs, "runs", runreport.DefaultRuns, "runs packed into each output file")
	cmd.Flags().IntVar(&f.generations, "generations", runreport.DefaultGenerations, "generations per run")
	cmd.Flags().StringVar(&f.selection, "selection", string(runreport.SelectAuto), "run boundary selection: auto|position|run-column")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "also print min, max and standard deviation of the run bests")
	cmd.Flags().StringVar(&f.xlsxPath, "xlsx", "", "optional spreadsheet summary output path")
	cmd.Flags().StringVar(&f.storeKind, "store", storage.DefaultStoreKind(), "summary store backend: memory (not kept) | sqlite")
	cmd.Flags().StringVar(&f.dbPath, "db-path", "gaharness.db", "sqlite database path")
	cmd.Flags().StringVar(&f.batchID, "batch-id", "", "batch id recorded with stored summaries (default: random)")
	return cmd
}

// resolveAggregateOptions starts from the config file and applies the flags
// the user set explicitly.
func resolveAggregateOptions(cmd *cobra.Command, a *app, f aggregateFlags) (string, runreport.Options, error) {
	agg := a.cfg.Aggregate
	flags := cmd.Flags()
	if flags.Changed("dir") {
		agg.Dir = f.dir
	}
	if flags.Changed("prefix") {
		agg.Prefixes = f.prefixes
	}
	if flags.Changed("prefix-length") {
		agg.PrefixLength = f.prefixLength
	}
	if flags.Changed("runs") {
		agg.Runs = f.runs
	}
	if flags.Changed("generations") {
		agg.Generations = f.generations
	}
	if flags.Changed("selection") {
		agg.Selection = f.selection
	}
	opts, err := agg.Options()
	if err != nil {
		return "", runreport.Options{}, err
	}
	opts.Logger = a.logger
	dir := agg.Dir
	if dir == "" {
		dir = "."
	}
	return dir, opts, nil
}

func runAggregate(cmd *cobra.Command, a *app, f aggregateFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	dir, opts, err := resolveAggregateOptions(cmd, a, f)
	if err != nil {
		return err
	}

	storeKind, dbPath := storeSettings(cmd, a, f.storeKind, f.dbPath)
	store, err := openSummaryStore(ctx, storeKind, dbPath)
	switch {
	case errors.Is(err, errNoPersistentStore):
		a.logger.Debug("summaries not stored", zap.String("store", storeKind))
	case err != nil:
		return err
	default:
		defer func() {
			_ = storage.CloseIfSupported(store)
		}()
	}

	batchID := f.batchID
	if batchID == "" {
		batchID = uuid.NewString()
	}

	out := cmd.OutOrStdout()
	var reports []runreport.Report
	_, err = runreport.Aggregate(ctx, dir, opts, func(r runreport.Report) error {
		if err := runreport.WriteReport(out, r, runreport.WriteOptions{Stats: f.stats}); err != nil {
			return err
		}
		if store != nil {
			summary := runreport.ToSummary(r, batchID, opts, time.Now())
			summary.VersionedRecord = storage.CurrentVersion()
			if err := store.SaveSummary(ctx, summary); err != nil {
				return fmt.Errorf("store summary %s: %w", summary.ID, err)
			}
		}
		reports = append(reports, r)
		return nil
	})
	if err != nil {
		return err
	}

	if f.xlsxPath != "" {
		if err := runreport.WriteXLSX(f.xlsxPath, reports); err != nil {
			return err
		}
		a.logger.Info("wrote spreadsheet summary", zap.String("path", f.xlsxPath), zap.Int("reports", len(reports)))
	}
	if store != nil {
		a.logger.Info("stored summaries",
			zap.String("store", storeKind),
			zap.String("batch_id", batchID),
			zap.Int("reports", len(reports)),
		)
	}
	return nil
}
