package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gaharness/internal/paramset"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		outDir    string
		extension string
		listFiles bool
	)
	cmd := &cobra.Command{
		Use:   "generate [batch...]",
		Short: "Write parameter files for one or more batches (default: ppi)",
		Long: `Writes {scenario}{set}.{ext} files, one per scenario and parameter set.
Each file lists outPrefix, source, the batch constants and then the set's
parameters; a set parameter replaces a constant of the same name in place.

Batches are looked up in --config first, then among the built-in presets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{"ppi"}
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				batch, err := a.cfg.Batch(name)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("ext") {
					batch.Extension = extension
				}
				paths, err := paramset.Generate(batch, paramset.GenerateOptions{
					Dir:    outDir,
					Logger: a.logger,
				})
				if err != nil {
					return err
				}
				if listFiles {
					for _, path := range paths {
						fmt.Fprintf(out, "file path=%s\n", path)
					}
				}
				fmt.Fprintf(out, "generated batch=%s files=%d dir=%s\n", batch.Name, len(paths), outDir)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&extension, "ext", paramset.DefaultExtension, "parameter file extension")
	cmd.Flags().BoolVar(&listFiles, "list", false, "print every written path")
	return cmd
}

func newInspectCmd(_ *app) *cobra.Command {
	var keys []string
	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Show the effective parameters of parameter files",
		Long: `Reads parameter files the way the GA engine does: fields split on whitespace,
':' or '='; a repeated key keeps its first position and takes the last value.
With --key only the named parameters are printed; a missing one is an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				params, err := paramset.ParseFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "params file=%s count=%d\n", path, len(params))
				if len(keys) == 0 {
					for _, p := range params {
						fmt.Fprintf(out, "%s=%s\n", p.Key, paramset.FormatValue(p.Value))
					}
					continue
				}
				for _, key := range keys {
					v, ok := params.Get(key)
					if !ok {
						return fmt.Errorf("%s: parameter %q not set", path, key)
					}
					fmt.Fprintf(out, "%s=%s\n", key, paramset.FormatValue(v))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&keys, "key", nil, "only print these parameters")
	return cmd
}
