package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gaharness/internal/paramset"
)

func newPresetsCmd(a *app) *cobra.Command {
	var dumpYAML bool
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List generator batches from the config and the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			batches := append([]paramset.Batch(nil), a.cfg.Batches...)
			seen := map[string]bool{}
			for _, name := range a.cfg.BatchNames() {
				seen[name] = true
			}
			for _, name := range paramset.PresetNames() {
				if seen[name] {
					continue
				}
				b, err := paramset.Preset(name)
				if err != nil {
					return err
				}
				batches = append(batches, b)
			}

			out := cmd.OutOrStdout()
			if dumpYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(map[string]any{"batches": batches}); err != nil {
					return err
				}
				return enc.Close()
			}
			for _, b := range batches {
				fmt.Fprintf(out, "batch name=%s scenarios=%d sets=%d files=%d\n",
					b.Name, len(b.Scenarios), len(b.Sets), len(b.Scenarios)*len(b.Sets))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dumpYAML, "yaml", false, "print the batches as a config file")
	return cmd
}
