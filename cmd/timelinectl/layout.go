package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/timeline"
)

// newLayoutCmd builds the command that prints the computed layout
func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the timeline layout as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawView, _ := cmd.Flags().GetString("view")
			view, err := timeline.ParseView(rawView)
			if err != nil {
				return err
			}
			records, config, now, err := inputs(cmd)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(timeline.ComputeLayout(records, now, view, config))
		},
	}
	cmd.Flags().String("view", "desktop", "Layout mode: desktop or mobile")
	return cmd
}
