package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/timeline"
)

// newSVGCmd builds the command that renders the desktop layout
func newSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Render the desktop timeline as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, config, now, err := inputs(cmd)
			if err != nil {
				return err
			}
			svg := timeline.RenderSVG(timeline.ComputeLayout(records, now, timeline.Desktop, config), config)

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
				return fmt.Errorf("error writing SVG file: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Timeline SVG generated: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}
