package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/timeline"
)

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timelinectl",
		Short: "Compute the experience timeline offline",
		Long:  `timelinectl lays out the portfolio experience records and prints the result as JSON or SVG.`,
	}

	rootCmd.PersistentFlags().String("content", "", "YAML file with experience records (default: built-in records)")
	rootCmd.PersistentFlags().String("config", "", "YAML file with timeline geometry (default: built-in geometry)")
	rootCmd.PersistentFlags().String("now", "", "Current month as YYYY-MM (default: today)")

	rootCmd.AddCommand(newLayoutCmd(), newSVGCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inputs loads records, geometry and the current time from the persistent flags.
func inputs(cmd *cobra.Command) ([]timeline.Record, timeline.Config, time.Time, error) {
	contentPath, _ := cmd.Flags().GetString("content")
	configPath, _ := cmd.Flags().GetString("config")
	rawNow, _ := cmd.Flags().GetString("now")

	records, err := content.LoadExperiences(contentPath)
	if err != nil {
		return nil, timeline.Config{}, time.Time{}, err
	}
	config, err := timeline.LoadConfig(configPath)
	if err != nil {
		return nil, timeline.Config{}, time.Time{}, err
	}

	now := time.Now()
	if rawNow != "" {
		now, err = time.Parse("2006-01", rawNow)
		if err != nil {
			return nil, timeline.Config{}, time.Time{}, fmt.Errorf("--now must be formatted as YYYY-MM: %w", err)
		}
	}
	return records, config, now, nil
}
