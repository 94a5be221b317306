package cli

import (
	"fmt"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/usecase"
	"github.com/spf13/cobra"
)

func newStatsCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-class image counts for the input and output trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := d.levelPaths()
			stats := usecase.NewStatsReporter(paths.dataset, paths.imagesOut)

			fmt.Fprintln(cmd.OutOrStdout(), "Input tree:")
			if err := stats.PrintInputStatistics(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Output tree:")
			return stats.PrintOutputStatistics(cmd.OutOrStdout())
		},
	}
}
