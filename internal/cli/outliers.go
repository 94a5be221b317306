package cli

import (
	"fmt"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/outliers"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/vision"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/usecase"
	"github.com/spf13/cobra"
)

func newOutliersCmd(d *deps) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "outliers",
		Short: "Report or remove samples flagged by the external classifier",
	}
	cmd.PersistentFlags().StringVar(&reportPath, "report", "",
		"path to the classifier's outlier report (JSON)")

	newCurator := func() *usecase.OutlierCurator {
		paths := d.levelPaths()
		return usecase.NewOutlierCurator(vision.NewMontage(d.log), d.log, paths.imagesOut)
	}

	loadReport := func() ([]entity.Outlier, error) {
		if reportPath == "" {
			return nil, fmt.Errorf("--report is required")
		}
		return outliers.LoadReport(reportPath)
	}

	var (
		imagesRoot string
		gridPath   string
	)
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print each outlier and optionally render a review grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadReport()
			if err != nil {
				return err
			}
			curator := newCurator()
			curator.Analyze(cmd.OutOrStdout(), list, imagesRoot)
			if gridPath != "" {
				return curator.RenderGrid(cmd.Context(), list, gridPath)
			}
			return nil
		},
	}
	analyzeCmd.Flags().StringVar(&imagesRoot, "images-root", "",
		"alternate image root for sample paths")
	analyzeCmd.Flags().StringVar(&gridPath, "grid", "",
		"write a tiled review figure to this path")

	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete each outlier's output image (run align afterwards)",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadReport()
			if err != nil {
				return err
			}
			return newCurator().Remove(list)
		},
	}

	cmd.AddCommand(analyzeCmd, removeCmd)
	return cmd
}
