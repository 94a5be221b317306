package cli

import (
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/csvstore"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/usecase"
	"github.com/spf13/cobra"
)

func newAlignCmd(d *deps) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Reconcile per-class CSVs with the output image folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := d.levelPaths()

			uc := usecase.NewAlignUseCase(csvstore.New(), d.log, usecase.AlignConfig{
				DatasetFolder:   paths.dataset,
				ImagesOutFolder: paths.imagesOut,
				CSVOutFolder:    paths.csvOut,
				Level:           d.cfg.DifficultyLevel,
				LogRemoved:      verbose,
			})
			return uc.Execute(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "log every removed row and file")
	return cmd
}
