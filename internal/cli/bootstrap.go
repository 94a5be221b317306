package cli

import (
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/csvstore"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/vision"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/worldplot"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/usecase"
	"github.com/spf13/cobra"
)

func newBootstrapCmd(d *deps) *cobra.Command {
	var (
		limit      int
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Run the pose detector over the dataset and build per-class CSVs",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := d.levelPaths()

			detCfg := vision.DefaultDetectorConfig()
			detCfg.ModelPath = d.cfg.PoseModelPath
			if d.cfg.MinDetectionConfidence > 0 {
				detCfg.MinConfidence = d.cfg.MinDetectionConfidence
			}
			detector, err := vision.NewDetector(detCfg, d.log)
			if err != nil {
				return err
			}
			defer detector.Close()

			stats := usecase.NewStatsReporter(paths.dataset, paths.imagesOut)
			if err := stats.PrintInputStatistics(cmd.OutOrStdout()); err != nil {
				return err
			}

			uc := usecase.NewBootstrapUseCase(
				detector,
				vision.NewCodec(d.log),
				vision.NewAnnotator(d.log),
				worldplot.NewRenderer(d.log),
				csvstore.New(),
				d.log,
				usecase.BootstrapConfig{
					DatasetFolder:      paths.dataset,
					ImagesOutFolder:    paths.imagesOut,
					CSVOutFolder:       paths.csvOut,
					AnnotatedOutFolder: paths.annotated,
					WorldPlotOutFolder: paths.worldPlot,
					Level:              d.cfg.DifficultyLevel,
					PerClassLimit:      limit,
					Progress:           !noProgress,
				},
			)
			if _, err := uc.Execute(cmd.Context()); err != nil {
				return err
			}

			return stats.PrintOutputStatistics(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", d.cfg.PerClassLimit,
		"max images per pose class, 0 means all")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"disable the per-image progress bar")
	return cmd
}
