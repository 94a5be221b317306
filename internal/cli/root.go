package cli

import (
	"path/filepath"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type deps struct {
	cfg *config.Config
	log *zap.Logger
}

// levelPaths are the per-difficulty-level trees every command operates
// on.
type levelPaths struct {
	dataset   string
	imagesOut string
	csvOut    string
	annotated string
	worldPlot string
}

func (d *deps) levelPaths() levelPaths {
	level := d.cfg.DifficultyLevel
	return levelPaths{
		dataset:   filepath.Join(d.cfg.DatasetFolder, level),
		imagesOut: filepath.Join(d.cfg.ImagesOutFolder, level),
		csvOut:    filepath.Join(d.cfg.CSVOutFolder, level),
		annotated: filepath.Join(d.cfg.AnnotatedOutFolder, level),
		worldPlot: filepath.Join(d.cfg.WorldPlotOutFolder, level),
	}
}

func NewRootCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	d := &deps{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:           "guru-asana",
		Short:         "Pose dataset bootstrap and hygiene tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.DifficultyLevel, "level",
		cfg.DifficultyLevel, "difficulty level to operate on")

	root.AddCommand(
		newBootstrapCmd(d),
		newAlignCmd(d),
		newStatsCmd(d),
		newOutliersCmd(d),
	)
	return root
}
