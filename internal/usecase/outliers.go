package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/port"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/metrics"
	"go.uber.org/zap"
)

// OutlierCurator reports and removes samples an external classifier pass
// flagged as misclassified. Removal deletes only the output image file;
// the CSV row stays until the next align pass restores the bijection.
type OutlierCurator struct {
	montager        port.Montager
	logger          *zap.Logger
	imagesOutFolder string
}

func NewOutlierCurator(montager port.Montager, logger *zap.Logger, imagesOutFolder string) *OutlierCurator {
	return &OutlierCurator{
		montager:        montager,
		logger:          logger,
		imagesOutFolder: imagesOutFolder,
	}
}

// Analyze writes a report of every outlier to w. When imagesRoot is
// non-empty it overrides the output tree as the base for sample paths.
func (c *OutlierCurator) Analyze(w io.Writer, outliers []entity.Outlier, imagesRoot string) {
	root := c.imagesOutFolder
	if imagesRoot != "" {
		root = imagesRoot
	}

	fmt.Fprintf(w, "Analyzing %d outliers\n", len(outliers))
	for _, outlier := range outliers {
		imagePath := filepath.Join(root, outlier.Sample.ClassName, outlier.Sample.Name)
		fmt.Fprintln(w, "Outlier")
		fmt.Fprintf(w, "  sample path =    %s\n", imagePath)
		fmt.Fprintf(w, "  sample class =   %s\n", outlier.Sample.ClassName)
		fmt.Fprintf(w, "  detected class = %s\n", outlier.DetectedClass)
		fmt.Fprintf(w, "  all classes =    %s\n", strings.Join(outlier.AllClasses, ", "))
	}
}

// RenderGrid tiles the outlier images into one figure for visual review.
func (c *OutlierCurator) RenderGrid(ctx context.Context, outliers []entity.Outlier, dstPath string) error {
	if len(outliers) == 0 {
		return fmt.Errorf("no outliers to render")
	}
	paths := make([]string, 0, len(outliers))
	for _, outlier := range outliers {
		paths = append(paths, filepath.Join(c.imagesOutFolder, outlier.Sample.ClassName, outlier.Sample.Name))
	}
	return c.montager.RenderGrid(ctx, paths, dstPath)
}

// Remove deletes each outlier's output image file. Already-missing files
// are skipped.
func (c *OutlierCurator) Remove(outliers []entity.Outlier) error {
	c.logger.Info("removing outliers", zap.Int("count", len(outliers)))
	for _, outlier := range outliers {
		imagePath := filepath.Join(c.imagesOutFolder, outlier.Sample.ClassName, outlier.Sample.Name)
		if err := os.Remove(imagePath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.logger.Warn("outlier image already gone", zap.String("image_path", imagePath))
				continue
			}
			return fmt.Errorf("remove outlier %s: %w", imagePath, err)
		}
		metrics.SamplesRemovedTotal.WithLabelValues(metrics.RemovedOutlier).Inc()
		c.logger.Info("removed outlier",
			zap.String("image_path", imagePath),
			zap.String("detected_class", outlier.DetectedClass),
		)
	}
	return nil
}
