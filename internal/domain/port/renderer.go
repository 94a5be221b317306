package port

import (
	"context"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
)

// Annotator renders a copy of the input image with the detected skeleton
// overlaid.
type Annotator interface {
	Annotate(ctx context.Context, srcPath string, dstPath string, det *entity.Detection) error
}

// WorldPlotter renders a figure of the metric world landmarks.
type WorldPlotter interface {
	RenderWorldPlot(ctx context.Context, dstPath string, det *entity.Detection) error
}

// Montager tiles a set of images into a single grid figure for visual
// review.
type Montager interface {
	RenderGrid(ctx context.Context, imagePaths []string, dstPath string) error
}
