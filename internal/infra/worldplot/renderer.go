package worldplot

import (
	"context"
	"fmt"
	"image/color"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	jointColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	boneColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Renderer draws the metric world landmarks as a front-view (XY) figure
// with skeleton connections.
type Renderer struct {
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{logger: logger}
}

func (r *Renderer) RenderWorldPlot(_ context.Context, dstPath string, det *entity.Detection) error {
	landmarks := det.WorldLandmarks
	if len(landmarks) == 0 {
		landmarks = det.Landmarks
	}

	p := plot.New()
	p.Title.Text = "Pose world landmarks"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	// Y is negated so the head points up.
	for _, conn := range entity.PoseConnections {
		if conn[0] >= len(landmarks) || conn[1] >= len(landmarks) {
			continue
		}
		l1, l2 := landmarks[conn[0]], landmarks[conn[1]]
		line, err := plotter.NewLine(plotter.XYs{
			{X: l1.X, Y: -l1.Y},
			{X: l2.X, Y: -l2.Y},
		})
		if err != nil {
			return fmt.Errorf("build connection line: %w", err)
		}
		line.Color = boneColor
		line.Width = vg.Points(1.5)
		p.Add(line)
	}

	pts := make(plotter.XYs, len(landmarks))
	for i, lm := range landmarks {
		pts[i] = plotter.XY{X: lm.X, Y: -lm.Y}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build joint scatter: %w", err)
	}
	scatter.GlyphStyle.Color = jointColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, dstPath); err != nil {
		return fmt.Errorf("save world plot %s: %w", dstPath, err)
	}
	return nil
}
