package vision

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

var (
	jointColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	boneColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Annotator draws the detected skeleton over a copy of the input image.
type Annotator struct {
	logger        *zap.Logger
	lineThickness int
	jointRadius   int
}

func NewAnnotator(logger *zap.Logger) *Annotator {
	return &Annotator{
		logger:        logger,
		lineThickness: 2,
		jointRadius:   4,
	}
}

func (a *Annotator) Annotate(_ context.Context, srcPath, dstPath string, det *entity.Detection) error {
	img := gocv.IMRead(srcPath, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("decode %s: empty image", srcPath)
	}
	defer img.Close()

	for _, conn := range entity.PoseConnections {
		gocv.Line(&img, landmarkPoint(det, conn[0]), landmarkPoint(det, conn[1]),
			boneColor, a.lineThickness)
	}
	for i := range det.Landmarks {
		gocv.Circle(&img, landmarkPoint(det, i), a.jointRadius, jointColor, -1)
	}

	if ok := gocv.IMWrite(dstPath, img); !ok {
		return fmt.Errorf("encode %s", dstPath)
	}
	return nil
}

// landmarkPoint scales a normalized landmark to image pixels.
func landmarkPoint(det *entity.Detection, idx int) image.Point {
	lm := det.Landmarks[idx]
	return image.Pt(
		int(lm.X*float64(det.ImageWidth)),
		int(lm.Y*float64(det.ImageHeight)),
	)
}
