package vision

import (
	"context"
	"fmt"
	"image"

	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

const (
	montageColumns = 5
	tileSize       = 256
)

// Montage tiles images into a fixed-column grid figure.
type Montage struct {
	logger *zap.Logger
}

func NewMontage(logger *zap.Logger) *Montage {
	return &Montage{logger: logger}
}

func (m *Montage) RenderGrid(_ context.Context, imagePaths []string, dstPath string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images to tile")
	}

	cols := montageColumns
	if len(imagePaths) < cols {
		cols = len(imagePaths)
	}
	rows := (len(imagePaths) + cols - 1) / cols

	canvas := gocv.NewMatWithSize(rows*tileSize, cols*tileSize, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	for i, imagePath := range imagePaths {
		img := gocv.IMRead(imagePath, gocv.IMReadColor)
		if img.Empty() {
			m.logger.Warn("skipping unreadable image", zap.String("image_path", imagePath))
			continue
		}

		tile := gocv.NewMat()
		gocv.Resize(img, &tile, image.Pt(tileSize, tileSize), 0, 0, gocv.InterpolationArea)

		col := i % cols
		row := i / cols
		roi := canvas.Region(image.Rect(
			col*tileSize, row*tileSize,
			(col+1)*tileSize, (row+1)*tileSize,
		))
		tile.CopyTo(&roi)

		roi.Close()
		tile.Close()
		img.Close()
	}

	if ok := gocv.IMWrite(dstPath, canvas); !ok {
		return fmt.Errorf("encode %s", dstPath)
	}
	return nil
}
