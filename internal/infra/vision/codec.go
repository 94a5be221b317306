package vision

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

// Codec moves images between trees through OpenCV, applying the same
// channel swap the bootstrap output contract expects.
type Codec struct {
	logger *zap.Logger
}

func NewCodec(logger *zap.Logger) *Codec {
	return &Codec{logger: logger}
}

func (c *Codec) Copy(_ context.Context, srcPath, dstPath string) error {
	img := gocv.IMRead(srcPath, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("decode %s: empty image", srcPath)
	}
	defer img.Close()

	out := gocv.NewMat()
	defer out.Close()
	gocv.CvtColor(img, &out, gocv.ColorRGBToBGR)

	if ok := gocv.IMWrite(dstPath, out); !ok {
		return fmt.Errorf("encode %s", dstPath)
	}
	return nil
}
