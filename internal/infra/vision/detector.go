package vision

import (
	"context"
	"fmt"
	"image"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

// BlazePose landmark graph layout.
const (
	inputSize = 256

	// Output layers: screen landmarks (33 x [x,y,z,visibility,presence]
	// in input-pixel units), pose presence score, and metric world
	// landmarks (33 x [x,y,z]).
	landmarkLayer = "Identity"
	poseFlagLayer = "Identity_1"
	worldLayer    = "Identity_4"
)

type DetectorConfig struct {
	ModelPath string

	// MinConfidence is the pose presence threshold below which an image
	// counts as a miss.
	MinConfidence float32
}

func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MinConfidence: 0.7,
	}
}

// Detector runs a BlazePose ONNX graph through the OpenCV DNN backend.
// A Detector owns one Net and is not safe for concurrent use; create one
// per goroutine if parallelism is ever added.
type Detector struct {
	net    gocv.Net
	cfg    DetectorConfig
	logger *zap.Logger
}

func NewDetector(cfg DetectorConfig, logger *zap.Logger) (*Detector, error) {
	net := gocv.ReadNetFromONNX(cfg.ModelPath)
	if net.Empty() {
		return nil, fmt.Errorf("load pose model %s", cfg.ModelPath)
	}
	return &Detector{net: net, cfg: cfg, logger: logger}, nil
}

func (d *Detector) Close() error {
	return d.net.Close()
}

func (d *Detector) Detect(ctx context.Context, imagePath string) (*entity.Detection, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	if img.Empty() {
		return nil, fmt.Errorf("decode %s: empty image", imagePath)
	}
	defer img.Close()

	// The model wants RGB input.
	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(img, &rgb, gocv.ColorBGRToRGB)

	blob := gocv.BlobFromImage(rgb, 1.0/255.0,
		image.Pt(inputSize, inputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()
	d.net.SetInput(blob, "")

	outputs := d.net.ForwardLayers([]string{landmarkLayer, poseFlagLayer, worldLayer})
	defer func() {
		for i := range outputs {
			outputs[i].Close()
		}
	}()
	if len(outputs) != 3 {
		return nil, fmt.Errorf("pose model returned %d outputs, want 3", len(outputs))
	}

	score := outputs[1].GetFloatAt(0, 0)
	if score < d.cfg.MinConfidence {
		d.logger.Debug("no pose detected",
			zap.String("image_path", imagePath),
			zap.Float32("score", score),
		)
		return nil, nil
	}

	return &entity.Detection{
		Landmarks:      decodeScreenLandmarks(outputs[0]),
		WorldLandmarks: decodeWorldLandmarks(outputs[2]),
		ImageWidth:     img.Cols(),
		ImageHeight:    img.Rows(),
		Score:          float64(score),
	}, nil
}

// decodeScreenLandmarks normalizes the 33x5 landmark tensor to [0,1]
// coordinates relative to the model input. Visibility and presence
// channels are dropped.
func decodeScreenLandmarks(m gocv.Mat) []entity.Landmark {
	n := m.Total() / 5
	lmks := make([]entity.Landmark, 0, n)
	for i := 0; i < n; i++ {
		lmks = append(lmks, entity.Landmark{
			X: float64(m.GetFloatAt(0, i*5)) / inputSize,
			Y: float64(m.GetFloatAt(0, i*5+1)) / inputSize,
			Z: float64(m.GetFloatAt(0, i*5+2)) / inputSize,
		})
	}
	return lmks
}

// decodeWorldLandmarks reads the 33x3 metric, hip-centered tensor.
func decodeWorldLandmarks(m gocv.Mat) []entity.Landmark {
	n := m.Total() / 3
	lmks := make([]entity.Landmark, 0, n)
	for i := 0; i < n; i++ {
		lmks = append(lmks, entity.Landmark{
			X: float64(m.GetFloatAt(0, i*3)),
			Y: float64(m.GetFloatAt(0, i*3+1)),
			Z: float64(m.GetFloatAt(0, i*3+2)),
		})
	}
	return lmks
}
