package port

import (
	"context"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
)

// PoseDetector runs the external pose-estimation model on a single image
// file. A miss (no body in frame) returns (nil, nil); only decode or
// model failures produce an error.
type PoseDetector interface {
	Detect(ctx context.Context, imagePath string) (*entity.Detection, error)

	// Close releases any resources held by the detector.
	Close() error
}
