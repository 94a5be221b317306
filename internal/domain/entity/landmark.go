package entity

import (
	"errors"
	"fmt"
	"strconv"
)

// LandmarkCount is the number of keypoints the pose model reports per body.
const LandmarkCount = 33

// ErrUnexpectedLandmarkCount means the detector returned something other
// than the 33-point topology this pipeline is built around. The detector
// contract is broken at that point, so callers must abort instead of
// recording a malformed row.
var ErrUnexpectedLandmarkCount = errors.New("unexpected landmark count")

// Landmark is a single tracked body keypoint.
type Landmark struct {
	X float64
	Y float64
	Z float64
}

// Detection is the result of running the pose model on one image.
// Landmarks are normalized to [0,1] relative to the image; WorldLandmarks
// are metric, hip-centered coordinates.
type Detection struct {
	Landmarks      []Landmark
	WorldLandmarks []Landmark
	ImageWidth     int
	ImageHeight    int
	Score          float64
}

// LandmarkRecord is one CSV row: an image name plus 33 pixel-scaled
// landmarks (x and z scaled by image width, y by image height).
type LandmarkRecord struct {
	ImageName string
	Landmarks [LandmarkCount]Landmark
}

// NewLandmarkRecord scales a detection into pixel units. Returns
// ErrUnexpectedLandmarkCount when the detection does not carry exactly
// 33 landmarks.
func NewLandmarkRecord(imageName string, det *Detection) (*LandmarkRecord, error) {
	if len(det.Landmarks) != LandmarkCount {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrUnexpectedLandmarkCount, len(det.Landmarks), LandmarkCount)
	}

	rec := &LandmarkRecord{ImageName: imageName}
	w := float64(det.ImageWidth)
	h := float64(det.ImageHeight)
	for i, lm := range det.Landmarks {
		rec.Landmarks[i] = Landmark{
			X: lm.X * w,
			Y: lm.Y * h,
			Z: lm.Z * w,
		}
	}
	return rec, nil
}

// Fields flattens the record into the CSV field list:
// image name followed by 99 coordinate values as decimal text.
func (r *LandmarkRecord) Fields() []string {
	fields := make([]string, 0, 1+LandmarkCount*3)
	fields = append(fields, r.ImageName)
	for _, lm := range r.Landmarks {
		fields = append(fields,
			formatCoord(lm.X), formatCoord(lm.Y), formatCoord(lm.Z))
	}
	return fields
}

// formatCoord uses shortest round-trip formatting so CSVs are
// reproducible across runs.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
