package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImagesProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pose_bootstrap_images_processed_total",
		Help: "Total number of input images run through the pose detector",
	})

	PosesDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pose_bootstrap_poses_detected_total",
		Help: "Total number of images where a body was detected",
	})

	DetectionMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pose_bootstrap_detection_misses_total",
		Help: "Total number of images where no body was detected",
	})

	RowsWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pose_bootstrap_csv_rows_written_total",
		Help: "Total number of landmark rows appended to per-class CSVs",
	})

	SamplesRemovedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pose_bootstrap_samples_removed_total",
		Help: "Total number of samples removed, by reason",
	}, []string{"reason"})

	ClassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pose_bootstrap_class_duration_seconds",
		Help:    "Duration of bootstrap processing per pose class",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"pose_class"})

	ActiveClasses = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pose_bootstrap_active_classes",
		Help: "Number of pose classes currently being bootstrapped",
	})
)

// Removal reasons for SamplesRemovedTotal.
const (
	RemovedCSVRow  = "csv_row"
	RemovedImage   = "image"
	RemovedOutlier = "outlier"
)
