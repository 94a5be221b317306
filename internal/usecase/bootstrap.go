package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/port"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/metrics"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

type BootstrapConfig struct {
	// DatasetFolder is the per-level input tree: one subdirectory per
	// pose class.
	DatasetFolder string
	// ImagesOutFolder receives the converted copy of every processed
	// image, per class.
	ImagesOutFolder string
	// CSVOutFolder receives one <class>.csv per pose class.
	CSVOutFolder string
	// AnnotatedOutFolder receives skeleton-annotated copies, per class.
	AnnotatedOutFolder string
	// WorldPlotOutFolder receives 3D world-landmark figures, per class.
	WorldPlotOutFolder string

	Level string

	// PerClassLimit caps how many images are processed per class, in
	// sorted order. Zero means no limit.
	PerClassLimit int

	// Progress enables the per-image console progress bar.
	Progress bool
}

// BootstrapUseCase walks the dataset tree and, for every image, runs the
// pose detector, persists a converted copy, appends a landmark row to the
// class CSV on detection, and renders the annotated and world-plot
// visualizations.
type BootstrapUseCase struct {
	detector  port.PoseDetector
	codec     port.ImageCodec
	annotator port.Annotator
	plotter   port.WorldPlotter
	store     port.DatasetStore
	logger    *zap.Logger
	cfg       BootstrapConfig
}

func NewBootstrapUseCase(
	detector port.PoseDetector,
	codec port.ImageCodec,
	annotator port.Annotator,
	plotter port.WorldPlotter,
	store port.DatasetStore,
	logger *zap.Logger,
	cfg BootstrapConfig,
) *BootstrapUseCase {
	return &BootstrapUseCase{
		detector:  detector,
		codec:     codec,
		annotator: annotator,
		plotter:   plotter,
		store:     store,
		logger:    logger,
		cfg:       cfg,
	}
}

// classContext carries everything needed to process one pose class. It is
// built fresh per class and never outlives the class scope.
type classContext struct {
	name            string
	imagesInFolder  string
	imagesOutFolder string
	annotatedFolder string
	worldPlotFolder string
	csvPath         string
	writer          port.RecordWriter
}

func (uc *BootstrapUseCase) Execute(ctx context.Context) (*entity.BootstrapRun, error) {
	run := entity.NewBootstrapRun(uc.cfg.Level)
	log := uc.logger.With(
		zap.String("run_id", run.ID.String()),
		zap.String("level", uc.cfg.Level),
	)
	run.MarkProcessing()

	classes, err := ListVisible(uc.cfg.DatasetFolder)
	if err != nil {
		run.MarkFailed(err.Error())
		return run, fmt.Errorf("list pose classes: %w", err)
	}

	if err := os.MkdirAll(uc.cfg.CSVOutFolder, 0755); err != nil {
		run.MarkFailed(err.Error())
		return run, fmt.Errorf("create csv folder: %w", err)
	}

	log.Info("bootstrap started", zap.Int("pose_classes", len(classes)))

	for _, className := range classes {
		select {
		case <-ctx.Done():
			run.MarkFailed(ctx.Err().Error())
			return run, ctx.Err()
		default:
		}

		if err := uc.bootstrapClass(ctx, run, className, log); err != nil {
			run.MarkFailed(err.Error())
			return run, err
		}
		run.ObserveClass()
	}

	run.MarkCompleted()
	log.Info("bootstrap completed",
		zap.Int("classes", run.ClassesProcessed),
		zap.Int("images", run.ImagesProcessed),
		zap.Int("poses_detected", run.PosesDetected),
		zap.Int("detection_misses", run.DetectionMisses),
		zap.Duration("duration", run.Duration()),
	)
	return run, nil
}

func (uc *BootstrapUseCase) bootstrapClass(
	ctx context.Context,
	run *entity.BootstrapRun,
	className string,
	log *zap.Logger,
) error {
	cls := classContext{
		name:            className,
		imagesInFolder:  filepath.Join(uc.cfg.DatasetFolder, className),
		imagesOutFolder: filepath.Join(uc.cfg.ImagesOutFolder, className),
		annotatedFolder: filepath.Join(uc.cfg.AnnotatedOutFolder, className),
		worldPlotFolder: filepath.Join(uc.cfg.WorldPlotOutFolder, className),
		csvPath:         filepath.Join(uc.cfg.CSVOutFolder, className+".csv"),
	}

	for _, dir := range []string{cls.imagesOutFolder, cls.annotatedFolder, cls.worldPlotFolder} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output folder %s: %w", dir, err)
		}
	}

	imageNames, err := ListVisible(cls.imagesInFolder)
	if err != nil {
		return fmt.Errorf("list images for %s: %w", className, err)
	}
	if uc.cfg.PerClassLimit > 0 && len(imageNames) > uc.cfg.PerClassLimit {
		imageNames = imageNames[:uc.cfg.PerClassLimit]
	}

	writer, err := uc.store.OpenWriter(cls.csvPath)
	if err != nil {
		return fmt.Errorf("open csv for %s: %w", className, err)
	}
	defer writer.Close()
	cls.writer = writer

	classTimer := time.Now()
	metrics.ActiveClasses.Inc()
	defer metrics.ActiveClasses.Dec()

	log.Info("bootstrapping pose class",
		zap.String("pose_class", className),
		zap.Int("images", len(imageNames)),
	)

	var bar *progressbar.ProgressBar
	if uc.cfg.Progress {
		bar = progressbar.NewOptions(len(imageNames),
			progressbar.OptionSetDescription("Bootstrapping "+className),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)
	}

	for _, imageName := range imageNames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		detected, err := uc.bootstrapImage(ctx, &cls, imageName)
		if err != nil {
			return fmt.Errorf("bootstrap %s/%s: %w", className, imageName, err)
		}
		metrics.ImagesProcessedTotal.Inc()
		run.ObserveImage(detected)
		if bar != nil {
			bar.Add(1)
		}
	}

	metrics.ClassDuration.WithLabelValues(className).Observe(time.Since(classTimer).Seconds())
	log.Info("pose class bootstrapped",
		zap.String("pose_class", className),
		zap.Duration("duration", time.Since(classTimer)),
	)
	return nil
}

func (uc *BootstrapUseCase) bootstrapImage(ctx context.Context, cls *classContext, imageName string) (bool, error) {
	srcPath := filepath.Join(cls.imagesInFolder, imageName)
	outPath := filepath.Join(cls.imagesOutFolder, imageName)

	det, err := uc.detector.Detect(ctx, srcPath)
	if err != nil {
		return false, fmt.Errorf("detect pose: %w", err)
	}

	// The converted copy is written whether or not a body was found.
	if err := uc.codec.Copy(ctx, srcPath, outPath); err != nil {
		return false, fmt.Errorf("copy image: %w", err)
	}

	if det == nil {
		metrics.DetectionMissesTotal.Inc()
		return false, nil
	}

	rec, err := entity.NewLandmarkRecord(imageName, det)
	if err != nil {
		// A landmark-count mismatch means the detector contract is
		// broken; abort the run rather than mis-record data.
		return false, err
	}

	if err := cls.writer.Append(rec.Fields()); err != nil {
		return false, fmt.Errorf("append csv row: %w", err)
	}
	metrics.RowsWrittenTotal.Inc()

	annotatedPath := filepath.Join(cls.annotatedFolder, imageName+".png")
	if err := uc.annotator.Annotate(ctx, srcPath, annotatedPath, det); err != nil {
		return false, fmt.Errorf("annotate image: %w", err)
	}

	worldPlotPath := filepath.Join(cls.worldPlotFolder, imageName+".png")
	if err := uc.plotter.RenderWorldPlot(ctx, worldPlotPath, det); err != nil {
		return false, fmt.Errorf("render world plot: %w", err)
	}

	metrics.PosesDetectedTotal.Inc()
	return true, nil
}

// ListVisible returns the sorted entry names of dir, excluding hidden
// entries (names starting with a dot).
func ListVisible(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
