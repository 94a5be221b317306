package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/port"
	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/metrics"
	"go.uber.org/zap"
)

type AlignConfig struct {
	// DatasetFolder is the per-level input tree; pose class names are
	// derived from it, same as during bootstrap.
	DatasetFolder   string
	ImagesOutFolder string
	CSVOutFolder    string
	Level           string

	// LogRemoved logs every removed row and file for auditability.
	LogRemoved bool
}

// AlignUseCase reconciles each class CSV with its output image folder so
// the two form a strict bijection: the CSV is pruned against the
// filesystem first, then the filesystem against the pruned CSV.
type AlignUseCase struct {
	store  port.DatasetStore
	logger *zap.Logger
	cfg    AlignConfig
}

func NewAlignUseCase(store port.DatasetStore, logger *zap.Logger, cfg AlignConfig) *AlignUseCase {
	return &AlignUseCase{store: store, logger: logger, cfg: cfg}
}

func (uc *AlignUseCase) Execute(ctx context.Context) error {
	classes, err := ListVisible(uc.cfg.DatasetFolder)
	if err != nil {
		return fmt.Errorf("list pose classes: %w", err)
	}

	for _, className := range classes {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := uc.alignClass(className); err != nil {
			return fmt.Errorf("align %s: %w", className, err)
		}
	}
	return nil
}

func (uc *AlignUseCase) alignClass(className string) error {
	imagesOutFolder := filepath.Join(uc.cfg.ImagesOutFolder, className)
	csvPath := filepath.Join(uc.cfg.CSVOutFolder, className+".csv")

	log := uc.logger.With(
		zap.String("level", uc.cfg.Level),
		zap.String("pose_class", className),
	)

	rows, err := uc.store.ReadRows(csvPath)
	if err != nil {
		// A missing CSV is treated as empty: every unreferenced image
		// below gets pruned, which restores the bijection.
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read csv: %w", err)
		}
		log.Warn("csv missing, treating as empty", zap.String("csv_path", csvPath))
	}

	// Keep only rows whose referenced image still exists, preserving
	// the original row order.
	kept := make(map[string]struct{}, len(rows))
	keptRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		imageName := row[0]
		imagePath := filepath.Join(imagesOutFolder, imageName)
		if _, err := os.Stat(imagePath); err == nil {
			kept[imageName] = struct{}{}
			keptRows = append(keptRows, row)
			continue
		}
		metrics.SamplesRemovedTotal.WithLabelValues(metrics.RemovedCSVRow).Inc()
		if uc.cfg.LogRemoved {
			log.Info("removed row without image", zap.String("image_path", imagePath))
		}
	}

	if err := uc.store.WriteRows(csvPath, keptRows); err != nil {
		return fmt.Errorf("rewrite csv: %w", err)
	}

	// Then remove every file the pruned CSV no longer references.
	entries, err := os.ReadDir(imagesOutFolder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("list output folder: %w", err)
	}
	for _, e := range entries {
		if _, ok := kept[e.Name()]; ok {
			continue
		}
		imagePath := filepath.Join(imagesOutFolder, e.Name())
		if err := os.Remove(imagePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove image: %w", err)
		}
		metrics.SamplesRemovedTotal.WithLabelValues(metrics.RemovedImage).Inc()
		if uc.cfg.LogRemoved {
			log.Info("removed image without row", zap.String("image_path", imagePath))
		}
	}
	return nil
}
