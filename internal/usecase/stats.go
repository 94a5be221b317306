package usecase

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
)

// StatsReporter prints per-class image counts. Purely observational.
type StatsReporter struct {
	datasetFolder   string
	imagesOutFolder string
}

func NewStatsReporter(datasetFolder, imagesOutFolder string) *StatsReporter {
	return &StatsReporter{
		datasetFolder:   datasetFolder,
		imagesOutFolder: imagesOutFolder,
	}
}

// PrintInputStatistics counts non-hidden files per class in the input
// tree.
func (r *StatsReporter) PrintInputStatistics(w io.Writer) error {
	return r.print(w, r.datasetFolder)
}

// PrintOutputStatistics counts non-hidden files per class in the output
// tree. Classes not yet bootstrapped report zero.
func (r *StatsReporter) PrintOutputStatistics(w io.Writer) error {
	return r.print(w, r.imagesOutFolder)
}

func (r *StatsReporter) print(w io.Writer, imagesFolder string) error {
	classes, err := ListVisible(r.datasetFolder)
	if err != nil {
		return fmt.Errorf("list pose classes: %w", err)
	}

	fmt.Fprintln(w, "Number of images per pose class:")
	for _, className := range classes {
		names, err := ListVisible(filepath.Join(imagesFolder, className))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("count images for %s: %w", className, err)
		}
		fmt.Fprintf(w, "  %s: %d\n", className, len(names))
	}
	return nil
}
