package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/infra/csvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type alignFixture struct {
	cfg AlignConfig
	uc  *AlignUseCase
}

func newAlignFixture(t *testing.T, className string) alignFixture {
	t.Helper()
	base := t.TempDir()
	cfg := AlignConfig{
		DatasetFolder:   filepath.Join(base, "in"),
		ImagesOutFolder: filepath.Join(base, "out"),
		CSVOutFolder:    filepath.Join(base, "csv"),
		Level:           "beginner",
	}
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.DatasetFolder, className), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ImagesOutFolder, className), 0755))
	require.NoError(t, os.MkdirAll(cfg.CSVOutFolder, 0755))
	return alignFixture{
		cfg: cfg,
		uc:  NewAlignUseCase(csvstore.New(), zap.NewNop(), cfg),
	}
}

func (fx alignFixture) writeImages(t *testing.T, className string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(fx.cfg.ImagesOutFolder, className, name)
		require.NoError(t, os.WriteFile(path, []byte("img"), 0644))
	}
}

func (fx alignFixture) writeRows(t *testing.T, className string, imageNames ...string) {
	t.Helper()
	rows := make([][]string, 0, len(imageNames))
	for _, name := range imageNames {
		rows = append(rows, []string{name, "1.5", "2.5", "3.5"})
	}
	path := filepath.Join(fx.cfg.CSVOutFolder, className+".csv")
	require.NoError(t, csvstore.New().WriteRows(path, rows))
}

func (fx alignFixture) snapshot(t *testing.T, className string) ([][]string, []string) {
	t.Helper()
	rows, err := csvstore.New().ReadRows(filepath.Join(fx.cfg.CSVOutFolder, className+".csv"))
	require.NoError(t, err)
	names, err := ListVisible(filepath.Join(fx.cfg.ImagesOutFolder, className))
	require.NoError(t, err)
	return rows, names
}

func TestAlignRestoresBijection(t *testing.T) {
	fx := newAlignFixture(t, "squat")
	fx.writeRows(t, "squat", "a.jpg", "b.jpg", "c.jpg")
	// b.jpg has no file; d.jpg has no row.
	fx.writeImages(t, "squat", "a.jpg", "c.jpg", "d.jpg")

	require.NoError(t, fx.uc.Execute(context.Background()))

	rows, names := fx.snapshot(t, "squat")
	require.Len(t, rows, 2)
	assert.Equal(t, "a.jpg", rows[0][0])
	assert.Equal(t, "c.jpg", rows[1][0])
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, names)
}

func TestAlignPreservesRowOrder(t *testing.T) {
	fx := newAlignFixture(t, "squat")
	// Rows deliberately not in sorted order.
	fx.writeRows(t, "squat", "c.jpg", "a.jpg", "b.jpg")
	fx.writeImages(t, "squat", "a.jpg", "c.jpg")

	require.NoError(t, fx.uc.Execute(context.Background()))

	rows, _ := fx.snapshot(t, "squat")
	require.Len(t, rows, 2)
	assert.Equal(t, "c.jpg", rows[0][0])
	assert.Equal(t, "a.jpg", rows[1][0])
}

func TestAlignIdempotent(t *testing.T) {
	fx := newAlignFixture(t, "squat")
	fx.writeRows(t, "squat", "a.jpg", "b.jpg")
	fx.writeImages(t, "squat", "b.jpg", "e.jpg")

	require.NoError(t, fx.uc.Execute(context.Background()))
	firstRows, firstNames := fx.snapshot(t, "squat")

	require.NoError(t, fx.uc.Execute(context.Background()))
	secondRows, secondNames := fx.snapshot(t, "squat")

	assert.Equal(t, firstRows, secondRows)
	assert.Equal(t, firstNames, secondNames)
}

func TestAlignMissingCSVPrunesFolder(t *testing.T) {
	fx := newAlignFixture(t, "squat")
	fx.writeImages(t, "squat", "orphan.jpg")

	require.NoError(t, fx.uc.Execute(context.Background()))

	names, err := ListVisible(filepath.Join(fx.cfg.ImagesOutFolder, "squat"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestAlignSkipsEmptyCSVLines(t *testing.T) {
	fx := newAlignFixture(t, "squat")
	csvPath := filepath.Join(fx.cfg.CSVOutFolder, "squat.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("a.jpg,1,2,3\n\n\nb.jpg,4,5,6\n"), 0644))
	fx.writeImages(t, "squat", "a.jpg", "b.jpg")

	require.NoError(t, fx.uc.Execute(context.Background()))

	rows, _ := fx.snapshot(t, "squat")
	require.Len(t, rows, 2)
	assert.Equal(t, "a.jpg", rows[0][0])
	assert.Equal(t, "b.jpg", rows[1][0])
}
