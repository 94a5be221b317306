package csvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWriterTruncatesPriorContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squat.csv")
	store := New()
	require.NoError(t, store.WriteRows(path, [][]string{{"old.jpg", "1"}}))

	w, err := store.OpenWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append([]string{"new.jpg", "2", "3"}))
	require.NoError(t, w.Close())

	rows, err := store.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"new.jpg", "2", "3"}, rows[0])
}

func TestAppendFlushesEachRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squat.csv")
	store := New()

	w, err := store.OpenWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append([]string{"a.jpg", "1"}))

	// Row must be readable before the writer is closed; an interrupted
	// run leaves a usable prefix behind.
	rows, err := store.ReadRows(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, w.Close())
}

func TestReadRowsSkipsEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squat.csv")
	require.NoError(t, os.WriteFile(path, []byte("a.jpg,1\n\n\nb.jpg,2\n\n"), 0644))

	rows, err := New().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a.jpg", rows[0][0])
	assert.Equal(t, "b.jpg", rows[1][0])
}

func TestReadRowsToleratesVaryingWidths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squat.csv")
	require.NoError(t, os.WriteFile(path, []byte("a.jpg,1,2,3\nb.jpg,1\n"), 0644))

	rows, err := New().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 4)
	assert.Len(t, rows[1], 2)
}
