package usecase

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountsPerClass(t *testing.T) {
	base := t.TempDir()
	in := filepath.Join(base, "in")
	out := filepath.Join(base, "out")
	writeDataset(t, in, map[string][]string{
		"cobra": {"a.jpg", "b.jpg", ".hidden"},
		"squat": {"a.jpg"},
	})
	writeDataset(t, out, map[string][]string{
		"cobra": {"a.jpg"},
	})

	reporter := NewStatsReporter(in, out)

	var buf bytes.Buffer
	require.NoError(t, reporter.PrintInputStatistics(&buf))
	assert.Contains(t, buf.String(), "Number of images per pose class:")
	assert.Contains(t, buf.String(), "  cobra: 2\n")
	assert.Contains(t, buf.String(), "  squat: 1\n")

	// Classes missing from the output tree report zero.
	buf.Reset()
	require.NoError(t, reporter.PrintOutputStatistics(&buf))
	assert.Contains(t, buf.String(), "  cobra: 1\n")
	assert.Contains(t, buf.String(), "  squat: 0\n")
}

func TestListVisibleSortsAndExcludesHidden(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", ".DS_Store", "a.jpg", "c.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	names, err := ListVisible(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, names)
}
