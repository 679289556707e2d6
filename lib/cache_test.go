package lib

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePathScheme(t *testing.T) {
	fname := CachePath("boxes", "edgeBoxes", "val", 100, 1000, 0.70)
	assert.Equal(t, filepath.Join("boxes", "eval", "edgeBoxes", "val", "N00100-W01000-T70.txt"), fname)
}

func TestCachePathThresholdRounding(t *testing.T) {
	// 0.875*100 is exactly 87.5; half away from zero rounds up
	fname := CachePath("boxes", "m", "val", 1, 1, 0.875)
	assert.Equal(t, "N00001-W00001-T88.txt", filepath.Base(fname))

	fname = CachePath("boxes", "m", "val", 1, 1, 0.5)
	assert.Equal(t, "N00001-W00001-T50.txt", filepath.Base(fname))
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fname := CachePath(dir, "edgeBoxes", "val", 100, 1000, 0.70)

	_, ok := ReadCachedRecall(fname)
	assert.False(t, ok)

	want := 1.0 / 3.0
	require.NoError(t, WriteCachedRecall(fname, want))
	got, ok := ReadCachedRecall(fname)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestClearCache(t *testing.T) {
	dir := t.TempDir()
	fname := CachePath(dir, "m", "val", 10, 10, 0.7)
	require.NoError(t, WriteCachedRecall(fname, 0.5))

	ClearCache(dir, "m", "val")
	_, ok := ReadCachedRecall(fname)
	assert.False(t, ok)
}
