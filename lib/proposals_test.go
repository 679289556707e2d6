package lib

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProposals(t *testing.T) {
	resDir := t.TempDir()
	writeProposalFile(t, resDir, "edgeBoxes", "val", [][][5]float64{
		{{1, 2, 3, 4, 0.9}, {5, 6, 7, 8, 0.8}},
		{},
	})

	ps, err := LoadProposals(resDir, "edgeBoxes", "val")
	require.NoError(t, err)
	require.Len(t, ps.Images, 2)
	assert.Equal(t, Box{X: 1, Y: 2, W: 3, H: 4, Score: 0.9}, ps.Images[0][0])
	assert.Empty(t, ps.Images[1])
}

func TestLoadProposalsMissing(t *testing.T) {
	_, err := LoadProposals(t.TempDir(), "nope", "val")
	require.Error(t, err)
}

func TestTopKKeepsOrder(t *testing.T) {
	ps := &ProposalSet{
		Method: "m",
		Images: [][]Box{{
			{X: 1, Score: 0.1},
			{X: 2, Score: 0.9},
			{X: 3, Score: 0.5},
		}},
	}

	// truncation takes the first K rows as stored, never re-sorting by score
	top := ps.TopK(1, 2)
	require.Len(t, top[0], 2)
	assert.Equal(t, 1.0, top[0][0].X)
	assert.Equal(t, 2.0, top[0][1].X)

	// K beyond the supply returns everything, no padding
	top = ps.TopK(1, 10)
	assert.Len(t, top[0], 3)
}

func TestLoadDataset(t *testing.T) {
	gtDir := t.TempDir()
	writeGtFile(t, gtDir, "train", [][]GtBox{
		{{X: 0, Y: 0, W: 5, H: 5}},
		{{X: 1, Y: 1, W: 5, H: 5, Ignore: true}},
	})

	ds, err := LoadDataset(gtDir, "train")
	require.NoError(t, err)
	assert.Equal(t, "train", ds.Split)
	require.Len(t, ds.Images, 2)
	assert.True(t, ds.Images[1][0].Ignore)

	assert.Len(t, ds.Truncate(1), 1)
	assert.Len(t, ds.Truncate(0), 2)
	assert.Len(t, ds.Truncate(5), 2)

	_, err = LoadDataset(gtDir, "test")
	require.Error(t, err)

	fname := filepath.Join(gtDir, "train.json")
	assert.FileExists(t, fname)
}
