package lib

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Dataset holds the per-image ground-truth annotations for one split.
// It is loaded once per run and never mutated.
type Dataset struct {
	Split  string
	Images [][]GtBox
}

// LoadDataset reads <gtDir>/<split>.json, a JSON array with one list of
// ground-truth boxes per image.
func LoadDataset(gtDir string, split string) (*Dataset, error) {
	fname := filepath.Join(gtDir, split+".json")
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "load ground truth %s", fname)
	}
	var images [][]GtBox
	if err := json.Unmarshal(bytes, &images); err != nil {
		return nil, errors.Wrapf(err, "parse ground truth %s", fname)
	}
	return &Dataset{
		Split:  split,
		Images: images,
	}, nil
}

// Truncate returns the first n images, or all of them when n is zero or
// exceeds the dataset size.
func (ds *Dataset) Truncate(n int) [][]GtBox {
	if n <= 0 || n > len(ds.Images) {
		n = len(ds.Images)
	}
	return ds.Images[:n]
}
