package lib

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ProposalSet holds the pre-computed candidate boxes of one method, one
// entry per image in dataset order. The per-image order is the order the
// method emitted; TopK truncation must preserve it.
type ProposalSet struct {
	Method string
	Images [][]Box
}

type proposalFile struct {
	Bbs [][][5]float64 `json:"bbs"`
}

// LoadProposals reads <resDir>/<method>-<split>.json, a JSON object with a
// "bbs" array holding one [x, y, width, height, score] row list per image.
func LoadProposals(resDir string, method string, split string) (*ProposalSet, error) {
	fname := filepath.Join(resDir, fmt.Sprintf("%s-%s.json", method, split))
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "load proposals for %s", method)
	}
	var pf proposalFile
	if err := json.Unmarshal(bytes, &pf); err != nil {
		return nil, errors.Wrapf(err, "parse proposals %s", fname)
	}
	images := make([][]Box, len(pf.Bbs))
	for i, rows := range pf.Bbs {
		boxes := make([]Box, len(rows))
		for j, row := range rows {
			boxes[j] = BoxFromRow(row)
		}
		images[i] = boxes
	}
	return &ProposalSet{
		Method: method,
		Images: images,
	}, nil
}

// TopK returns the first k boxes of each of the first n images, keeping the
// stored order. Images with fewer than k boxes keep what they have.
func (ps *ProposalSet) TopK(n int, k int) [][]Box {
	if n <= 0 || n > len(ps.Images) {
		n = len(ps.Images)
	}
	out := make([][]Box, n)
	for i := 0; i < n; i++ {
		boxes := ps.Images[i]
		out[i] = boxes[:MinInt(k, len(boxes))]
	}
	return out
}
