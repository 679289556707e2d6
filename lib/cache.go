package lib

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CachePath builds the deterministic cache file path for one evaluation:
// <resDir>/eval/<method>/<split>/N<n>-W<k>-T<thr%>.txt. The threshold is
// rounded half away from zero to an integer percent, so writer and reader
// always agree on the name.
func CachePath(resDir, method, split string, n, k int, thr float64) string {
	return filepath.Join(resDir, "eval", method, split,
		fmt.Sprintf("N%05d-W%05d-T%02d.txt", n, k, int(math.Round(thr*100))))
}

// ReadCachedRecall returns the cached scalar and true on a hit. Cached
// values are trusted permanently; there is no staleness check.
func ReadCachedRecall(fname string) (float64, bool) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return 0, false
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(string(bytes)), 64)
	if err != nil {
		return 0, false
	}
	return r, true
}

// WriteCachedRecall writes the scalar as plain ASCII, creating the cache
// directory first. FormatFloat with 'g'/-1 round-trips exactly.
func WriteCachedRecall(fname string, r float64) error {
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return errors.Wrapf(err, "create cache dir for %s", fname)
	}
	data := strconv.FormatFloat(r, 'g', -1, 64) + "\n"
	if err := os.WriteFile(fname, []byte(data), 0644); err != nil {
		return errors.Wrapf(err, "write cache %s", fname)
	}
	return nil
}

// ClearCache removes the cached scalars of one method/split so the next run
// recomputes them.
func ClearCache(resDir, method, split string) {
	ClearDir(filepath.Join(resDir, "eval", method, split))
}
