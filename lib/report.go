package lib

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/go-ansi"
	"github.com/mitchellh/colorstring"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate"
)

// RecallTarget is the recall level the M summary statistic asks about: the
// smallest proposal count whose recall reaches it.
const RecallTarget = 0.75

// AreaUnderCurve integrates recall against the log-count axis normalized to
// [0,1], so a flat curve at recall r scores exactly r.
func AreaUnderCurve(counts []int, curve []float64) float64 {
	xs := make([]float64, len(counts))
	lo := math.Log(float64(counts[0]))
	hi := math.Log(float64(counts[len(counts)-1]))
	for i, c := range counts {
		xs[i] = (math.Log(float64(c)) - lo) / (hi - lo)
	}
	return integrate.Trapezoidal(xs, curve)
}

// ProposalsNeeded returns the smallest count whose recall reaches the
// target, interpolating between the bracketing counts in log space. The
// second return is false when the curve never gets there.
func ProposalsNeeded(counts []int, curve []float64, target float64) (int, bool) {
	for i, r := range curve {
		if r < target {
			continue
		}
		if i == 0 {
			return counts[0], true
		}
		logPrev := math.Log(float64(counts[i-1]))
		logCur := math.Log(float64(counts[i]))
		frac := (target - curve[i-1]) / (r - curve[i-1])
		return int(math.Round(math.Exp(logPrev + frac*(logCur-logPrev)))), true
	}
	return 0, false
}

// SummaryLine formats the per-(threshold, method) console line. M prints as
// "inf" when the target recall is out of reach.
func SummaryLine(method string, thr, auc float64, m int, bounded bool, r float64) string {
	mstr := "inf"
	if bounded {
		mstr = fmt.Sprintf("%d", m)
	}
	return fmt.Sprintf("%-16s T=%.2f A=%.2f M=%4s R=%.2f", method, thr, auc, mstr, r)
}

// Report prints one summary line per (threshold, method). With a single
// count value there is no curve to summarize and nothing is printed.
func Report(tensor *ResultTensor) {
	if len(tensor.Counts) < 2 {
		return
	}
	color.Output = ansi.NewAnsiStdout()
	for ti, thr := range tensor.Thresholds {
		for mi, method := range tensor.Methods {
			curve := tensor.CountCurve(ti, mi)
			auc := AreaUnderCurve(tensor.Counts, curve)
			m, bounded := ProposalsNeeded(tensor.Counts, curve, RecallTarget)
			colorstring.Println("[green]" + SummaryLine(method, thr, auc, m, bounded, FloatsMax(curve)))
		}
	}
}

// WriteResultTable writes the tensor as a tab-delimited text table at
// <resDir>/plots/<fName>-<split>.txt: one row per count, one column per
// (method, threshold) pair.
func WriteResultTable(tensor *ResultTensor, resDir, fName, split string) error {
	dir := filepath.Join(resDir, "plots")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create plots dir")
	}
	var sb strings.Builder
	sb.WriteString("count")
	for _, method := range tensor.Methods {
		for _, thr := range tensor.Thresholds {
			sb.WriteString(fmt.Sprintf("\t%s@%.2f", method, thr))
		}
	}
	sb.WriteString("\n")
	for ci, cnt := range tensor.Counts {
		sb.WriteString(fmt.Sprintf("%d", cnt))
		for mi := range tensor.Methods {
			for ti := range tensor.Thresholds {
				sb.WriteString(fmt.Sprintf("\t%v", tensor.R[ci][ti][mi]))
			}
		}
		sb.WriteString("\n")
	}
	fname := filepath.Join(dir, fmt.Sprintf("%s-%s.txt", fName, split))
	if err := os.WriteFile(fname, []byte(sb.String()), 0644); err != nil {
		return errors.Wrapf(err, "write result table %s", fname)
	}
	return nil
}
