package lib

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var recallTicks = plot.ConstantTicks([]plot.Tick{
	{Value: 0, Label: "0.0"},
	{Value: 0.2, Label: "0.2"},
	{Value: 0.4, Label: "0.4"},
	{Value: 0.6, Label: "0.6"},
	{Value: 0.8, Label: "0.8"},
	{Value: 1, Label: "1.0"},
})

// methodColor picks the curve color for a method: the configured palette
// entry if present, otherwise the fixed indexed palette, so repeated runs
// color methods identically.
func methodColor(colors []string, idx int) color.Color {
	if idx < len(colors) {
		if c, err := parseHexColor(colors[idx]); err == nil {
			return c
		}
	}
	return plotutil.Color(idx)
}

func parseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 255
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, errors.Wrapf(err, "bad color %q", s)
	}
	return c, nil
}

func newRecallPlot(title, xLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Recall"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Y.Tick.Marker = recallTicks
	p.Add(plotter.NewGrid())
	return p
}

func addCurve(p *plot.Plot, label string, xs, ys []float64, c color.Color) error {
	data := make(plotter.XYs, len(xs))
	for i := range data {
		data[i].X = xs[i]
		data[i].Y = ys[i]
	}
	line, err := plotter.NewLine(data)
	if err != nil {
		return errors.Wrapf(err, "curve %s", label)
	}
	line.Color = c
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

func savePlot(p *plot.Plot, resDir, fname string) error {
	dir := filepath.Join(resDir, "plots")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create plots dir")
	}
	savePath := filepath.Join(dir, fname)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, savePath); err != nil {
		return errors.Wrapf(err, "save plot %s", savePath)
	}
	return nil
}

// PlotRecallVsCount renders recall against proposal count on a log x-axis,
// one curve per (method, threshold). Skipped when only one count exists.
// The chart lands at <resDir>/plots/Cnt-<split>-<fName>.png.
func PlotRecallVsCount(tensor *ResultTensor, colors []string, resDir, split, fName string) error {
	if len(tensor.Counts) < 2 {
		return nil
	}
	p := newRecallPlot("Recall vs proposal count ("+split+")", "Proposals")
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	xs := make([]float64, len(tensor.Counts))
	for i, c := range tensor.Counts {
		xs[i] = float64(c)
	}
	for mi, method := range tensor.Methods {
		for ti, thr := range tensor.Thresholds {
			label := fmt.Sprintf("%s T=%.2f", method, thr)
			if err := addCurve(p, label, xs, tensor.CountCurve(ti, mi), methodColor(colors, mi)); err != nil {
				return err
			}
		}
	}
	return savePlot(p, resDir, fmt.Sprintf("Cnt-%s-%s.png", split, fName))
}

// PlotRecallVsIoU renders recall against the IoU threshold on a linear
// x-axis, one curve per (method, count). Skipped when only one threshold
// exists. The chart lands at <resDir>/plots/IoU-<split>-<fName>.png.
func PlotRecallVsIoU(tensor *ResultTensor, colors []string, resDir, split, fName string) error {
	if len(tensor.Thresholds) < 2 {
		return nil
	}
	p := newRecallPlot("Recall vs IoU threshold ("+split+")", "IoU")

	for mi, method := range tensor.Methods {
		for ci, cnt := range tensor.Counts {
			label := fmt.Sprintf("%s W=%d", method, cnt)
			if err := addCurve(p, label, tensor.Thresholds, tensor.ThresholdCurve(ci, mi), methodColor(colors, mi)); err != nil {
				return err
			}
		}
	}
	return savePlot(p, resDir, fmt.Sprintf("IoU-%s-%s.png", split, fName))
}
