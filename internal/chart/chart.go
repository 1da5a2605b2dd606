// Package chart renders sweep results: a tiled five-panel figure, single
// quantity image files, ASCII terminal previews and an interactive HTML
// page.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/coilworks/gosolenoid/internal/sweep"
)

// Quantity selects one of the swept series.
type Quantity string

const (
	Force      Quantity = "force"
	Current    Quantity = "current"
	Power      Quantity = "power"
	Efficiency Quantity = "efficiency"
)

// Quantities lists the swept series in figure order, top to bottom.
var Quantities = []Quantity{Force, Current, Power, Efficiency}

// Options control figure geometry.
type Options struct {
	Width  float64 // inches
	Height float64 // inches
	DPI    int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 10
	}
	if o.Height <= 0 {
		o.Height = 10
	}
	if o.DPI <= 0 {
		o.DPI = 100
	}
	return o
}

var (
	seriesColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	limitColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// series maps a quantity to its values, axis label and limit curve, if any.
func series(res *sweep.Result, q Quantity) (ys []float64, label string, limit []float64, err error) {
	switch q {
	case Force:
		return res.Force, "Force [N]", nil, nil
	case Current:
		return res.Current, "Current [A]", res.CurrentLimit, nil
	case Power:
		return res.Power, "Power [W]", res.PowerLimit, nil
	case Efficiency:
		return res.Efficiency, "Efficiency [N/W]", nil, nil
	}
	return nil, "", nil, fmt.Errorf("unknown quantity %q", q)
}

func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// quantityPlot builds one panel: the quantity line, plus the red dashed
// ampacity limit where one applies.
func quantityPlot(res *sweep.Result, q Quantity) (*plot.Plot, error) {
	ys, label, limit, err := series(res, q)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Y.Label.Text = label

	line, err := plotter.NewLine(xyPoints(res.X, ys))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = seriesColor
	p.Add(line)

	if limit != nil {
		limitLine, err := plotter.NewLine(xyPoints(res.X, limit))
		if err != nil {
			return nil, err
		}
		limitLine.LineStyle.Width = vg.Points(1.5)
		limitLine.LineStyle.Color = limitColor
		limitLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(limitLine)
	}

	return p, nil
}

// legendPanel builds the top panel: the figure title and the held scalar
// parameters, no axes.
func legendPanel(res *sweep.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Solenoid properties vs. %s", res.Axis)
	p.HideAxes()

	n := len(res.Fixed)
	xys := make([]plotter.XY, n)
	for i := range res.Fixed {
		xys[i] = plotter.XY{X: 0.02, Y: float64(n - i)}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: res.Fixed})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, float64(n)+1
	return p, nil
}

// WritePNG renders the full figure: a legend panel over the four quantity
// panels, sharing the swept-parameter X axis label on the bottom panel.
func WritePNG(res *sweep.Result, filename string, o Options) error {
	o = o.withDefaults()

	legend, err := legendPanel(res)
	if err != nil {
		return err
	}

	rows := len(Quantities) + 1
	panels := make([][]*plot.Plot, rows)
	panels[0] = []*plot.Plot{legend}
	for i, q := range Quantities {
		p, err := quantityPlot(res, q)
		if err != nil {
			return err
		}
		if i == len(Quantities)-1 {
			p.X.Label.Text = res.XLabel()
		}
		panels[i+1] = []*plot.Plot{p}
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch),
		vgimg.UseDPI(o.DPI),
	)
	canvases := plot.Align(panels, draw.Tiles{
		Rows: rows,
		Cols: 1,
		PadX: vg.Points(4),
		PadY: vg.Points(4),
	}, draw.New(img))
	for r := range panels {
		panels[r][0].Draw(canvases[r][0])
	}

	if err := ensureDir(filename); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteQuantity renders a single quantity chart. The file extension picks
// the format; anything unrecognized falls back to PNG.
func WriteQuantity(res *sweep.Result, q Quantity, filename string, o Options) error {
	o = o.withDefaults()

	p, err := quantityPlot(res, q)
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("Solenoid %s vs. %s", q, res.Axis)
	p.X.Label.Text = res.XLabel()

	if err := ensureDir(filename); err != nil {
		return err
	}

	width := vg.Length(o.Width) * vg.Inch
	height := vg.Length(o.Height) * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
