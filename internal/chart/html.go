package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/coilworks/gosolenoid/internal/sweep"
)

// WriteHTML renders the sweep as a self-contained page of interactive line
// charts, one per quantity, with the ampacity limits overlaid where they
// apply.
func WriteHTML(res *sweep.Result, filename string) error {
	xs := make([]string, len(res.X))
	for i, x := range res.X {
		xs[i] = fmt.Sprintf("%.4g", x)
	}

	page := components.NewPage()
	for _, q := range Quantities {
		ys, label, limit, err := series(res, q)
		if err != nil {
			return err
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				Theme: types.ThemeWesteros,
			}),
			charts.WithTitleOpts(opts.Title{
				Title:    label,
				Subtitle: fmt.Sprintf("vs. %s", res.XLabel()),
			}),
			charts.WithXAxisOpts(opts.XAxis{
				Name: res.XLabel(),
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Scale: opts.Bool(true),
			}),
			charts.WithDataZoomOpts(opts.DataZoom{
				Type:       "inside",
				Start:      0,
				End:        100,
				XAxisIndex: []int{0},
			}),
		)

		data := make([]opts.LineData, len(ys))
		for i, y := range ys {
			data[i] = opts.LineData{Value: y}
		}
		line.SetXAxis(xs).AddSeries(label, data)

		if limit != nil {
			limitData := make([]opts.LineData, len(limit))
			for i, y := range limit {
				limitData[i] = opts.LineData{Value: y}
			}
			line.AddSeries("Ampacity limit", limitData,
				charts.WithLineStyleOpts(opts.LineStyle{
					Color: "red",
					Type:  "dashed",
				}))
		}

		page.AddCharts(line)
	}

	if err := ensureDir(filename); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
