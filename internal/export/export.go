// Package export writes sweep results to spreadsheet and CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/coilworks/gosolenoid/internal/sweep"
	"github.com/coilworks/gosolenoid/internal/wire"
)

// paramRows lists the configuration for the summary sheet: ranged
// parameters render as "start to end", scalars as plain numbers.
func paramRows(cfg sweep.Config) [][2]interface{} {
	format := func(p sweep.Param) interface{} {
		if len(p) == 2 {
			return fmt.Sprintf("%g to %g", p[0], p[1])
		}
		if len(p) == 1 {
			return p[0]
		}
		return ""
	}

	material := cfg.Material
	if material == "" {
		material = wire.DefaultMaterial
	}
	temperature := float64(cfg.Temperature)
	if temperature == 0 {
		temperature = float64(wire.ReferenceTemperature)
	}

	return [][2]interface{}{
		{"Voltage [V]", format(cfg.Voltage)},
		{"Length [m]", format(cfg.Length)},
		{"Radius [m]", format(cfg.Radius)},
		{"Awg [AWG]", format(cfg.Gauge)},
		{"Turns [#]", format(cfg.Turns)},
		{"Relative Permeability", format(cfg.Permeability)},
		{"Packing Density", format(cfg.PackingDensity)},
		{"Material", material},
		{"Temperature [K]", temperature},
	}
}

func seriesHeader(res *sweep.Result) []string {
	return []string{
		res.XLabel(),
		"Force [N]",
		"Current [A]",
		"Power [W]",
		"Efficiency [N/W]",
		"Current limit [A]",
		"Power limit [W]",
	}
}

func seriesRow(res *sweep.Result, i int) []float64 {
	return []float64{
		res.X[i],
		res.Force[i],
		res.Current[i],
		res.Power[i],
		res.Efficiency[i],
		res.CurrentLimit[i],
		res.PowerLimit[i],
	}
}

// WriteXLSX saves a sweep as a workbook: a Summary sheet holding the
// configuration and a Sweep sheet holding the sampled series.
func WriteXLSX(res *sweep.Result, filename string) error {
	f := excelize.NewFile()

	// --------------------
	// Summary sheet
	// --------------------
	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	f.SetCellValue(summary, "A1", "Parameter")
	f.SetCellValue(summary, "B1", "Value")

	row := 2
	for _, pr := range paramRows(res.Config) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(summary, cell, pr[0])
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(summary, cell, pr[1])
		row++
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(summary, cell, "Swept axis")
	cell, _ = excelize.CoordinatesToCellName(2, row)
	f.SetCellValue(summary, cell, res.XLabel())
	row++
	cell, _ = excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(summary, cell, "Samples")
	cell, _ = excelize.CoordinatesToCellName(2, row)
	f.SetCellValue(summary, cell, len(res.X))

	// --------------------
	// Sweep sheet
	// --------------------
	sheet := "Sweep"
	f.NewSheet(sheet)

	for col, h := range seriesHeader(res) {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i := range res.X {
		for col, v := range seriesRow(res, i) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f.SaveAs(filename)
}

// WriteCSV saves the sampled series with a header row.
func WriteCSV(res *sweep.Result, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)

	if err := w.Write(seriesHeader(res)); err != nil {
		return err
	}
	for i := range res.X {
		row := make([]string, 0, 7)
		for _, v := range seriesRow(res, i) {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
