// Package report renders a one-page PDF datasheet for a single design
// point.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/coilworks/gosolenoid/internal/solenoid"
	"github.com/coilworks/gosolenoid/internal/sweep"
	"github.com/coilworks/gosolenoid/internal/wire"
)

// Meta is the datasheet title block. Zero values fall back to a
// generic title with no project or author line.
type Meta struct {
	Title   string
	Project string
	Author  string
}

// Write evaluates the design and renders its datasheet to path.
func Write(d solenoid.Design, meta Meta, path string) error {
	s, err := d.Evaluate()
	if err != nil {
		return err
	}

	title := meta.Title
	if title == "" {
		title = "Solenoid Design Datasheet"
	}
	material := d.Material
	if material == "" {
		material = wire.DefaultMaterial
	}
	temperature := d.Temperature
	if temperature == 0 {
		temperature = wire.ReferenceTemperature
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(heading string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, heading)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(name, value string) {
		pdf.Cell(80, 6, name)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	section("Design parameters")
	row("Voltage", fmt.Sprintf("%g V", float64(d.Voltage)))
	row("Relative permeability", fmt.Sprintf("%g", float64(d.Permeability)))
	row("Wire gauge", fmt.Sprintf("%g AWG", float64(d.Gauge)))
	row("Bore radius", fmt.Sprintf("%g m", float64(d.BoreRadius)))
	row("Length", fmt.Sprintf("%g m", float64(d.Length)))
	row("Turns", fmt.Sprintf("%g", float64(d.Turns)))
	row("Packing density", fmt.Sprintf("%g", float64(d.PackingDensity)))
	row("Wire material", material)
	row("Temperature", fmt.Sprintf("%g K", float64(temperature)))
	pdf.Ln(4)

	section("Winding geometry")
	row("Average winding radius", fmt.Sprintf("%.6f m", float64(s.AverageRadius)))
	row("Wire length", fmt.Sprintf("%.3f m", float64(s.WireLength)))
	row("Winding factor", fmt.Sprintf("%.5f", float64(s.WindingFactor)))
	row("Decay factor", fmt.Sprintf("%.5f", float64(s.DecayFactor)))
	pdf.Ln(4)

	section("Steady-state performance")
	row("Winding resistance", fmt.Sprintf("%.4f ohm", float64(s.Resistance)))
	row("Current", fmt.Sprintf("%.4f A", float64(s.Current)))
	row("Power", fmt.Sprintf("%.4f W", float64(s.Power)))
	row("Force", fmt.Sprintf("%.4f N", float64(s.Force)))
	row("Efficiency", fmt.Sprintf("%.4f N/W", float64(s.Efficiency)))
	pdf.Ln(4)

	section("Ampacity check")
	limit := sweep.CurrentLimit(d.Gauge)
	status := "within limit"
	if float64(s.Current) > float64(limit) {
		status = "EXCEEDS LIMIT"
	}
	row("Max continuous current", fmt.Sprintf("%.2f A", float64(limit)))
	row("Operating current", fmt.Sprintf("%.4f A", float64(s.Current)))
	row("Status", status)

	return pdf.OutputFileAndClose(path)
}
