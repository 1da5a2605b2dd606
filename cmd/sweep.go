package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coilworks/gosolenoid/internal/chart"
	"github.com/coilworks/gosolenoid/internal/export"
	"github.com/coilworks/gosolenoid/internal/sweep"
	"github.com/coilworks/gosolenoid/internal/units"
)

var (
	// Design parameters, one value to hold fixed or two for a range
	sweepVoltage      []float64
	sweepLength       []float64
	sweepRadius       []float64
	sweepGauge        []float64
	sweepTurns        []float64
	sweepPermeability []float64
	sweepDensity      []float64

	// Wire options
	sweepMaterial    string
	sweepTemperature float64

	// Output sinks
	sweepOutput   string
	sweepQuantity string
	sweepASCII    bool
	sweepHTML     string
	sweepXLSX     string
	sweepCSV      string

	// Figure geometry
	sweepWidth  float64
	sweepHeight float64
	sweepDPI    int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Plot solenoid properties as one parameter sweeps a range",
	Long: `Evaluate force, current, power and efficiency while ONE design
parameter sweeps a range and the others stay fixed.

Scalar parameters are given as a single number, the swept parameter as a
start,end pair. Exactly one parameter must be a pair. Parameters left out
entirely fall back to the [design] section of the config file.

The current and power panels carry red dashed ampacity limits from the
chassis wiring tables.

Examples:
  # Force/current/power/efficiency vs. voltage, previewed in the terminal
  gosolenoid sweep -v 2,8 -l 0.027 -r 0.0023 -a 30 -N 572 -p 375 -d 0.25

  # The same sweep as a five-panel PNG figure
  gosolenoid sweep -v 2,8 -l 0.027 -r 0.0023 -a 30 -N 572 -p 375 -d 0.25 -o sweep.png

  # Gauge sweep exported as a workbook
  gosolenoid sweep -v 4.3 -l 0.027 -r 0.0023 -a 20,34 -N 572 -p 375 -d 0.25 --xlsx sweep.xlsx`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64SliceVarP(&sweepVoltage, "voltage", "v", nil, "Solenoid voltage in V (scalar or start,end)")
	sweepCmd.Flags().Float64SliceVarP(&sweepLength, "length", "l", nil, "Solenoid length in m (scalar or start,end)")
	sweepCmd.Flags().Float64SliceVarP(&sweepRadius, "radius", "r", nil, "Solenoid inner radius in m (scalar or start,end)")
	sweepCmd.Flags().Float64SliceVarP(&sweepGauge, "awg", "a", nil, "Wire AWG gauge (scalar or start,end)")
	sweepCmd.Flags().Float64SliceVarP(&sweepTurns, "turns", "N", nil, "Number of turns (scalar or start,end)")
	sweepCmd.Flags().Float64SliceVarP(&sweepPermeability, "permeability", "p", nil, "Relative permeability (scalar or start,end)")
	sweepCmd.Flags().Float64SliceVarP(&sweepDensity, "density", "d", nil, "Packing density (scalar or start,end)")

	sweepCmd.Flags().StringVar(&sweepMaterial, "material", "", "Wire material (default copper)")
	sweepCmd.Flags().Float64Var(&sweepTemperature, "temperature", 0, "Wire temperature in K (default 293)")

	sweepCmd.Flags().StringVarP(&sweepOutput, "output", "o", "", "Write the figure to this file (png, svg, pdf)")
	sweepCmd.Flags().StringVar(&sweepQuantity, "quantity", "", "Plot a single quantity: force, current, power or efficiency")
	sweepCmd.Flags().BoolVar(&sweepASCII, "ascii", false, "Print terminal preview graphs")
	sweepCmd.Flags().StringVar(&sweepHTML, "html", "", "Write interactive charts to this HTML file")
	sweepCmd.Flags().StringVar(&sweepXLSX, "xlsx", "", "Write the sampled series to this XLSX workbook")
	sweepCmd.Flags().StringVar(&sweepCSV, "csv", "", "Write the sampled series to this CSV file")

	sweepCmd.Flags().Float64Var(&sweepWidth, "width", 0, "Figure width in inches")
	sweepCmd.Flags().Float64Var(&sweepHeight, "height", 0, "Figure height in inches")
	sweepCmd.Flags().IntVar(&sweepDPI, "dpi", 0, "Figure resolution")
}

func runSweep(cmd *cobra.Command, args []string) {
	cfg, missing := sweepConfig(cmd)
	if len(missing) > 0 {
		fmt.Printf("Error: missing design parameters: %s\n", strings.Join(missing, ", "))
		fmt.Println("Provide them as flags or as [design] keys in the config file.")
		return
	}

	res, err := sweep.Run(cfg)
	if err != nil {
		fmt.Printf("Error running sweep: %v\n", err)
		return
	}

	opts := figureOptions(cmd)

	wrote := false
	if sweepOutput != "" {
		if sweepQuantity != "" {
			err = chart.WriteQuantity(res, chart.Quantity(sweepQuantity), sweepOutput, opts)
		} else {
			err = chart.WritePNG(res, sweepOutput, opts)
		}
		if err != nil {
			fmt.Printf("Error writing figure: %v\n", err)
			return
		}
		fmt.Printf("Figure written to %s\n", sweepOutput)
		wrote = true
	}
	if sweepHTML != "" {
		if err := chart.WriteHTML(res, sweepHTML); err != nil {
			fmt.Printf("Error writing HTML charts: %v\n", err)
			return
		}
		fmt.Printf("HTML charts written to %s\n", sweepHTML)
		wrote = true
	}
	if sweepXLSX != "" {
		if err := export.WriteXLSX(res, sweepXLSX); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
			return
		}
		fmt.Printf("Workbook written to %s\n", sweepXLSX)
		wrote = true
	}
	if sweepCSV != "" {
		if err := export.WriteCSV(res, sweepCSV); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("CSV written to %s\n", sweepCSV)
		wrote = true
	}

	if sweepASCII || !wrote {
		fmt.Println(chart.Preview(res, 72, 8))
	}
}

// sweepConfig merges the parameter flags over the config file defaults and
// reports the parameters that ended up with neither.
func sweepConfig(cmd *cobra.Command) (sweep.Config, []string) {
	var missing []string
	param := func(flag string, vals []float64, def *float64) sweep.Param {
		if cmd.Flags().Changed(flag) {
			return sweep.Param(vals)
		}
		if def != nil {
			return sweep.Param{*def}
		}
		missing = append(missing, "--"+flag)
		return nil
	}

	d := toolCfg.Design
	cfg := sweep.Config{
		Voltage:        param("voltage", sweepVoltage, d.Voltage),
		Length:         param("length", sweepLength, d.Length),
		Radius:         param("radius", sweepRadius, d.Radius),
		Gauge:          param("awg", sweepGauge, d.Gauge),
		Turns:          param("turns", sweepTurns, d.Turns),
		Permeability:   param("permeability", sweepPermeability, d.Permeability),
		PackingDensity: param("density", sweepDensity, d.PackingDensity),
		Material:       sweepMaterial,
		Temperature:    units.Temperature(sweepTemperature),
		Trace:          tracer(),
	}
	if cfg.Material == "" {
		cfg.Material = d.Material
	}
	if !cmd.Flags().Changed("temperature") && d.Temperature != nil {
		cfg.Temperature = units.Temperature(*d.Temperature)
	}
	return cfg, missing
}

// figureOptions merges the geometry flags over the config file [chart]
// section.
func figureOptions(cmd *cobra.Command) chart.Options {
	o := chart.Options{
		Width:  toolCfg.Chart.Width,
		Height: toolCfg.Chart.Height,
		DPI:    toolCfg.Chart.DPI,
	}
	if cmd.Flags().Changed("width") {
		o.Width = sweepWidth
	}
	if cmd.Flags().Changed("height") {
		o.Height = sweepHeight
	}
	if cmd.Flags().Changed("dpi") {
		o.DPI = sweepDPI
	}
	return o
}
