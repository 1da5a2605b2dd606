package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coilworks/gosolenoid/internal/chart"
	"github.com/coilworks/gosolenoid/internal/solenoid"
	"github.com/coilworks/gosolenoid/internal/sweep"
	"github.com/coilworks/gosolenoid/internal/units"
	"github.com/coilworks/gosolenoid/internal/wire"
)

var (
	// Design parameters
	designVoltage      float64
	designLength       float64
	designRadius       float64
	designGauge        float64
	designTurns        float64
	designPermeability float64
	designDensity      float64

	// Wire options
	designMaterial    string
	designTemperature float64

	// Alternative input
	designFile string
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Evaluate a single solenoid design point",
	Long: `Evaluate force, current, power and efficiency for one design.

Parameters come from flags, from a JSON design file, or from the [design]
section of the config file, in that order of precedence.

Examples:
  # The worked example from the force derivation
  gosolenoid point -v 4.3 -l 0.027 -r 0.0023 -a 30 -N 572 -p 375 -d 0.25

  # From a design file, with intermediate quantities logged
  gosolenoid point -f examples/latch.json --trace`,
	Run: runPoint,
}

func init() {
	rootCmd.AddCommand(pointCmd)

	pointCmd.Flags().Float64VarP(&designVoltage, "voltage", "v", 0, "Solenoid voltage (V)")
	pointCmd.Flags().Float64VarP(&designLength, "length", "l", 0, "Solenoid length (m)")
	pointCmd.Flags().Float64VarP(&designRadius, "radius", "r", 0, "Solenoid inner radius (m)")
	pointCmd.Flags().Float64VarP(&designGauge, "awg", "a", 0, "Wire AWG gauge")
	pointCmd.Flags().Float64VarP(&designTurns, "turns", "N", 0, "Number of turns")
	pointCmd.Flags().Float64VarP(&designPermeability, "permeability", "p", 0, "Relative permeability")
	pointCmd.Flags().Float64VarP(&designDensity, "density", "d", 0, "Packing density")

	pointCmd.Flags().StringVar(&designMaterial, "material", "", "Wire material (default copper)")
	pointCmd.Flags().Float64Var(&designTemperature, "temperature", 0, "Wire temperature in K (default 293)")

	pointCmd.Flags().StringVarP(&designFile, "file", "f", "", "Path to design JSON file")
}

func runPoint(cmd *cobra.Command, args []string) {
	design, err := designFromFlags(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	design.Trace = tracer()

	s, err := design.Evaluate()
	if err != nil {
		fmt.Printf("Error evaluating design: %v\n", err)
		return
	}

	material := design.Material
	if material == "" {
		material = wire.DefaultMaterial
	}
	temperature := design.Temperature
	if temperature == 0 {
		temperature = wire.ReferenceTemperature
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("            SOLENOID DESIGN POINT EVALUATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("DESIGN PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Voltage:\t%g V\n", float64(design.Voltage))
	fmt.Fprintf(w, "  Length:\t%g m\n", float64(design.Length))
	fmt.Fprintf(w, "  Inner radius:\t%g m\n", float64(design.BoreRadius))
	fmt.Fprintf(w, "  Wire gauge:\t%g AWG\n", float64(design.Gauge))
	fmt.Fprintf(w, "  Turns:\t%g\n", float64(design.Turns))
	fmt.Fprintf(w, "  Relative permeability:\t%g\n", float64(design.Permeability))
	fmt.Fprintf(w, "  Packing density:\t%g\n", float64(design.PackingDensity))
	fmt.Fprintf(w, "  Wire material:\t%s at %g K\n", material, float64(temperature))
	w.Flush()
	fmt.Println()

	fmt.Println("WINDING GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Average winding radius:\t%.6f m\n", float64(s.AverageRadius))
	fmt.Fprintf(w, "  Wire length:\t%.3f m\n", float64(s.WireLength))
	fmt.Fprintf(w, "  Winding factor:\t%.5f\n", float64(s.WindingFactor))
	fmt.Fprintf(w, "  Decay factor:\t%.5f\n", float64(s.DecayFactor))
	w.Flush()
	fmt.Println()

	fmt.Println("STEADY STATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Resistance:\t%.4f Ω\n", float64(s.Resistance))
	fmt.Fprintf(w, "  Current:\t%.4f A\n", float64(s.Current))
	fmt.Fprintf(w, "  Power:\t%.4f W\n", float64(s.Power))
	w.Flush()
	fmt.Println()

	limit := sweep.CurrentLimit(design.Gauge)
	ampacity := fmt.Sprintf("within %.2f A limit", float64(limit))
	if float64(s.Current) > float64(limit) {
		ampacity = fmt.Sprintf("EXCEEDS %.2f A limit", float64(limit))
	}

	fmt.Print(chart.DrawSummaryBox("RESULTS", []string{
		fmt.Sprintf("Force       = %.4f N", float64(s.Force)),
		fmt.Sprintf("Efficiency  = %.4f N/W", float64(s.Efficiency)),
		fmt.Sprintf("Current     = %.4f A (%s)", float64(s.Current), ampacity),
	}))
	fmt.Println()
}

// designFromFlags builds the design from the file flag, the parameter flags
// and the config file defaults, in that order of precedence.
func designFromFlags(cmd *cobra.Command) (solenoid.Design, error) {
	if designFile != "" {
		d, err := solenoid.LoadDesign(designFile)
		if err != nil {
			return solenoid.Design{}, err
		}
		return *d, nil
	}

	var missing []string
	scalar := func(flag string, val float64, def *float64) float64 {
		if cmd.Flags().Changed(flag) {
			return val
		}
		if def != nil {
			return *def
		}
		missing = append(missing, "--"+flag)
		return 0
	}

	d := toolCfg.Design
	design := solenoid.Design{
		Voltage:        units.Voltage(scalar("voltage", designVoltage, d.Voltage)),
		Length:         units.Length(scalar("length", designLength, d.Length)),
		BoreRadius:     units.Radius(scalar("radius", designRadius, d.Radius)),
		Gauge:          units.WireGauge(scalar("awg", designGauge, d.Gauge)),
		Turns:          units.Turns(scalar("turns", designTurns, d.Turns)),
		Permeability:   units.RelativePermeability(scalar("permeability", designPermeability, d.Permeability)),
		PackingDensity: units.PackingDensity(scalar("density", designDensity, d.PackingDensity)),
		Material:       designMaterial,
		Temperature:    units.Temperature(designTemperature),
	}
	if len(missing) > 0 {
		return solenoid.Design{}, fmt.Errorf("missing design parameters: %s", strings.Join(missing, ", "))
	}
	if design.Material == "" {
		design.Material = d.Material
	}
	if !cmd.Flags().Changed("temperature") && d.Temperature != nil {
		design.Temperature = units.Temperature(*d.Temperature)
	}
	return design, nil
}
