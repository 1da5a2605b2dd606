package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coilworks/gosolenoid/internal/sweep"
	"github.com/coilworks/gosolenoid/internal/units"
	"github.com/coilworks/gosolenoid/internal/wire"
)

var (
	wireGauge       float64
	wireMaterial    string
	wireTemperature float64
	wireLength      float64
	wireList        bool
	wireTable       bool
)

var wireCmd = &cobra.Command{
	Use:   "wire",
	Short: "Look up wire gauge and material properties",
	Long: `Print the physical and electrical properties of a wire gauge:
radius, cross-sectional area, resistance per length and the maximum
recommended continuous current.

Examples:
  # AWG 30 copper at room temperature
  gosolenoid wire --awg 30

  # AWG 20 nichrome at 350 K, with the total resistance of a 16 m run
  gosolenoid wire --awg 20 --material nichrome --temperature 350 --length 16

  # Full AWG 0-40 table for a material
  gosolenoid wire --table --material aluminum

  # Known materials
  gosolenoid wire --materials`,
	Run: runWire,
}

func init() {
	rootCmd.AddCommand(wireCmd)

	wireCmd.Flags().Float64VarP(&wireGauge, "awg", "a", 0, "Wire AWG gauge, 0 to 40")
	wireCmd.Flags().StringVar(&wireMaterial, "material", "", "Wire material (default copper)")
	wireCmd.Flags().Float64Var(&wireTemperature, "temperature", 0, "Wire temperature in K (default 293)")
	wireCmd.Flags().Float64VarP(&wireLength, "length", "l", 0, "Wire length in m for total resistance")
	wireCmd.Flags().BoolVar(&wireList, "materials", false, "List the known wire materials")
	wireCmd.Flags().BoolVar(&wireTable, "table", false, "Print the full AWG 0-40 gauge table")
}

func runWire(cmd *cobra.Command, args []string) {
	if wireList {
		printMaterials()
		return
	}
	if wireTable {
		if err := printGaugeTable(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	if !cmd.Flags().Changed("awg") {
		fmt.Println("Error: Please provide a wire gauge with --awg.")
		fmt.Println("Use 'gosolenoid wire --help' for usage information.")
		return
	}
	if wireGauge < 0 || wireGauge > 40 {
		fmt.Printf("Error: awg must be between 0 and 40, got %g\n", wireGauge)
		return
	}

	awg := units.WireGauge(wireGauge)
	perLength, err := wire.ResistancePerLength(awg, wireMaterial, units.Temperature(wireTemperature))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	material := wireMaterial
	if material == "" {
		material = wire.DefaultMaterial
	}
	temperature := wireTemperature
	if temperature == 0 {
		temperature = float64(wire.ReferenceTemperature)
	}

	radius := wire.Radius(awg)
	area := wire.Area(awg)
	limit := sweep.CurrentLimit(awg)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("            WIRE PROPERTIES - AWG %g\n", wireGauge)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius:\t%.6f mm\n", float64(radius)*1000)
	fmt.Fprintf(w, "  Diameter:\t%.6f mm\n", float64(radius)*2000)
	fmt.Fprintf(w, "  Cross-section area:\t%.6e m²\n", float64(area))
	w.Flush()
	fmt.Println()

	fmt.Println("ELECTRICAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s at %g K\n", material, temperature)
	fmt.Fprintf(w, "  Resistance per meter:\t%.6f Ω/m\n", float64(perLength))
	fmt.Fprintf(w, "  Resistance per km:\t%.4f Ω\n", float64(perLength)*1000)
	if wireLength > 0 {
		fmt.Fprintf(w, "  Resistance of %g m:\t%.4f Ω\n", wireLength, float64(perLength)*wireLength)
	}
	fmt.Fprintf(w, "  Max continuous current:\t%.2f A\n", float64(limit))
	w.Flush()
	fmt.Println()
}

func printGaugeTable() error {
	material := wireMaterial
	if material == "" {
		material = wire.DefaultMaterial
	}
	temperature := units.Temperature(wireTemperature)
	if temperature == 0 {
		temperature = wire.ReferenceTemperature
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("      AWG GAUGE TABLE - %s at %g K\n", material, float64(temperature))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  AWG\tDiameter (mm)\tArea (m²)\tΩ/m\tΩ/km\tMax current (A)\n")
	fmt.Fprintf(w, "  ───\t─────────────\t─────────\t───\t────\t───────────────\n")
	for g := 0; g <= 40; g++ {
		awg := units.WireGauge(g)
		perLength, err := wire.ResistancePerLength(awg, material, temperature)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %d\t%.4f\t%.4e\t%.6f\t%.4f\t%.2f\n",
			g,
			float64(wire.Radius(awg))*2000,
			float64(wire.Area(awg)),
			float64(perLength),
			float64(perLength)*1000,
			float64(sweep.CurrentLimit(awg)))
	}
	return w.Flush()
}

func printMaterials() {
	fmt.Println()
	fmt.Println("KNOWN WIRE MATERIALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material\tResistivity (Ω·m)\tTemp coefficient (1/K)\n")
	fmt.Fprintf(w, "  ────────\t─────────────────\t──────────────────────\n")
	for _, name := range wire.Materials() {
		m, err := wire.Lookup(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.3g\t%.3g\n", m.Name, m.Resistivity, m.TempCoeff)
	}
	w.Flush()
	fmt.Println()
}
