package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coilworks/gosolenoid/internal/report"
)

var (
	reportOutput  string
	reportTitle   string
	reportProject string
	reportAuthor  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF datasheet for one design point",
	Long: `Evaluate a design point and render a one-page PDF datasheet:
design parameters, winding geometry, steady-state performance and an
ampacity check.

The design comes from the same flags as 'point', from a JSON design file,
or from the [design] section of the config file.

Examples:
  gosolenoid report -v 4.3 -l 0.027 -r 0.0023 -a 30 -N 572 -p 375 -d 0.25 -o latch.pdf
  gosolenoid report -f examples/latch.json -o latch.pdf --title "Door latch coil"`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().Float64VarP(&designVoltage, "voltage", "v", 0, "Solenoid voltage (V)")
	reportCmd.Flags().Float64VarP(&designLength, "length", "l", 0, "Solenoid length (m)")
	reportCmd.Flags().Float64VarP(&designRadius, "radius", "r", 0, "Solenoid inner radius (m)")
	reportCmd.Flags().Float64VarP(&designGauge, "awg", "a", 0, "Wire AWG gauge")
	reportCmd.Flags().Float64VarP(&designTurns, "turns", "N", 0, "Number of turns")
	reportCmd.Flags().Float64VarP(&designPermeability, "permeability", "p", 0, "Relative permeability")
	reportCmd.Flags().Float64VarP(&designDensity, "density", "d", 0, "Packing density")
	reportCmd.Flags().StringVar(&designMaterial, "material", "", "Wire material (default copper)")
	reportCmd.Flags().Float64Var(&designTemperature, "temperature", 0, "Wire temperature in K (default 293)")
	reportCmd.Flags().StringVarP(&designFile, "file", "f", "", "Path to design JSON file")

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Path of the PDF to write [required]")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Datasheet title")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name for the title block")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Author name for the title block")

	reportCmd.MarkFlagRequired("output")
}

func runReport(cmd *cobra.Command, args []string) {
	design, err := designFromFlags(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	meta := report.Meta{Title: reportTitle, Project: reportProject, Author: reportAuthor}
	if err := report.Write(design, meta, reportOutput); err != nil {
		fmt.Printf("Error writing datasheet: %v\n", err)
		return
	}
	fmt.Printf("Datasheet written to %s\n", reportOutput)
}
