package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coilworks/gosolenoid/internal/config"
	"github.com/coilworks/gosolenoid/internal/solenoid"
	"github.com/coilworks/gosolenoid/internal/version"
)

var (
	configPath string
	traceSteps bool

	// toolCfg is loaded before any subcommand runs.
	toolCfg = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "gosolenoid",
	Short: "DC Solenoid Actuator Design Tool",
	Long: `gosolenoid - DC Solenoid Actuator Designer

A CLI tool for sizing DC solenoid actuators from a closed-form
steady-state model of pull force.

This tool helps electromechanical designers perform:
  - Single design point evaluation (force, current, power, efficiency)
  - One-dimensional parameter sweeps with ampacity limit curves
  - Wire gauge and material property lookups
  - Figure, spreadsheet and datasheet generation`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if traceSteps {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		toolCfg = cfg
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosolenoid v%-44s║\n", version.Version)
		fmt.Println("  ║   DC Solenoid Actuator Designer                           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing DC solenoid actuators from a closed-form")
		fmt.Println("  steady-state model of pull force.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Design point evaluation: force, current, power, efficiency")
		fmt.Println("    • Parameter sweeps over any one design parameter")
		fmt.Println("    • Ampacity limit curves from the chassis wiring tables")
		fmt.Println("    • PNG/SVG/PDF figures, HTML charts, XLSX/CSV tables")
		fmt.Println()
		fmt.Println("  Use 'gosolenoid --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to INI config file (default $HOME/.gosolenoid.ini)")
	rootCmd.PersistentFlags().BoolVar(&traceSteps, "trace", false, "Log intermediate model quantities at debug level")
}

// tracer returns the model trace hook for the --trace flag, nil otherwise.
func tracer() solenoid.Tracer {
	if !traceSteps {
		return nil
	}
	return solenoid.NewLogTracer(log.StandardLogger())
}
