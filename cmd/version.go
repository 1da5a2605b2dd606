package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coilworks/gosolenoid/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosolenoid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosolenoid v%s\n", version.Version)
		fmt.Println("DC Solenoid Actuator Design Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s (built %s)\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
