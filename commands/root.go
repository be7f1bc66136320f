package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "fitforge",
	Short:        "fitforge serves the FitForge fitness tracking API",
	Long:         "fitforge is a REST API for logging weight, workouts, steps, water and nutrition and reading derived health statistics.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default ./config.yml)")
}
