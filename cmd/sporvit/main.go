// Package main implements the sporvit command line interface: single
// calculator evaluation, catalogue listing, YAML batch runs and FIT file
// derived calculations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	jsonOut bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sporvit",
	Short: "Sports physiology calculation engine",
	Long: `sporvit evaluates sports physiology calculations: energy expenditure,
body composition, heart rate zones, aerobic capacity, cycling and swimming
performance, strength scores, bike fit, hydration and recovery planning.

Every calculation takes named inputs, validates them against the calculator's
schema and returns a result envelope with a value, unit, classification and
breakdown. Run "sporvit list" for the catalogue.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(calculatorCommands()...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
