// Package cli provides the command-line interface for mixtint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mixtint/mixtint/internal/version"
)

var (
	// Global verbose flag shared by all commands.
	globalVerbose bool

	// rootCmd represents the base command when called without subcommands.
	rootCmd = &cobra.Command{
		Use:   "mixtint",
		Short: "A paint mixing recipe calculator",
		Long: `Mixtint approximates a target colour by mixing a small number of base
pigments in fixed proportions, under a linear (weighted-average) mixing
model.

Given a pigment palette and a target colour it searches pigment subsets and
percentage splits, then reports the closest distinct recipes ranked by
colour error.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(paletteCmd)
}

// newLogger builds the application logger. Debug level with --verbose,
// Info otherwise; output goes to stderr so stdout stays machine-readable.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "mixtint",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd prints detailed version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
