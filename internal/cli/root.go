// Package cli provides the command-line interface for hcvtool.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hcv/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hcvtool",
		Short: "Inspect and adjust colours in the HCV colour model",
		Long: `hcvtool converts colours between RGB and the Hue-Chroma-Value model and
adjusts their attributes interactively or in scripted steps.

The HCV model keeps every colour exactly round-trippable to RGB: hue, chroma
and brightness are held as fixed-point rationals, so repeated adjustments
never drift the way floating-point hue arithmetic does.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newAdjustCmd())
	rootCmd.AddCommand(newEditCmd())

	return rootCmd
}

// newLogger builds the command logger; --verbose raises the level to debug.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hcvtool",
		Level:  level,
		Output: os.Stderr,
	})
}
