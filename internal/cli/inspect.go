package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hcv/colour"
)

// newInspectCmd builds the inspect command.
func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <colour>",
		Short: "Show the HCV attributes of a colour",
		Long: `Inspect converts an RGB colour into the HCV model and prints its
attributes: hue, chroma, value, warmth and greyness.

Examples:
  # Inspect a hex colour
  hcvtool inspect '#c08040'

  # The leading # is optional
  hcvtool inspect c08040`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
	return cmd
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	props, err := parseColour(args[0])
	if err != nil {
		return err
	}
	hcv := colour.HCVFromProps(props)
	logger.Debug("classified colour", "input", args[0], "hcv", hcv.String())

	out := cmd.OutOrStdout()
	if s := swatch(props); s != "" {
		fmt.Fprintf(out, "%s %s\n", s, hexOf(hcv.RGBProps()))
	} else {
		fmt.Fprintf(out, "colour:   %s\n", hexOf(hcv.RGBProps()))
	}
	chroma := hcv.Chroma()
	fmt.Fprintf(out, "hue:      %s\n", describeHue(hcv))
	fmt.Fprintf(out, "chroma:   %.6f (%s)\n", chroma.Prop.Float(), chroma.Kind)
	fmt.Fprintf(out, "value:    %.6f\n", hcv.Value().Float())
	fmt.Fprintf(out, "sum:      %.6f\n", hcv.Sum().Float())
	fmt.Fprintf(out, "warmth:   %.6f\n", hcv.Warmth().Float())
	fmt.Fprintf(out, "greyness: %.6f\n", hcv.Greyness().Float())
	return nil
}
