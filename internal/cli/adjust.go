package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hcv/colour"
	"github.com/jmylchreest/hcv/fdrn"
)

// newAdjustCmd builds the adjust command.
func newAdjustCmd() *cobra.Command {
	var (
		chromaStep     float64
		valueStep      float64
		rotateBy       float64
		steps          int
		clamped        bool
		rotationPolicy string
	)

	cmd := &cobra.Command{
		Use:   "adjust <colour>",
		Short: "Apply stepwise HCV adjustments to a colour",
		Long: `Adjust seeds a colour manipulator with an RGB colour and applies chroma,
value and hue-rotation steps, printing the colour after each step.

Without --clamp an impossible step accommodates: the partner attribute moves
so the step lands exactly. With --clamp the step stops at the nearest
achievable boundary and the partner attribute stays put.

Examples:
  # Saturate in five steps of 0.1
  hcvtool adjust --chroma 0.1 --steps 5 '#808040'

  # Darken while clamped to the current chroma
  hcvtool adjust --clamp --value -0.05 --steps 3 '#c08040'

  # Rotate 60 degrees, preserving chroma
  hcvtool adjust --rotate 60 '#ff0000'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjust(cmd, args, chromaStep, valueStep, rotateBy, steps, clamped, rotationPolicy)
		},
	}

	cmd.Flags().Float64Var(&chromaStep, "chroma", 0, "chroma step per iteration (-1..1)")
	cmd.Flags().Float64Var(&valueStep, "value", 0, "value step per iteration (-1..1)")
	cmd.Flags().Float64Var(&rotateBy, "rotate", 0, "hue rotation per iteration in degrees")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of iterations")
	cmd.Flags().BoolVar(&clamped, "clamp", false, "clamp steps at attribute boundaries instead of accommodating")
	cmd.Flags().StringVar(&rotationPolicy, "rotation-policy", "chroma", "attribute rotation preserves (chroma, value)")

	return cmd
}

// runAdjust executes the adjust command.
func runAdjust(cmd *cobra.Command, args []string, chromaStep, valueStep, rotateBy float64, steps int, clamped bool, rotationPolicy string) error {
	logger := newLogger(cmd)

	props, err := parseColour(args[0])
	if err != nil {
		return err
	}
	policy := colour.FavourChroma
	switch rotationPolicy {
	case "chroma":
	case "value":
		policy = colour.FavourValue
	default:
		return fmt.Errorf("invalid rotation policy %q (want chroma or value)", rotationPolicy)
	}
	if steps < 1 {
		return fmt.Errorf("invalid step count %d", steps)
	}

	m := colour.NewManipulatorBuilder().
		WithColour(colour.HCVFromProps(props)).
		WithClamped(clamped).
		WithRotationPolicy(policy).
		Build()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", swatch(props), hexOf(m.HCV().RGBProps()))

	rotation := fdrn.AngleFromDegrees(rotateBy)
	for i := 0; i < steps; i++ {
		changed := false
		if rotateBy != 0 {
			changed = m.Rotate(rotation) || changed
		}
		switch {
		case chromaStep > 0:
			changed = m.IncrChroma(fdrn.PropFromFloat(chromaStep)) || changed
		case chromaStep < 0:
			changed = m.DecrChroma(fdrn.PropFromFloat(-chromaStep)) || changed
		}
		switch {
		case valueStep > 0:
			changed = m.IncrValue(fdrn.PropFromFloat(valueStep)) || changed
		case valueStep < 0:
			changed = m.DecrValue(fdrn.PropFromFloat(-valueStep)) || changed
		}
		hcv := m.HCV()
		logger.Debug("applied step", "step", i+1, "changed", changed, "hcv", hcv.String())
		fmt.Fprintf(out, "%s %s\n", swatch(hcv.RGBProps()), hexOf(hcv.RGBProps()))
		if !changed {
			logger.Debug("no further change possible", "step", i+1)
			break
		}
	}
	return nil
}
