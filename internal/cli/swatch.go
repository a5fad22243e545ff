package cli

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/jmylchreest/hcv/colour"
	"github.com/jmylchreest/hcv/fdrn"
)

// parseColour parses a colour argument ("#rrggbb" or "rrggbb") into exact
// channel proportions.
func parseColour(arg string) ([3]fdrn.Prop, error) {
	if len(arg) > 0 && arg[0] != '#' {
		arg = "#" + arg
	}
	c, err := colorful.Hex(arg)
	if err != nil {
		return [3]fdrn.Prop{}, fmt.Errorf("invalid colour %q: %w", arg, err)
	}
	// colorful.Hex parses 8-bit channels; convert through uint8 so the
	// proportions are exact ratios rather than float approximations.
	rgb := colour.RGB[uint8]{
		uint8(c.R*255 + 0.5),
		uint8(c.G*255 + 0.5),
		uint8(c.B*255 + 0.5),
	}
	return rgb.Props(), nil
}

// hexOf renders a proportion triplet as a "#rrggbb" string.
func hexOf(props [3]fdrn.Prop) string {
	rgb := colour.RGBFromProps[uint8](props)
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// stdoutIsTerminal reports whether stdout supports escape sequences.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch returns a truecolour block for terminal preview, or an empty
// string when stdout is not a terminal.
func swatch(props [3]fdrn.Prop) string {
	if !stdoutIsTerminal() {
		return ""
	}
	rgb := colour.RGBFromProps[uint8](props)
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm        \x1b[0m", rgb[0], rgb[1], rgb[2])
}

// describeHue names a hue for display.
func describeHue(hcv colour.HCV) string {
	hue, ok := hcv.Hue()
	if !ok {
		return "none (grey)"
	}
	angle, _ := hcv.HueAngle()
	return fmt.Sprintf("%s @ %.2f°", hue, angle.Degrees())
}
