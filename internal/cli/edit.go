package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hcv/colour"
	"github.com/jmylchreest/hcv/fdrn"
)

// Interactive step sizes: fine enough for smooth editing, coarse enough
// that a key repeat crosses the whole attribute range in a few seconds.
var (
	editChromaStep = fdrn.PropFromRatio(1, 32)
	editValueStep  = fdrn.PropFromRatio(1, 48)
	editRotation   = fdrn.AngleFromDegrees(5)
)

// newEditCmd builds the edit command.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <colour>",
		Short: "Edit a colour interactively in the terminal",
		Long: `Edit opens a terminal editor seeded with an RGB colour and adjusts its
HCV attributes with single keys:

  h / l    rotate hue left / right
  c / C    increase / decrease chroma
  v / V    increase / decrease value
  k        toggle clamped stepping
  p        toggle rotation policy (preserve chroma / preserve value)
  r        reset to the starting colour
  q, Esc   quit (prints the final colour)`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}
}

// runEdit executes the edit command.
func runEdit(cmd *cobra.Command, args []string) error {
	props, err := parseColour(args[0])
	if err != nil {
		return err
	}
	seed := colour.HCVFromProps(props)
	m := colour.NewManipulatorBuilder().WithColour(seed).Build()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal screen: %w", err)
	}
	defer screen.Fini()

	for {
		drawEditor(screen, m)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return finishEdit(cmd, m)
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return finishEdit(cmd, m)
			case 'h':
				m.Rotate(editRotation.Neg())
			case 'l':
				m.Rotate(editRotation)
			case 'c':
				m.IncrChroma(editChromaStep)
			case 'C':
				m.DecrChroma(editChromaStep)
			case 'v':
				m.IncrValue(editValueStep)
			case 'V':
				m.DecrValue(editValueStep)
			case 'k':
				m.SetClamped(!m.Clamped())
			case 'p':
				if m.RotationPolicy() == colour.FavourChroma {
					m.SetRotationPolicy(colour.FavourValue)
				} else {
					m.SetRotationPolicy(colour.FavourChroma)
				}
			case 'r':
				m.SetColour(seed)
			}
		}
	}
}

// finishEdit closes the editor and prints the final colour on stdout so the
// result can be piped onward.
func finishEdit(cmd *cobra.Command, m *colour.ColourManipulator) error {
	fmt.Fprintln(cmd.OutOrStdout(), hexOf(m.HCV().RGBProps()))
	return nil
}

// drawEditor renders the swatch, attribute bars and status line.
func drawEditor(screen tcell.Screen, m *colour.ColourManipulator) {
	screen.Clear()
	hcv := m.HCV()
	rgb := colour.RGBOf[uint8](m)

	fill := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2])))
	for y := 1; y <= 4; y++ {
		for x := 2; x < 26; x++ {
			screen.SetContent(x, y, ' ', nil, fill)
		}
	}

	chroma := hcv.Chroma()
	drawText(screen, 2, 6, fmt.Sprintf("colour  %s", hexOf(hcv.RGBProps())))
	drawText(screen, 2, 7, fmt.Sprintf("hue     %s", describeHue(hcv)))
	drawBar(screen, 2, 8, "chroma", chroma.Prop)
	drawBar(screen, 2, 9, "value ", hcv.Value())
	drawBar(screen, 2, 10, "warmth", hcv.Warmth())

	policy := "preserve chroma"
	if m.RotationPolicy() == colour.FavourValue {
		policy = "preserve value"
	}
	mode := "accommodate"
	if m.Clamped() {
		mode = "clamp"
	}
	drawText(screen, 2, 12, fmt.Sprintf("steps: %s   rotation: %s   [%s]", mode, policy, chroma.Kind))
	drawText(screen, 2, 14, "h/l rotate  c/C chroma  v/V value  k clamp  p policy  r reset  q quit")
	screen.Show()
}

// drawText writes a plain string at the given position.
func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// drawBar renders a labelled 32-cell attribute bar.
func drawBar(screen tcell.Screen, x, y int, label string, p fdrn.Prop) {
	const width = 32
	drawText(screen, x, y, label)
	filled := int(p.Scale(width))
	for i := 0; i < width; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		screen.SetContent(x+len(label)+2+i, y, r, nil, tcell.StyleDefault)
	}
	drawText(screen, x+len(label)+2+width+2, y, fmt.Sprintf("%.4f", p.Float()))
}
