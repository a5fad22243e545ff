package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/hcv/fdrn"
)

// RGBHue is one of the three primary hues.
type RGBHue int8

const (
	HueRed RGBHue = iota
	HueGreen
	HueBlue
)

func (h RGBHue) String() string {
	return [...]string{"red", "green", "blue"}[h]
}

// CMYHue is one of the three secondary hues.
type CMYHue int8

const (
	HueCyan CMYHue = iota
	HueMagenta
	HueYellow
)

func (h CMYHue) String() string {
	return [...]string{"cyan", "magenta", "yellow"}[h]
}

// Sextant names one of the six 60° wedges between a primary and an adjacent
// secondary hue. The name orders the primary before the secondary.
type Sextant int8

const (
	SextantRedYellow Sextant = iota
	SextantRedMagenta
	SextantGreenYellow
	SextantGreenCyan
	SextantBlueCyan
	SextantBlueMagenta
)

func (s Sextant) String() string {
	return [...]string{
		"red-yellow", "red-magenta", "green-yellow",
		"green-cyan", "blue-cyan", "blue-magenta",
	}[s]
}

// SextantHue is a hue strictly inside a sextant. Second is the relative
// weight of the second-brightest channel at maximum chroma, strictly inside
// (0, 1); it uniquely fixes the angle within the wedge.
type SextantHue struct {
	Sextant Sextant
	Second  fdrn.Prop
}

func (h SextantHue) String() string {
	return fmt.Sprintf("%s(%.8f)", h.Sextant, h.Second.Float())
}

// hueKind discriminates the closed set of hue representations.
type hueKind int8

const (
	huePrimary hueKind = iota
	hueSecondary
	hueSextant
)

// Hue is the unifying tagged union over the three structural hue kinds.
// The zero value is primary red.
type Hue struct {
	kind      hueKind
	primary   RGBHue
	secondary CMYHue
	sextant   SextantHue
}

// PrimaryHue wraps an RGB primary.
func PrimaryHue(h RGBHue) Hue {
	return Hue{kind: huePrimary, primary: h}
}

// SecondaryHue wraps a CMY secondary.
func SecondaryHue(h CMYHue) Hue {
	return Hue{kind: hueSecondary, secondary: h}
}

// NewSextantHue wraps a sextant hue; second must lie strictly inside (0, 1).
func NewSextantHue(s Sextant, second fdrn.Prop) Hue {
	assert(second > fdrn.PropZero && second < fdrn.PropOne, "sextant second out of range")
	return Hue{kind: hueSextant, sextant: SextantHue{Sextant: s, Second: second}}
}

// Primary returns the primary hue when this hue is one.
func (h Hue) Primary() (RGBHue, bool) {
	return h.primary, h.kind == huePrimary
}

// Secondary returns the secondary hue when this hue is one.
func (h Hue) Secondary() (CMYHue, bool) {
	return h.secondary, h.kind == hueSecondary
}

// Sextant returns the sextant hue when this hue is one.
func (h Hue) Sextant() (SextantHue, bool) {
	return h.sextant, h.kind == hueSextant
}

func (h Hue) String() string {
	switch h.kind {
	case huePrimary:
		return h.primary.String()
	case hueSecondary:
		return h.secondary.String()
	default:
		return h.sextant.String()
	}
}

// Hue wheel anchors: red at 0°, counter-clockwise through yellow and green
// to cyan at 180°, wrapping to blue and magenta on the negative side.
var (
	angleRed     = fdrn.AngleFromDegrees(0)
	angleYellow  = fdrn.AngleFromDegrees(60)
	angleGreen   = fdrn.AngleFromDegrees(120)
	angleCyan    = fdrn.AngleFromDegrees(180)
	angleBlue    = fdrn.AngleFromDegrees(-120)
	angleMagenta = fdrn.AngleFromDegrees(-60)
)

// wedgeOffset returns the angular offset of a sextant hue from its primary
// anchor, in (0°, 60°). Derived from the planar hue vector of the
// max-chroma triplet (1, second, 0): sin a = √3·s / (2·√(1 - s + s²)).
func wedgeOffset(second fdrn.Prop) fdrn.Angle {
	s := second.Float()
	return fdrn.Asin(math.Sqrt(3) * s / (2 * math.Sqrt(1-s+s*s)))
}

// Angle returns the hue's angle on the wheel, in (-180°, 180°].
func (h Hue) Angle() fdrn.Angle {
	switch h.kind {
	case huePrimary:
		switch h.primary {
		case HueRed:
			return angleRed
		case HueGreen:
			return angleGreen
		default:
			return angleBlue
		}
	case hueSecondary:
		switch h.secondary {
		case HueCyan:
			return angleCyan
		case HueMagenta:
			return angleMagenta
		default:
			return angleYellow
		}
	default:
		o := wedgeOffset(h.sextant.Second)
		switch h.sextant.Sextant {
		case SextantRedYellow:
			return o
		case SextantRedMagenta:
			return o.Neg()
		case SextantGreenYellow:
			return angleGreen.Sub(o)
		case SextantGreenCyan:
			return angleGreen.Add(o)
		case SextantBlueCyan:
			return angleBlue.Sub(o)
		default: // SextantBlueMagenta
			return angleBlue.Add(o)
		}
	}
}

// secondForOffset inverts wedgeOffset for an offset strictly inside
// (0°, 60°): second = sin a / sin(120° - a).
func secondForOffset(o fdrn.Angle) fdrn.Prop {
	return fdrn.PropFromFloat(o.Sin() / angleGreen.Sub(o).Sin())
}

// HueFromAngle maps a wheel angle to the hue at that angle. Exact multiples
// of 60° yield primaries and secondaries; every other angle falls strictly
// inside a sextant.
func HueFromAngle(a fdrn.Angle) Hue {
	switch a {
	case angleRed:
		return PrimaryHue(HueRed)
	case angleGreen:
		return PrimaryHue(HueGreen)
	case angleBlue:
		return PrimaryHue(HueBlue)
	case angleYellow:
		return SecondaryHue(HueYellow)
	case angleCyan:
		return SecondaryHue(HueCyan)
	case angleMagenta:
		return SecondaryHue(HueMagenta)
	}
	var sextant Sextant
	var offset fdrn.Angle
	switch {
	case a > angleRed && a < angleYellow:
		sextant, offset = SextantRedYellow, a
	case a > angleYellow && a < angleGreen:
		sextant, offset = SextantGreenYellow, angleGreen.Sub(a)
	case a > angleGreen && a < angleCyan:
		sextant, offset = SextantGreenCyan, a.Sub(angleGreen)
	case a > angleMagenta && a < angleRed:
		sextant, offset = SextantRedMagenta, a.Neg()
	case a > angleBlue && a < angleMagenta:
		sextant, offset = SextantBlueMagenta, a.Sub(angleBlue)
	default: // between cyan and blue on the wrapped side
		sextant, offset = SextantBlueCyan, angleBlue.Sub(a)
	}
	return NewSextantHue(sextant, secondForOffset(offset))
}

// HueFromProps classifies an RGB proportion triplet into its hue. The
// second boolean is false for greys, which carry no hue.
func HueFromProps(p [3]fdrn.Prop) (Hue, bool) {
	r, g, b := p[0], p[1], p[2]
	switch {
	case r == g && g == b:
		return Hue{}, false
	case r == g:
		if r > b {
			return SecondaryHue(HueYellow), true
		}
		return PrimaryHue(HueBlue), true
	case g == b:
		if g > r {
			return SecondaryHue(HueCyan), true
		}
		return PrimaryHue(HueRed), true
	case r == b:
		if r > g {
			return SecondaryHue(HueMagenta), true
		}
		return PrimaryHue(HueGreen), true
	}
	// All three channels distinct: strictly inside a sextant. The second
	// weight is the mid channel's share of the chroma span.
	var sextant Sextant
	var max, mid, min fdrn.Prop
	switch {
	case r > g && g > b:
		sextant, max, mid, min = SextantRedYellow, r, g, b
	case r > b && b > g:
		sextant, max, mid, min = SextantRedMagenta, r, b, g
	case g > r && r > b:
		sextant, max, mid, min = SextantGreenYellow, g, r, b
	case g > b && b > r:
		sextant, max, mid, min = SextantGreenCyan, g, b, r
	case b > g && g > r:
		sextant, max, mid, min = SextantBlueCyan, b, g, r
	default: // b > r && r > g
		sextant, max, mid, min = SextantBlueMagenta, b, r, g
	}
	return NewSextantHue(sextant, mid.Sub(min).Div(max.Sub(min))), true
}

// Cmp orders hues by wheel angle ascending over (-180°, 180°].
func (h Hue) Cmp(o Hue) int {
	a, b := h.Angle(), o.Angle()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
