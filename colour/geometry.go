package colour

import (
	"fmt"

	"github.com/jmylchreest/hcv/fdrn"
)

// SumRange is an inclusive range of channel sums.
type SumRange struct {
	Min, Max fdrn.Sum
}

// Contains reports whether s lies within the range.
func (r SumRange) Contains(s fdrn.Sum) bool {
	return s >= r.Min && s <= r.Max
}

// Clamp moves s to the nearest bound when it lies outside the range.
func (r SumRange) Clamp(s fdrn.Sum) fdrn.Sum {
	if s < r.Min {
		return r.Min
	}
	if s > r.Max {
		return r.Max
	}
	return s
}

func (r SumRange) String() string {
	return fmt.Sprintf("SumRange[%.8f, %.8f]", r.Min.Float(), r.Max.Float())
}

// SumForMaxChroma returns the channel sum at which this hue reaches full
// chroma: 1 for primaries, 2 for secondaries, 1+second inside a sextant.
func (h Hue) SumForMaxChroma() fdrn.Sum {
	switch h.kind {
	case huePrimary:
		return fdrn.SumOne
	case hueSecondary:
		return fdrn.SumTwo
	default:
		return fdrn.SumOne.Add(fdrn.SumFromProp(h.sextant.Second))
	}
}

// MinSumForChromaProp returns the smallest channel sum at which chroma
// proportion p is achievable for this hue; false at p == 0, where every sum
// is a grey and no hue applies.
func (h Hue) MinSumForChromaProp(p fdrn.Prop) (fdrn.Sum, bool) {
	if p == fdrn.PropZero {
		return fdrn.SumZero, false
	}
	return h.SumForMaxChroma().MulProp(p), true
}

// MaxSumForChromaProp returns the largest channel sum at which chroma
// proportion p is achievable for this hue; false at p == 0.
func (h Hue) MaxSumForChromaProp(p fdrn.Prop) (fdrn.Sum, bool) {
	if p == fdrn.PropZero {
		return fdrn.SumZero, false
	}
	return fdrn.SumThree.Sub(fdrn.SumThree.Sub(h.SumForMaxChroma()).MulProp(p)), true
}

// sumRangeForChromaProp combines both bounds, ignoring any Shade/Tint tag.
func (h Hue) sumRangeForChromaProp(p fdrn.Prop) (SumRange, bool) {
	min, ok := h.MinSumForChromaProp(p)
	if !ok {
		return SumRange{}, false
	}
	max, _ := h.MaxSumForChromaProp(p)
	return SumRange{Min: min, Max: max}, true
}

// SumRangeForChroma returns the channel sums compatible with c for this
// hue. A Shade tag narrows the range to sums strictly below the hue's
// sum-for-max-chroma, a Tint tag to sums strictly above it; one fixed-point
// unit is excluded on each side of the midpoint so a (sum, chroma) pair
// determines its tag unambiguously. False at zero chroma.
func (h Hue) SumRangeForChroma(c Chroma) (SumRange, bool) {
	full, ok := h.sumRangeForChromaProp(c.Prop)
	if !ok {
		return SumRange{}, false
	}
	mid := h.SumForMaxChroma()
	switch c.Kind {
	case ChromaShade:
		return SumRange{Min: full.Min, Max: mid - 1}, true
	case ChromaTint:
		return SumRange{Min: mid + 1, Max: full.Max}, true
	default:
		// Neither: the sum sits exactly on the max-chroma brightness.
		return SumRange{Min: mid, Max: mid}, true
	}
}

// chromaForSum tags a chroma proportion by where s sits relative to the
// hue's sum-for-max-chroma.
func (h Hue) chromaForSum(s fdrn.Sum, p fdrn.Prop) Chroma {
	mid := h.SumForMaxChroma()
	switch {
	case s < mid:
		return Chroma{Kind: ChromaShade, Prop: p}
	case s > mid:
		return Chroma{Kind: ChromaTint, Prop: p}
	default:
		return Chroma{Kind: ChromaNeither, Prop: p}
	}
}

// MaxChromaForSum returns the largest chroma achievable for this hue at
// channel sum s, tagged by s's position relative to the hue's natural
// max-chroma brightness. False at the hueless boundary sums 0 and 3.
func (h Hue) MaxChromaForSum(s fdrn.Sum) (Chroma, bool) {
	if s == fdrn.SumZero || s == fdrn.SumThree {
		return Chroma{}, false
	}
	mid := h.SumForMaxChroma()
	switch {
	case s < mid:
		return Chroma{Kind: ChromaShade, Prop: s.DivSum(mid)}, true
	case s > mid:
		return Chroma{Kind: ChromaTint, Prop: fdrn.SumThree.Sub(s).DivSum(fdrn.SumThree.Sub(mid))}, true
	default:
		return ChromaOne, true
	}
}

// orderedProps permutes the canonical descending triplet (first >= mid >=
// third) into R, G, B order for this hue.
func (h Hue) orderedProps(first, mid, third fdrn.Prop) [3]fdrn.Prop {
	switch h.kind {
	case huePrimary:
		switch h.primary {
		case HueRed:
			return [3]fdrn.Prop{first, third, third}
		case HueGreen:
			return [3]fdrn.Prop{third, first, third}
		default:
			return [3]fdrn.Prop{third, third, first}
		}
	case hueSecondary:
		switch h.secondary {
		case HueCyan:
			return [3]fdrn.Prop{third, first, first}
		case HueMagenta:
			return [3]fdrn.Prop{first, third, first}
		default:
			return [3]fdrn.Prop{first, first, third}
		}
	default:
		switch h.sextant.Sextant {
		case SextantRedYellow:
			return [3]fdrn.Prop{first, mid, third}
		case SextantRedMagenta:
			return [3]fdrn.Prop{first, third, mid}
		case SextantGreenYellow:
			return [3]fdrn.Prop{mid, first, third}
		case SextantGreenCyan:
			return [3]fdrn.Prop{third, first, mid}
		case SextantBlueCyan:
			return [3]fdrn.Prop{third, mid, first}
		default: // SextantBlueMagenta
			return [3]fdrn.Prop{mid, third, first}
		}
	}
}

// RGBForSumAndChroma computes the unique RGB proportion triplet with the
// given channel sum and chroma for this hue. The brightest channel is
// third+c, the darkest (sum - sum_for_max_chroma*c)/3; the pair is only
// constructible when the darkest channel is non-negative and the brightest
// at most one, i.e. when sum lies in the hue's range for the chroma.
func (h Hue) RGBForSumAndChroma(s fdrn.Sum, c Chroma) ([3]fdrn.Prop, bool) {
	if c.Prop == fdrn.PropZero {
		return [3]fdrn.Prop{}, false
	}
	minSum := h.SumForMaxChroma().MulProp(c.Prop)
	if s < minSum {
		return [3]fdrn.Prop{}, false
	}
	third := s.Sub(minSum).Third()
	firstSum := fdrn.SumFromProp(third).Add(fdrn.SumFromProp(c.Prop))
	if firstSum > fdrn.SumOne {
		return [3]fdrn.Prop{}, false
	}
	first := firstSum.Prop()
	mid := third
	switch h.kind {
	case hueSecondary:
		mid = first
	case hueSextant:
		mid = third.Add(h.sextant.Second.Mul(c.Prop))
	}
	return h.orderedProps(first, mid, third), true
}

// MaxChromaRGBForSum returns the RGB triplet realising the largest chroma
// achievable at channel sum s; false at the hueless boundaries 0 and 3.
func (h Hue) MaxChromaRGBForSum(s fdrn.Sum) ([3]fdrn.Prop, bool) {
	c, ok := h.MaxChromaForSum(s)
	if !ok {
		return [3]fdrn.Prop{}, false
	}
	return h.RGBForSumAndChroma(s, c)
}

// MaxChromaProps returns the hue's full-chroma RGB triplet: one saturated
// channel, one zero channel.
func (h Hue) MaxChromaProps() [3]fdrn.Prop {
	second := fdrn.PropZero
	switch h.kind {
	case hueSecondary:
		second = fdrn.PropOne
	case hueSextant:
		second = h.sextant.Second
	}
	return h.orderedProps(fdrn.PropOne, second, fdrn.PropZero)
}

// DarkestRGBForChroma returns the darkest triplet with exactly chroma
// proportion p for this hue; its dimmest channel is zero.
func (h Hue) DarkestRGBForChroma(p fdrn.Prop) [3]fdrn.Prop {
	second := fdrn.PropZero
	switch h.kind {
	case hueSecondary:
		second = p
	case hueSextant:
		second = h.sextant.Second.Mul(p)
	}
	return h.orderedProps(p, second, fdrn.PropZero)
}

// LightestRGBForChroma returns the lightest triplet with exactly chroma
// proportion p for this hue; its brightest channel is saturated.
func (h Hue) LightestRGBForChroma(p fdrn.Prop) [3]fdrn.Prop {
	third := fdrn.PropOne.Sub(p)
	second := third
	switch h.kind {
	case hueSecondary:
		second = fdrn.PropOne
	case hueSextant:
		second = third.Add(h.sextant.Second.Mul(p))
	}
	return h.orderedProps(fdrn.PropOne, second, third)
}

// warmthWeight is the hue's position on the red(+1)/cyan(-1) axis. Inside a
// sextant it blends linearly in the second weight between the wedge's
// primary and secondary anchors.
func (h Hue) warmthWeight() fdrn.FDRNumber {
	const half = fdrn.FDROne / 2
	switch h.kind {
	case huePrimary:
		if h.primary == HueRed {
			return fdrn.FDROne
		}
		return -half
	case hueSecondary:
		if h.secondary == HueCyan {
			return -fdrn.FDROne
		}
		return half
	default:
		s := fdrn.FDRFromProp(h.sextant.Second)
		switch h.sextant.Sextant {
		case SextantRedYellow, SextantRedMagenta:
			return fdrn.FDROne - s/2
		case SextantGreenYellow, SextantBlueMagenta:
			return -half + s
		default: // SextantGreenCyan, SextantBlueCyan
			return -half - s/2
		}
	}
}

// WarmthForChroma returns the warmth of this hue at chroma c: the red/cyan
// weight scaled by the chroma and recentred so a grey sits at one half.
func (h Hue) WarmthForChroma(c Chroma) fdrn.Prop {
	w := fdrn.FDROne.Add(h.warmthWeight().Mul(fdrn.FDRFromProp(c.Prop)))
	return (w / 2).Prop()
}
