package colour

import (
	"fmt"

	"github.com/jmylchreest/hcv/fdrn"
)

// Policy selects how a chroma or sum setter resolves a target that is
// incompatible with the value it is paired with.
type Policy int8

const (
	// PolicyClamp moves only the targeted attribute, up to the nearest
	// compatible boundary.
	PolicyClamp Policy = iota
	// PolicyAccommodate also moves the partner attribute so the target is
	// achieved exactly.
	PolicyAccommodate
	// PolicyReject leaves the value untouched.
	PolicyReject
)

// SetHuePolicy selects which attribute a hue change preserves.
type SetHuePolicy int8

const (
	// FavourChroma keeps the chroma proportion and clamps the sum into the
	// new hue's valid range.
	FavourChroma SetHuePolicy = iota
	// FavourValue keeps the sum and reduces the chroma to the new hue's
	// achievable maximum when needed.
	FavourValue
)

// Outcome reports how a setter resolved its target.
type Outcome int8

const (
	OutcomeOk Outcome = iota
	OutcomeClamped
	OutcomeAccommodated
	OutcomeNoChange
	OutcomeRejected
)

func (o Outcome) String() string {
	return [...]string{"ok", "clamped", "accommodated", "no-change", "rejected"}[o]
}

// changed reports whether the outcome mutated the value.
func (o Outcome) changed() bool {
	return o == OutcomeOk || o == OutcomeClamped || o == OutcomeAccommodated
}

// HCV is a validated hue/chroma/sum triple. A zero-chroma HCV is a grey and
// carries no hue; otherwise the sum always lies inside the hue's valid range
// for the chroma proportion and the chroma tag matches the sum's position
// relative to the hue's sum-for-max-chroma. The zero value is black.
type HCV struct {
	hue    Hue
	hasHue bool
	chroma Chroma
	sum    fdrn.Sum
}

// greyHCV builds a grey, aligning the sum down to a multiple of three units
// so the value splits into three exactly equal channels.
func greyHCV(s fdrn.Sum) HCV {
	return HCV{sum: s.Sub(s.Mod3())}
}

// NewGrey returns the grey with the given value (average brightness).
func NewGrey(value fdrn.Prop) HCV {
	return HCV{sum: fdrn.SumFromProp(value) * 3}
}

// HCVFromProps classifies an RGB proportion triplet into a validated HCV.
// Greys come out with no hue and zero chroma.
func HCVFromProps(p [3]fdrn.Prop) HCV {
	sum := fdrn.SumFromProp(p[0]).Add(fdrn.SumFromProp(p[1])).Add(fdrn.SumFromProp(p[2]))
	hue, ok := HueFromProps(p)
	if !ok {
		return HCV{sum: sum}
	}
	max, min := p[0], p[0]
	for _, c := range p[1:] {
		if c > max {
			max = c
		}
		if c < min {
			min = c
		}
	}
	return HCV{
		hue:    hue,
		hasHue: true,
		chroma: hue.chromaForSum(sum, max.Sub(min)),
		sum:    sum,
	}
}

// HCVFromRGB classifies an RGB triple at any light level.
func HCVFromRGB[T Level](rgb RGB[T]) HCV {
	return HCVFromProps(rgb.Props())
}

// Hue returns the hue; false for greys, whose hue is undefined.
func (h HCV) Hue() (Hue, bool) {
	return h.hue, h.hasHue
}

// Chroma returns the tagged chroma.
func (h HCV) Chroma() Chroma {
	return h.chroma
}

// Sum returns the channel sum.
func (h HCV) Sum() fdrn.Sum {
	return h.sum
}

// Value returns the average brightness, sum/3.
func (h HCV) Value() fdrn.Prop {
	return h.sum.Third()
}

// Greyness returns one minus the chroma proportion.
func (h HCV) Greyness() fdrn.Prop {
	return fdrn.PropOne.Sub(h.chroma.Prop)
}

// Warmth returns the colour's position on the red(warm)/cyan(cool) axis;
// greys sit at one half.
func (h HCV) Warmth() fdrn.Prop {
	if !h.hasHue {
		return fdrn.PropHalf
	}
	return h.hue.WarmthForChroma(h.chroma)
}

// HueAngle returns the hue's wheel angle; false for greys.
func (h HCV) HueAngle() (fdrn.Angle, bool) {
	if !h.hasHue {
		return 0, false
	}
	return h.hue.Angle(), true
}

// HCV returns the value itself, satisfying ColourBasics.
func (h HCV) HCV() HCV {
	return h
}

// RGBProps rematerialises the colour as an RGB proportion triplet. Greys
// split the sum into three equal channels; everything else delegates to the
// hue's triplet builder, which the HCV invariant guarantees succeeds.
func (h HCV) RGBProps() [3]fdrn.Prop {
	if h.chroma.IsZero() {
		v := h.sum.Third()
		return [3]fdrn.Prop{v, v, v}
	}
	p, ok := h.hue.RGBForSumAndChroma(h.sum, h.chroma)
	assert(ok, "HCV invariant broken: sum/chroma pair not constructible")
	return p
}

// RGBOf rematerialises a colour at light level T.
func RGBOf[T Level](c ColourBasics) RGB[T] {
	return RGBFromProps[T](c.HCV().RGBProps())
}

// setChromaProp points the value at the given hue with the given chroma
// proportion, resolving an incompatible current sum per the policy. The hue
// parameter lets a manipulator restore a remembered hue when re-saturating
// a grey.
func (h *HCV) setChromaProp(hue Hue, p fdrn.Prop, policy Policy) Outcome {
	if p == fdrn.PropZero {
		if h.chroma.IsZero() {
			return OutcomeNoChange
		}
		*h = greyHCV(h.sum)
		return OutcomeOk
	}
	r, _ := hue.sumRangeForChromaProp(p)
	if r.Contains(h.sum) {
		c := hue.chromaForSum(h.sum, p)
		if h.hasHue && h.hue == hue && h.chroma == c {
			return OutcomeNoChange
		}
		h.hue, h.hasHue, h.chroma = hue, true, c
		return OutcomeOk
	}
	switch policy {
	case PolicyReject:
		return OutcomeRejected
	case PolicyClamp:
		c, ok := hue.MaxChromaForSum(h.sum)
		if !ok {
			// Black or white: no chroma is achievable without moving the
			// sum, so the boundary is where we already are.
			return OutcomeNoChange
		}
		if h.hasHue && h.hue == hue && h.chroma == c {
			return OutcomeNoChange
		}
		h.hue, h.hasHue, h.chroma = hue, true, c
		return OutcomeClamped
	default: // PolicyAccommodate
		s := r.Clamp(h.sum)
		h.hue, h.hasHue = hue, true
		h.sum = s
		h.chroma = hue.chromaForSum(s, p)
		return OutcomeAccommodated
	}
}

// SetChroma sets the chroma proportion, resolving an incompatible sum per
// the policy. Setting a non-zero chroma on a grey is rejected: a grey has
// no hue to saturate toward (a ColourManipulator supplies its saved hue for
// that case).
func (h *HCV) SetChroma(p fdrn.Prop, policy Policy) Outcome {
	if h.hasHue {
		return h.setChromaProp(h.hue, p, policy)
	}
	if p == fdrn.PropZero {
		return OutcomeNoChange
	}
	return OutcomeRejected
}

// SetSum sets the channel sum, resolving incompatibility with the current
// chroma per the policy. Accommodating to the hueless boundary sums 0 and 3
// turns the colour into black or white.
func (h *HCV) SetSum(s fdrn.Sum, policy Policy) Outcome {
	assert(s <= fdrn.SumThree, "SetSum out of range")
	if s == h.sum {
		return OutcomeNoChange
	}
	if !h.hasHue {
		g := greyHCV(s)
		if g.sum == h.sum {
			return OutcomeNoChange
		}
		h.sum = g.sum
		return OutcomeOk
	}
	r, _ := h.hue.sumRangeForChromaProp(h.chroma.Prop)
	if r.Contains(s) {
		h.sum = s
		h.chroma = h.hue.chromaForSum(s, h.chroma.Prop)
		return OutcomeOk
	}
	switch policy {
	case PolicyReject:
		return OutcomeRejected
	case PolicyClamp:
		clamped := r.Clamp(s)
		if clamped == h.sum {
			return OutcomeNoChange
		}
		h.sum = clamped
		h.chroma = h.hue.chromaForSum(clamped, h.chroma.Prop)
		return OutcomeClamped
	default: // PolicyAccommodate
		if s == fdrn.SumZero || s == fdrn.SumThree {
			*h = HCV{sum: s}
			return OutcomeAccommodated
		}
		c, _ := h.hue.MaxChromaForSum(s)
		h.sum = s
		h.chroma = c
		return OutcomeAccommodated
	}
}

// SetHue repoints the colour at a new hue. FavourChroma keeps the chroma
// proportion and clamps the sum into the new hue's range; FavourValue keeps
// the sum and caps the chroma at the new hue's achievable maximum. Greys
// are left untouched: hue is only meaningful at non-zero chroma.
func (h *HCV) SetHue(hue Hue, policy SetHuePolicy) {
	if h.chroma.IsZero() {
		return
	}
	switch policy {
	case FavourValue:
		c, ok := hue.MaxChromaForSum(h.sum)
		assert(ok, "non-grey HCV with boundary sum")
		if !ok {
			return
		}
		if h.chroma.Prop < c.Prop {
			c = hue.chromaForSum(h.sum, h.chroma.Prop)
		}
		h.hue, h.chroma = hue, c
	default: // FavourChroma
		r, _ := hue.sumRangeForChromaProp(h.chroma.Prop)
		h.sum = r.Clamp(h.sum)
		h.hue = hue
		h.chroma = hue.chromaForSum(h.sum, h.chroma.Prop)
	}
}

// Equal reports value equality. All greys of equal sum are equal regardless
// of any remembered hue identity.
func (h HCV) Equal(o HCV) bool {
	if h.chroma.IsZero() && o.chroma.IsZero() {
		return h.sum == o.sum
	}
	if h.hasHue != o.hasHue {
		return false
	}
	return h.hue == o.hue && h.chroma == o.chroma && h.sum == o.sum
}

// Cmp orders HCVs hue-major (greys first, then by hue angle), then by
// chroma, then by sum.
func (h HCV) Cmp(o HCV) int {
	switch {
	case !h.hasHue && !o.hasHue:
		return cmpSum(h.sum, o.sum)
	case !h.hasHue:
		return -1
	case !o.hasHue:
		return 1
	}
	if c := h.hue.Cmp(o.hue); c != 0 {
		return c
	}
	if c := h.chroma.Cmp(o.chroma); c != 0 {
		return c
	}
	return cmpSum(h.sum, o.sum)
}

func cmpSum(a, b fdrn.Sum) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (h HCV) String() string {
	if !h.hasHue {
		return fmt.Sprintf("HCV(grey value=%.8f)", h.Value().Float())
	}
	return fmt.Sprintf("HCV(%s %s sum=%.8f)", h.hue, h.chroma, h.sum.Float())
}

// ColourBasics is the read surface a presentation layer consumes: scalar
// attribute queries plus the validated HCV itself. RGB rematerialisation is
// available for any implementation through RGBOf.
type ColourBasics interface {
	Hue() (Hue, bool)
	Chroma() Chroma
	Value() fdrn.Prop
	Warmth() fdrn.Prop
	HCV() HCV
}
