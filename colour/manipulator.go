package colour

import (
	"github.com/jmylchreest/hcv/fdrn"
)

// ColourManipulator owns one live HCV for an editing session and mutates it
// stepwise. Every mutating method either leaves the HCV exactly unchanged
// (reported via a false return) or replaces it with a new, fully valid one;
// there is no partial mutation and no legal input panics.
//
// The manipulator remembers the last hue across chroma-zero excursions, so
// de-saturating to grey and re-saturating restores the original hue instead
// of defaulting. The clamped flag routes chroma and value steps through
// PolicyClamp instead of PolicyAccommodate.
type ColourManipulator struct {
	hcv            HCV
	savedHue       Hue
	clamped        bool
	rotationPolicy SetHuePolicy
}

// ManipulatorBuilder assembles a ColourManipulator.
type ManipulatorBuilder struct {
	colour         HCV
	savedHue       Hue
	clamped        bool
	rotationPolicy SetHuePolicy
}

// NewManipulatorBuilder starts a builder seeded with black, an unset clamp
// flag, a FavourChroma rotation policy, and red as the fallback hue for
// saturating a never-coloured grey.
func NewManipulatorBuilder() *ManipulatorBuilder {
	return &ManipulatorBuilder{savedHue: PrimaryHue(HueRed)}
}

// WithColour seeds the manipulator with a colour.
func (b *ManipulatorBuilder) WithColour(c ColourBasics) *ManipulatorBuilder {
	b.colour = c.HCV()
	if hue, ok := b.colour.Hue(); ok {
		b.savedHue = hue
	}
	return b
}

// WithClamped sets the initial clamp flag.
func (b *ManipulatorBuilder) WithClamped(clamped bool) *ManipulatorBuilder {
	b.clamped = clamped
	return b
}

// WithRotationPolicy sets the policy hue rotation applies.
func (b *ManipulatorBuilder) WithRotationPolicy(p SetHuePolicy) *ManipulatorBuilder {
	b.rotationPolicy = p
	return b
}

// Build returns the assembled manipulator.
func (b *ManipulatorBuilder) Build() *ColourManipulator {
	return &ColourManipulator{
		hcv:            b.colour,
		savedHue:       b.savedHue,
		clamped:        b.clamped,
		rotationPolicy: b.rotationPolicy,
	}
}

// HCV returns the live colour value.
func (m *ColourManipulator) HCV() HCV {
	return m.hcv
}

// Hue returns the live hue; false while the colour is grey.
func (m *ColourManipulator) Hue() (Hue, bool) {
	return m.hcv.Hue()
}

// Chroma returns the live chroma.
func (m *ColourManipulator) Chroma() Chroma {
	return m.hcv.Chroma()
}

// Value returns the live average brightness.
func (m *ColourManipulator) Value() fdrn.Prop {
	return m.hcv.Value()
}

// Warmth returns the live warmth.
func (m *ColourManipulator) Warmth() fdrn.Prop {
	return m.hcv.Warmth()
}

// Clamped reports the clamp flag.
func (m *ColourManipulator) Clamped() bool {
	return m.clamped
}

// SetClamped routes subsequent chroma and value steps through PolicyClamp
// (true) or PolicyAccommodate (false).
func (m *ColourManipulator) SetClamped(clamped bool) {
	m.clamped = clamped
}

// RotationPolicy reports the policy Rotate applies.
func (m *ColourManipulator) RotationPolicy() SetHuePolicy {
	return m.rotationPolicy
}

// SetRotationPolicy sets the policy Rotate applies.
func (m *ColourManipulator) SetRotationPolicy(p SetHuePolicy) {
	m.rotationPolicy = p
}

// SetColour hard-resets the live value from an external colour. Always
// succeeds; a coloured input refreshes the saved hue.
func (m *ColourManipulator) SetColour(c ColourBasics) {
	m.hcv = c.HCV()
	m.rememberHue()
}

func (m *ColourManipulator) policy() Policy {
	if m.clamped {
		return PolicyClamp
	}
	return PolicyAccommodate
}

// rememberHue refreshes the saved hue whenever the live colour has one.
func (m *ColourManipulator) rememberHue() {
	if hue, ok := m.hcv.Hue(); ok {
		m.savedHue = hue
	}
}

// IncrChroma steps the chroma up by delta, saturating at one. Re-saturating
// a grey restores the saved hue. Returns false when nothing changed.
func (m *ColourManipulator) IncrChroma(delta fdrn.Prop) bool {
	cur := m.hcv.chroma.Prop
	if cur == fdrn.PropOne {
		return false
	}
	target := fdrn.PropOne
	if rem := fdrn.PropOne.Sub(cur); delta < rem {
		target = cur.Add(delta)
	}
	hue := m.savedHue
	if h, ok := m.hcv.Hue(); ok {
		hue = h
	}
	outcome := m.hcv.setChromaProp(hue, target, m.policy())
	m.rememberHue()
	return outcome.changed()
}

// DecrChroma steps the chroma down by delta, stopping exactly at zero;
// reaching zero drops the hue and keeps the sum (grey-aligned). Returns
// false when nothing changed.
func (m *ColourManipulator) DecrChroma(delta fdrn.Prop) bool {
	cur := m.hcv.chroma.Prop
	if cur == fdrn.PropZero {
		return false
	}
	target := fdrn.PropZero
	if delta < cur {
		target = cur.Sub(delta)
	}
	m.rememberHue()
	outcome := m.hcv.setChromaProp(m.savedHue, target, m.policy())
	return outcome.changed()
}

// IncrValue steps the value up by delta (the sum by three times that),
// within what the current chroma allows. Returns false when nothing
// changed.
func (m *ColourManipulator) IncrValue(delta fdrn.Prop) bool {
	step := fdrn.SumFromProp(delta) * 3
	target := fdrn.SumThree
	if rem := fdrn.SumThree.Sub(m.hcv.sum); step < rem {
		target = m.hcv.sum.Add(step)
	}
	outcome := m.hcv.SetSum(target, m.policy())
	m.rememberHue()
	return outcome.changed()
}

// DecrValue steps the value down by delta, within what the current chroma
// allows. Returns false when nothing changed.
func (m *ColourManipulator) DecrValue(delta fdrn.Prop) bool {
	step := fdrn.SumFromProp(delta) * 3
	target := fdrn.SumZero
	if step < m.hcv.sum {
		target = m.hcv.sum.Sub(step)
	}
	outcome := m.hcv.SetSum(target, m.policy())
	m.rememberHue()
	return outcome.changed()
}

// Rotate turns the hue by the given angle under the configured rotation
// policy. A grey cannot rotate; returns false when nothing changed.
func (m *ColourManipulator) Rotate(by fdrn.Angle) bool {
	hue, ok := m.hcv.Hue()
	if !ok {
		return false
	}
	next := HueFromAngle(hue.Angle().Add(by))
	if next == hue {
		return false
	}
	m.hcv.SetHue(next, m.rotationPolicy)
	m.rememberHue()
	return true
}
