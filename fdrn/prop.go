// Package fdrn implements fixed-denominator rational arithmetic for colour
// attribute calculations. Proportions and channel sums are stored as integer
// numerators over an implicit denominator of 2^60, so every conversion between
// hue geometry and RGB stays exact: there is no floating point anywhere in the
// kernel except the trigonometric boundary on Angle.
//
// Range preconditions are checked with debug assertions enabled by the
// "debugchecks" build tag (use `go test -tags debugchecks ./...`). Release
// builds trust the invariants and perform no checks.
package fdrn

import (
	"fmt"
	"math"
	"math/bits"
)

// fracBits is the number of fractional bits in the fixed denominator.
const fracBits = 60

// Prop is a proportion in [0, 1] represented as an integer numerator over a
// denominator of 2^60. PropOne is the largest valid value.
type Prop uint64

const (
	PropZero Prop = 0
	PropOne  Prop = 1 << fracBits
	PropHalf Prop = PropOne / 2
)

// Add returns p + q. The result must not exceed PropOne; keeping it in range
// is the caller's responsibility.
func (p Prop) Add(q Prop) Prop {
	r := p + q
	assert(r <= PropOne, "Prop.Add overflow")
	return r
}

// Sub returns p - q and requires p >= q; ordering the operands is the
// caller's responsibility.
func (p Prop) Sub(q Prop) Prop {
	assert(p >= q, "Prop.Sub underflow")
	return p - q
}

// Mul returns p * q rescaled by the fixed denominator, using a widening
// 128-bit intermediate so no precision is lost before the final truncation.
func (p Prop) Mul(q Prop) Prop {
	hi, lo := bits.Mul64(uint64(p), uint64(q))
	return Prop(hi<<(64-fracBits) | lo>>fracBits)
}

// Div returns p / q as a proportion and requires p <= q. Division by PropOne
// short-circuits to p.
func (p Prop) Div(q Prop) Prop {
	if q == PropOne {
		return p
	}
	assert(q != PropZero, "Prop.Div by zero")
	assert(p <= q, "Prop.Div quotient out of range")
	quo, _ := bits.Div64(uint64(p)>>(64-fracBits), uint64(p)<<fracBits, uint64(q))
	return Prop(quo)
}

// Float returns the proportion as a float64 in [0, 1].
func (p Prop) Float() float64 {
	return float64(p) / float64(PropOne)
}

// PropFromFloat converts a float in [0, 1] to a Prop, clamping values outside
// the range. Only use this at external boundaries; the kernel itself never
// goes through floats.
func PropFromFloat(f float64) Prop {
	if f <= 0 {
		return PropZero
	}
	if f >= 1 {
		return PropOne
	}
	return Prop(math.Round(f * float64(PropOne)))
}

// PropFromRatio returns num/den as a proportion, rounded to nearest, and
// requires num <= den. It is exact up to the fixed denominator, which makes
// it the right entry point for integer channel values (e.g. num/255).
func PropFromRatio(num, den uint64) Prop {
	assert(den != 0, "PropFromRatio zero denominator")
	assert(num <= den, "PropFromRatio out of range")
	if num == den {
		return PropOne
	}
	hi, lo := bits.Mul64(num, uint64(PropOne))
	lo, carry := bits.Add64(lo, den/2, 0)
	quo, _ := bits.Div64(hi+carry, lo, den)
	return Prop(quo)
}

// Scale returns round(p * den / 2^60), mapping the proportion onto an integer
// range such as 0..255. Exact inverse of PropFromRatio up to rounding.
func (p Prop) Scale(den uint64) uint64 {
	hi, lo := bits.Mul64(uint64(p), den)
	r := hi<<(64-fracBits) | lo>>fracBits
	if lo&(1<<(fracBits-1)) != 0 {
		r++
	}
	return r
}

// String renders the proportion as a decimal fraction, mostly for tests and
// debug output.
func (p Prop) String() string {
	return fmt.Sprintf("Prop(%.8f)", p.Float())
}
