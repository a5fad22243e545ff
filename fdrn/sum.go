package fdrn

import (
	"fmt"
	"math/bits"
)

// Sum is a non-negative channel total (R+G+B) in [0, 3], sharing the Prop
// denominator. The three-unit headroom leaves room for exact multiplication
// against proportions without overflow.
type Sum uint64

const (
	SumZero  Sum = 0
	SumOne   Sum = Sum(PropOne)
	SumTwo   Sum = 2 * SumOne
	SumThree Sum = 3 * SumOne
)

// SumFromProp widens a proportion to a sum.
func SumFromProp(p Prop) Sum {
	return Sum(p)
}

// Add returns s + o, which must not exceed SumThree.
func (s Sum) Add(o Sum) Sum {
	r := s + o
	assert(r <= SumThree, "Sum.Add overflow")
	return r
}

// Sub returns s - o and requires s >= o.
func (s Sum) Sub(o Sum) Sum {
	assert(s >= o, "Sum.Sub underflow")
	return s - o
}

// MulProp returns s * p exactly, via split long multiplication over a 128-bit
// intermediate.
func (s Sum) MulProp(p Prop) Sum {
	hi, lo := bits.Mul64(uint64(s), uint64(p))
	return Sum(hi<<(64-fracBits) | lo>>fracBits)
}

// DivProp returns s / p. The quotient must stay within [0, 3]; division by
// PropOne short-circuits.
func (s Sum) DivProp(p Prop) Sum {
	if p == PropOne {
		return s
	}
	assert(p != PropZero, "Sum.DivProp by zero")
	assert(uint64(s)>>(64-fracBits) < uint64(p), "Sum.DivProp quotient out of range")
	quo, _ := bits.Div64(uint64(s)>>(64-fracBits), uint64(s)<<fracBits, uint64(p))
	return Sum(quo)
}

// DivSum returns the ratio s / o as a proportion and requires s <= o.
func (s Sum) DivSum(o Sum) Prop {
	assert(o != SumZero, "Sum.DivSum by zero")
	assert(s <= o, "Sum.DivSum quotient out of range")
	if s == o {
		return PropOne
	}
	quo, _ := bits.Div64(uint64(s)>>(64-fracBits), uint64(s)<<fracBits, uint64(o))
	return Prop(quo)
}

// Mod3 returns the numerator remainder modulo 3. A zero remainder means the
// sum splits into three exactly equal channels, i.e. it can represent a grey
// with no rounding.
func (s Sum) Mod3() Sum {
	return s % 3
}

// Third returns s / 3. Exact when Mod3() == 0; truncates otherwise.
func (s Sum) Third() Prop {
	return Prop(s / 3)
}

// Prop narrows the sum to a proportion and requires s <= SumOne.
func (s Sum) Prop() Prop {
	assert(s <= SumOne, "Sum.Prop out of range")
	return Prop(s)
}

// Float returns the sum as a float64 in [0, 3].
func (s Sum) Float() float64 {
	return float64(s) / float64(PropOne)
}

// SumFromFloat converts a float in [0, 3] to a Sum, clamping values outside
// the range.
func SumFromFloat(f float64) Sum {
	if f <= 0 {
		return SumZero
	}
	if f >= 3 {
		return SumThree
	}
	return Sum(f * float64(PropOne))
}

func (s Sum) String() string {
	return fmt.Sprintf("Sum(%.8f)", s.Float())
}
