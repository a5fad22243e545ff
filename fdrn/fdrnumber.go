package fdrn

import (
	"fmt"
	"math/bits"
)

// FDRNumber is the signed counterpart of Sum, for intermediate results that
// may go negative (channel deltas, warmth offsets, angle trigonometry fed
// back into proportions). Same 2^60 denominator, range roughly (-8, 8).
type FDRNumber int64

const (
	FDRZero FDRNumber = 0
	FDROne  FDRNumber = 1 << fracBits
)

// FDRFromProp widens a proportion.
func FDRFromProp(p Prop) FDRNumber {
	return FDRNumber(p)
}

// FDRFromSum widens a sum.
func FDRFromSum(s Sum) FDRNumber {
	return FDRNumber(s)
}

// FDRFromFloat converts a float to a fixed-denominator number. Boundary use
// only, like PropFromFloat.
func FDRFromFloat(f float64) FDRNumber {
	return FDRNumber(f * float64(FDROne))
}

// Add returns n + o.
func (n FDRNumber) Add(o FDRNumber) FDRNumber {
	return n + o
}

// Sub returns n - o.
func (n FDRNumber) Sub(o FDRNumber) FDRNumber {
	return n - o
}

// Neg returns -n.
func (n FDRNumber) Neg() FDRNumber {
	return -n
}

// Abs returns the magnitude of n.
func (n FDRNumber) Abs() FDRNumber {
	if n < 0 {
		return -n
	}
	return n
}

// IsNegative reports whether n < 0.
func (n FDRNumber) IsNegative() bool {
	return n < 0
}

// Mul returns n * o rescaled by the fixed denominator, widening through
// unsigned 128-bit arithmetic on the magnitudes.
func (n FDRNumber) Mul(o FDRNumber) FDRNumber {
	neg := (n < 0) != (o < 0)
	a := uint64(n.Abs())
	b := uint64(o.Abs())
	hi, lo := bits.Mul64(a, b)
	m := hi<<(64-fracBits) | lo>>fracBits
	assert(m <= 1<<63-1, "FDRNumber.Mul overflow")
	if neg {
		return -FDRNumber(m)
	}
	return FDRNumber(m)
}

// Div returns n / o rescaled by the fixed denominator.
func (n FDRNumber) Div(o FDRNumber) FDRNumber {
	assert(o != 0, "FDRNumber.Div by zero")
	if o == FDROne {
		return n
	}
	neg := (n < 0) != (o < 0)
	a := uint64(n.Abs())
	b := uint64(o.Abs())
	assert(a>>(64-fracBits) < b, "FDRNumber.Div quotient out of range")
	quo, _ := bits.Div64(a>>(64-fracBits), a<<fracBits, b)
	assert(quo <= 1<<63-1, "FDRNumber.Div overflow")
	if neg {
		return -FDRNumber(quo)
	}
	return FDRNumber(quo)
}

// Prop narrows to a proportion and requires 0 <= n <= 1.
func (n FDRNumber) Prop() Prop {
	assert(n >= 0 && n <= FDROne, "FDRNumber.Prop out of range")
	return Prop(n)
}

// Sum narrows to a sum and requires 0 <= n <= 3.
func (n FDRNumber) Sum() Sum {
	assert(n >= 0 && FDRNumber(SumThree) >= n, "FDRNumber.Sum out of range")
	return Sum(n)
}

// Float returns the value as a float64.
func (n FDRNumber) Float() float64 {
	return float64(n) / float64(FDROne)
}

func (n FDRNumber) String() string {
	return fmt.Sprintf("FDRNumber(%.8f)", n.Float())
}
