package fdrn

import (
	"fmt"
	"math"
)

// Angle is a hue angle in (-180°, 180°], stored as a signed fixed-point
// count of 2^-54 degree units. Addition and subtraction wrap around the
// circle using double-width intermediates; the trigonometric methods are the
// kernel's only tolerated floating-point boundary.
type Angle int64

// AngleDegree is one degree.
const AngleDegree Angle = 1 << 54

const (
	fullTurn int64 = 360 * int64(AngleDegree)
	halfTurn int64 = fullTurn / 2
)

// normalizeAngle wraps an unbounded unit count into (-180°, 180°].
func normalizeAngle(a int64) Angle {
	a %= fullTurn
	if a > halfTurn {
		a -= fullTurn
	} else if a <= -halfTurn {
		a += fullTurn
	}
	return Angle(a)
}

// AngleFromDegrees converts degrees to a wrapped Angle. Integer degree
// values convert exactly. Whole turns are removed before scaling so the
// fixed-point unit count never overflows.
func AngleFromDegrees(deg float64) Angle {
	deg = math.Mod(deg, 360)
	return normalizeAngle(int64(math.Round(deg * float64(AngleDegree))))
}

// AngleFromRadians converts radians to a wrapped Angle.
func AngleFromRadians(rad float64) Angle {
	return AngleFromDegrees(rad * 180 / math.Pi)
}

// Add returns a + o wrapped into (-180°, 180°].
func (a Angle) Add(o Angle) Angle {
	return normalizeAngle(int64(a) + int64(o))
}

// Sub returns a - o wrapped into (-180°, 180°].
func (a Angle) Sub(o Angle) Angle {
	return normalizeAngle(int64(a) - int64(o))
}

// Neg returns the opposite angle; -180° normalises to 180°.
func (a Angle) Neg() Angle {
	return normalizeAngle(-int64(a))
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) / float64(AngleDegree)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.Degrees() * math.Pi / 180
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(a.Radians())
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(a.Radians())
}

// Asin returns the angle in [-90°, 90°] whose sine is x, which must lie in
// [-1, 1].
func Asin(x float64) Angle {
	assert(x >= -1 && x <= 1, "Asin argument out of range")
	return AngleFromRadians(math.Asin(x))
}

func (a Angle) String() string {
	return fmt.Sprintf("Angle(%.6f°)", a.Degrees())
}
