// Package colour implements a deterministic, invertible Hue-Chroma-Value
// colour model over fixed-denominator arithmetic. RGB triplets convert to
// validated HCV values and back without drift, and a ColourManipulator edits
// an HCV stepwise while keeping it exactly round-trippable to RGB.
package colour

import (
	"github.com/jmylchreest/hcv/fdrn"
)

// Level constrains the channel representations an RGB triple can be
// materialised at: fixed-width unsigned channels or unit-range floats.
type Level interface {
	uint8 | uint16 | float32 | float64
}

// RGB is an additive red/green/blue triple with unit-range channels.
type RGB[T Level] [3]T

// propFromLevel converts one channel to an exact proportion. Integer
// channels go through exact ratio conversion; float channels are clamped.
func propFromLevel[T Level](v T) fdrn.Prop {
	switch v := any(v).(type) {
	case uint8:
		return fdrn.PropFromRatio(uint64(v), 0xff)
	case uint16:
		return fdrn.PropFromRatio(uint64(v), 0xffff)
	case float32:
		return fdrn.PropFromFloat(float64(v))
	case float64:
		return fdrn.PropFromFloat(v)
	}
	panic("colour: unreachable level type")
}

// levelFromProp converts a proportion to one channel, rounding to the
// nearest representable level.
func levelFromProp[T Level](p fdrn.Prop) T {
	var z T
	switch any(z).(type) {
	case uint8:
		return T(p.Scale(0xff))
	case uint16:
		return T(p.Scale(0xffff))
	case float32:
		return T(float32(p.Float()))
	case float64:
		return T(p.Float())
	}
	panic("colour: unreachable level type")
}

// Props returns the channels as exact proportions in R, G, B order.
func (rgb RGB[T]) Props() [3]fdrn.Prop {
	return [3]fdrn.Prop{
		propFromLevel(rgb[0]),
		propFromLevel(rgb[1]),
		propFromLevel(rgb[2]),
	}
}

// RGBFromProps materialises a proportion triplet at light level T.
func RGBFromProps[T Level](props [3]fdrn.Prop) RGB[T] {
	return RGB[T]{
		levelFromProp[T](props[0]),
		levelFromProp[T](props[1]),
		levelFromProp[T](props[2]),
	}
}

// Sum returns R+G+B as an exact sum in [0, 3].
func (rgb RGB[T]) Sum() fdrn.Sum {
	p := rgb.Props()
	return fdrn.SumFromProp(p[0]).Add(fdrn.SumFromProp(p[1])).Add(fdrn.SumFromProp(p[2]))
}

// IsGrey reports whether all three channels are equal.
func (rgb RGB[T]) IsGrey() bool {
	return rgb[0] == rgb[1] && rgb[1] == rgb[2]
}

// Proportion triplets for the vertices of the RGB cube, usable at any light
// level via RGBFromProps.
var (
	BlackProps   = [3]fdrn.Prop{fdrn.PropZero, fdrn.PropZero, fdrn.PropZero}
	RedProps     = [3]fdrn.Prop{fdrn.PropOne, fdrn.PropZero, fdrn.PropZero}
	GreenProps   = [3]fdrn.Prop{fdrn.PropZero, fdrn.PropOne, fdrn.PropZero}
	BlueProps    = [3]fdrn.Prop{fdrn.PropZero, fdrn.PropZero, fdrn.PropOne}
	CyanProps    = [3]fdrn.Prop{fdrn.PropZero, fdrn.PropOne, fdrn.PropOne}
	MagentaProps = [3]fdrn.Prop{fdrn.PropOne, fdrn.PropZero, fdrn.PropOne}
	YellowProps  = [3]fdrn.Prop{fdrn.PropOne, fdrn.PropOne, fdrn.PropZero}
	WhiteProps   = [3]fdrn.Prop{fdrn.PropOne, fdrn.PropOne, fdrn.PropOne}
)
