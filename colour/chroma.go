package colour

import (
	"fmt"

	"github.com/jmylchreest/hcv/fdrn"
)

// ChromaKind tags a chroma proportion with its relation to the hue's
// sum-for-max-chroma brightness: a Shade is darker than the hue's natural
// max-chroma brightness, a Tint is lighter, Neither sits exactly on it
// (which includes full chroma and all greys).
type ChromaKind int8

const (
	ChromaNeither ChromaKind = iota
	ChromaShade
	ChromaTint
)

func (k ChromaKind) String() string {
	switch k {
	case ChromaShade:
		return "shade"
	case ChromaTint:
		return "tint"
	default:
		return "neither"
	}
}

// Chroma is a colourfulness magnitude: a proportion plus its Shade/Tint/
// Neither tag. Shade and Tint proportions lie strictly inside (0, 1);
// Neither covers the closed range.
type Chroma struct {
	Kind ChromaKind
	Prop fdrn.Prop
}

var (
	ChromaZero = Chroma{ChromaNeither, fdrn.PropZero}
	ChromaOne  = Chroma{ChromaNeither, fdrn.PropOne}
)

// IsZero reports whether the chroma is the grey chroma.
func (c Chroma) IsZero() bool {
	return c.Prop == fdrn.PropZero
}

// IsValid reports whether the tag and proportion are mutually consistent.
func (c Chroma) IsValid() bool {
	switch c.Kind {
	case ChromaShade, ChromaTint:
		return c.Prop > fdrn.PropZero && c.Prop < fdrn.PropOne
	default:
		return c.Prop <= fdrn.PropOne
	}
}

// order places Shade below Neither below Tint, matching the ordering of the
// sums the kinds stand for.
func (k ChromaKind) order() int {
	switch k {
	case ChromaShade:
		return -1
	case ChromaTint:
		return 1
	default:
		return 0
	}
}

// Cmp orders chromas by proportion, then by tag. Grey (zero) chroma sorts
// first.
func (c Chroma) Cmp(o Chroma) int {
	switch {
	case c.Prop < o.Prop:
		return -1
	case c.Prop > o.Prop:
		return 1
	}
	switch a, b := c.Kind.order(), o.Kind.order(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (c Chroma) String() string {
	return fmt.Sprintf("Chroma(%s %.8f)", c.Kind, c.Prop.Float())
}
