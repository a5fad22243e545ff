package colour

import (
	"testing"

	"github.com/jmylchreest/hcv/fdrn"
)

func TestHCVFromRGBRoundTrip(t *testing.T) {
	// Classifying an 8-bit colour, rematerialising it, and classifying
	// again is a fixed point: no drift at any step.
	rgbs := []RGB[uint8]{
		{255, 0, 0},
		{255, 255, 0},
		{0, 255, 255},
		{128, 128, 128},
		{255, 255, 255},
		{0, 0, 0},
		{192, 128, 64},
		{64, 128, 192},
		{200, 10, 180},
		{1, 2, 3},
		{254, 253, 1},
	}
	for _, rgb := range rgbs {
		hcv := HCVFromRGB(rgb)
		back := RGBOf[uint8](hcv)
		if back != rgb {
			t.Errorf("%v: rematerialised as %v (%v)", rgb, back, hcv)
			continue
		}
		if again := HCVFromRGB(back); !again.Equal(hcv) {
			t.Errorf("%v: reclassified as %v, want %v", rgb, again, hcv)
		}
	}
}

func TestHCVFromRGB16RoundTrip(t *testing.T) {
	rgbs := []RGB[uint16]{
		{0xffff, 0x8000, 0x0000},
		{0x0102, 0x0304, 0x0506},
		{0x8000, 0x8000, 0x8000},
		{0xfffe, 0xffff, 0x0001},
	}
	for _, rgb := range rgbs {
		hcv := HCVFromRGB(rgb)
		if back := RGBOf[uint16](hcv); back != rgb {
			t.Errorf("%v: rematerialised as %v (%v)", rgb, back, hcv)
		}
	}
}

func TestHCVGrey(t *testing.T) {
	grey := NewGrey(fdrn.PropHalf)
	if _, ok := grey.Hue(); ok {
		t.Error("grey has a hue")
	}
	if !grey.Chroma().IsZero() {
		t.Errorf("grey chroma: got %v", grey.Chroma())
	}
	if got := grey.Value(); got != fdrn.PropHalf {
		t.Errorf("grey value: got %v, want half", got)
	}
	if got := RGBOf[uint8](grey); got != (RGB[uint8]{128, 128, 128}) {
		t.Errorf("grey rgb: got %v, want [128 128 128]", got)
	}
	if got := grey.Warmth(); got != fdrn.PropHalf {
		t.Errorf("grey warmth: got %v, want half", got)
	}
	if got := grey.Greyness(); got != fdrn.PropOne {
		t.Errorf("grey greyness: got %v, want one", got)
	}
}

func TestHCVAttributeQueries(t *testing.T) {
	hcv := HCVFromProps([3]fdrn.Prop{pFiveEighths, pThreeEighths, pEighth})
	hue, ok := hcv.Hue()
	if !ok {
		t.Fatal("no hue")
	}
	if want := NewSextantHue(SextantRedYellow, fdrn.PropHalf); hue != want {
		t.Errorf("hue: got %v, want %v", hue, want)
	}
	if want := (Chroma{ChromaShade, fdrn.PropHalf}); hcv.Chroma() != want {
		t.Errorf("chroma: got %v, want %v", hcv.Chroma(), want)
	}
	if want := fdrn.SumOne + fdrn.SumFromProp(pEighth); hcv.Sum() != want {
		t.Errorf("sum: got %v, want %v", hcv.Sum(), want)
	}
	if want := pThreeEighths; hcv.Value() != want {
		t.Errorf("value: got %v, want %v", hcv.Value(), want)
	}
	if want := fdrn.PropHalf; hcv.Greyness() != want {
		t.Errorf("greyness: got %v, want %v", hcv.Greyness(), want)
	}
	// warmth weight 0.75 at half chroma: (1 + 0.375)/2
	if want := fdrn.PropHalf + pEighth + fdrn.PropOne/16; hcv.Warmth() != want {
		t.Errorf("warmth: got %v, want %v", hcv.Warmth(), want)
	}
}

func TestHCVEquality(t *testing.T) {
	// Greys of equal sum are equal however they were produced.
	a := NewGrey(fdrn.PropHalf)
	b := HCVFromProps([3]fdrn.Prop{fdrn.PropHalf, fdrn.PropHalf, fdrn.PropHalf})
	if !a.Equal(b) {
		t.Errorf("equal greys compare unequal: %v vs %v", a, b)
	}
	if a.Equal(NewGrey(pQuarter)) {
		t.Error("different greys compare equal")
	}
	red := HCVFromProps(RedProps)
	if red.Equal(a) || a.Equal(red) {
		t.Error("grey equals a coloured value")
	}
	if !red.Equal(HCVFromProps(RedProps)) {
		t.Error("identical colours compare unequal")
	}
}

func TestHCVOrdering(t *testing.T) {
	ordered := []HCV{
		NewGrey(fdrn.PropZero),
		NewGrey(fdrn.PropOne),
		HCVFromProps([3]fdrn.Prop{pQuarter, pQuarter, fdrn.PropHalf}), // blue-ish
		HCVFromProps([3]fdrn.Prop{fdrn.PropHalf, pQuarter, pQuarter}), // red shade, low chroma
		HCVFromProps([3]fdrn.Prop{fdrn.PropOne, pQuarter, pQuarter}),  // red, higher chroma
		HCVFromProps(YellowProps),
		HCVFromProps(CyanProps),
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Cmp(ordered[i]) >= 0 {
			t.Errorf("%v should sort before %v", ordered[i-1], ordered[i])
		}
		if ordered[i].Cmp(ordered[i-1]) <= 0 {
			t.Errorf("%v should sort after %v", ordered[i], ordered[i-1])
		}
	}
	if got := ordered[3].Cmp(ordered[3]); got != 0 {
		t.Errorf("self comparison: got %d, want 0", got)
	}
}

func TestSetHue(t *testing.T) {
	t.Run("favour chroma moves sum", func(t *testing.T) {
		hcv := HCVFromProps(RedProps)
		hcv.SetHue(SecondaryHue(HueYellow), FavourChroma)
		if got := hcv.Chroma(); got != ChromaOne {
			t.Errorf("chroma: got %v, want full", got)
		}
		if got := hcv.Sum(); got != fdrn.SumTwo {
			t.Errorf("sum: got %v, want 2", got)
		}
		if got := RGBOf[uint8](hcv); got != (RGB[uint8]{255, 255, 0}) {
			t.Errorf("rgb: got %v, want yellow", got)
		}
	})
	t.Run("favour value caps chroma", func(t *testing.T) {
		hcv := HCVFromProps(RedProps) // sum 1, chroma 1
		hcv.SetHue(SecondaryHue(HueCyan), FavourValue)
		if got := hcv.Sum(); got != fdrn.SumOne {
			t.Errorf("sum: got %v, want 1", got)
		}
		if want := (Chroma{ChromaShade, fdrn.PropHalf}); hcv.Chroma() != want {
			t.Errorf("chroma: got %v, want %v", hcv.Chroma(), want)
		}
	})
	t.Run("grey is untouched", func(t *testing.T) {
		hcv := NewGrey(fdrn.PropHalf)
		hcv.SetHue(PrimaryHue(HueRed), FavourChroma)
		if _, ok := hcv.Hue(); ok {
			t.Error("grey acquired a hue")
		}
	})
}

func TestSetChromaOutcomes(t *testing.T) {
	seed := [3]fdrn.Prop{pFiveEighths, pThreeEighths, pEighth} // RedYellow(0.5), sum 1.125, chroma 0.5

	t.Run("compatible target", func(t *testing.T) {
		hcv := HCVFromProps(seed)
		if got := hcv.SetChroma(pThreeEighths, PolicyReject); got != OutcomeOk {
			t.Fatalf("outcome: got %v, want ok", got)
		}
		if want := (Chroma{ChromaShade, pThreeEighths}); hcv.Chroma() != want {
			t.Errorf("chroma: got %v, want %v", hcv.Chroma(), want)
		}
		if hcv.Sum() != fdrn.SumOne+fdrn.SumFromProp(pEighth) {
			t.Errorf("sum moved: %v", hcv.Sum())
		}
	})
	t.Run("clamp stops at the achievable boundary", func(t *testing.T) {
		hcv := HCVFromProps(seed)
		if got := hcv.SetChroma(fdrn.PropOne, PolicyClamp); got != OutcomeClamped {
			t.Fatalf("outcome: got %v, want clamped", got)
		}
		if want := (Chroma{ChromaShade, pThreeQuarters}); hcv.Chroma() != want {
			t.Errorf("chroma: got %v, want %v", hcv.Chroma(), want)
		}
		if hcv.Sum() != fdrn.SumOne+fdrn.SumFromProp(pEighth) {
			t.Errorf("sum moved under clamp: %v", hcv.Sum())
		}
		// Already at the boundary: nothing more to clamp toward.
		if got := hcv.SetChroma(fdrn.PropOne, PolicyClamp); got != OutcomeNoChange {
			t.Errorf("repeat outcome: got %v, want no-change", got)
		}
	})
	t.Run("accommodate moves the sum", func(t *testing.T) {
		hcv := HCVFromProps(seed)
		if got := hcv.SetChroma(fdrn.PropOne, PolicyAccommodate); got != OutcomeAccommodated {
			t.Fatalf("outcome: got %v, want accommodated", got)
		}
		if hcv.Chroma() != ChromaOne {
			t.Errorf("chroma: got %v, want full", hcv.Chroma())
		}
		hue, _ := hcv.Hue()
		if hcv.Sum() != hue.SumForMaxChroma() {
			t.Errorf("sum: got %v, want sum-for-max-chroma %v", hcv.Sum(), hue.SumForMaxChroma())
		}
	})
	t.Run("reject leaves the value untouched", func(t *testing.T) {
		hcv := HCVFromProps(seed)
		before := hcv
		if got := hcv.SetChroma(fdrn.PropOne, PolicyReject); got != OutcomeRejected {
			t.Fatalf("outcome: got %v, want rejected", got)
		}
		if !hcv.Equal(before) {
			t.Errorf("value mutated on reject: %v", hcv)
		}
	})
	t.Run("grey cannot saturate without a hue", func(t *testing.T) {
		hcv := NewGrey(fdrn.PropHalf)
		if got := hcv.SetChroma(fdrn.PropHalf, PolicyAccommodate); got != OutcomeRejected {
			t.Errorf("outcome: got %v, want rejected", got)
		}
	})
	t.Run("zero target greys out", func(t *testing.T) {
		hcv := HCVFromProps(seed)
		if got := hcv.SetChroma(fdrn.PropZero, PolicyClamp); got != OutcomeOk {
			t.Fatalf("outcome: got %v, want ok", got)
		}
		if _, ok := hcv.Hue(); ok {
			t.Error("hue survived zero chroma")
		}
		if hcv.Sum().Mod3() != 0 {
			t.Error("grey sum not aligned")
		}
	})
}

func TestSetSumOutcomes(t *testing.T) {
	t.Run("compatible target retags", func(t *testing.T) {
		hcv := HCVFromProps([3]fdrn.Prop{pFiveEighths, pThreeEighths, pEighth})
		target := fdrn.SumTwo // above sum-for-max-chroma 1.5: becomes a tint
		if got := hcv.SetSum(target, PolicyReject); got != OutcomeOk {
			t.Fatalf("outcome: got %v, want ok", got)
		}
		if want := (Chroma{ChromaTint, fdrn.PropHalf}); hcv.Chroma() != want {
			t.Errorf("chroma: got %v, want %v", hcv.Chroma(), want)
		}
		if hcv.Sum() != target {
			t.Errorf("sum: got %v, want %v", hcv.Sum(), target)
		}
	})
	t.Run("clamp stops at the range boundary", func(t *testing.T) {
		hcv := HCVFromProps(RedProps) // chroma 1: only sum 1 is compatible
		if got := hcv.SetSum(fdrn.SumTwo, PolicyClamp); got != OutcomeNoChange {
			t.Errorf("outcome: got %v, want no-change", got)
		}
		if hcv.Sum() != fdrn.SumOne {
			t.Errorf("sum moved: %v", hcv.Sum())
		}
	})
	t.Run("accommodate reduces chroma", func(t *testing.T) {
		hcv := HCVFromProps(RedProps)
		if got := hcv.SetSum(fdrn.SumTwo, PolicyAccommodate); got != OutcomeAccommodated {
			t.Fatalf("outcome: got %v, want accommodated", got)
		}
		if want := (Chroma{ChromaTint, fdrn.PropHalf}); hcv.Chroma() != want {
			t.Errorf("chroma: got %v, want %v", hcv.Chroma(), want)
		}
		if got := RGBOf[uint8](hcv); got != (RGB[uint8]{255, 128, 128}) {
			t.Errorf("rgb: got %v, want [255 128 128]", got)
		}
	})
	t.Run("accommodate to the boundary greys out", func(t *testing.T) {
		hcv := HCVFromProps(RedProps)
		if got := hcv.SetSum(fdrn.SumThree, PolicyAccommodate); got != OutcomeAccommodated {
			t.Fatalf("outcome: got %v, want accommodated", got)
		}
		if _, ok := hcv.Hue(); ok {
			t.Error("hue survived the white boundary")
		}
		if got := RGBOf[uint8](hcv); got != (RGB[uint8]{255, 255, 255}) {
			t.Errorf("rgb: got %v, want white", got)
		}
	})
	t.Run("reject leaves the value untouched", func(t *testing.T) {
		hcv := HCVFromProps(RedProps)
		before := hcv
		if got := hcv.SetSum(fdrn.SumTwo, PolicyReject); got != OutcomeRejected {
			t.Fatalf("outcome: got %v, want rejected", got)
		}
		if !hcv.Equal(before) {
			t.Errorf("value mutated on reject: %v", hcv)
		}
	})
	t.Run("grey aligns the new sum", func(t *testing.T) {
		hcv := NewGrey(fdrn.PropHalf)
		if got := hcv.SetSum(fdrn.SumOne, PolicyClamp); got != OutcomeOk {
			t.Fatalf("outcome: got %v, want ok", got)
		}
		if hcv.Sum().Mod3() != 0 {
			t.Error("grey sum not aligned")
		}
		if hcv.Sum() > fdrn.SumOne || fdrn.SumOne-hcv.Sum() >= 3 {
			t.Errorf("aligned sum too far from target: %v", hcv.Sum())
		}
	})
}
