package colorspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertAbsoluteSameSpace(t *testing.T) {
	// A Lab with a foreign white point must come back untouched,
	// not re-normalized to D65.
	in := Lab{L: 40, A: 10, B: 5, WhitePoint: D50}
	if got := ConvertAbsolute[Lab](in); got != in {
		t.Errorf("ConvertAbsolute[Lab](Lab) = %+v, want %+v", got, in)
	}
	luv := Luv{L: 1, U: 2, V: 3}
	if got := ToLuv(luv); got != luv {
		t.Errorf("ToLuv(Luv) = %+v, want %+v", got, luv)
	}
}

func TestConvertAbsoluteLuvHSLuvDirect(t *testing.T) {
	h := HSLuv{H: 0.4, S: 0.6, L: 0.7}
	if got, want := ToLuv(h), h.Luv(); got != want {
		t.Errorf("ToLuv(HSLuv) = %+v, want %+v", got, want)
	}
	luv := h.Luv()
	if got, want := ToHSLuv(luv), HSLuvFromLuv(luv); got != want {
		t.Errorf("ToHSLuv(Luv) = %+v, want %+v", got, want)
	}
}

func TestConvertAbsoluteAllPairs(t *testing.T) {
	xyz := SRGB{R: 0.2, G: 0.4, B: 0.6}.XYZRelativeTo(D65)
	colors := []Absolute{
		xyz,
		LabFromXYZ(xyz),
		LuvFromXYZ(xyz),
		HSLuvFromXYZ(xyz),
		LinearRGBFromXYZ(xyz),
	}
	for _, from := range colors {
		for _, to := range colors {
			var got Absolute
			switch to.(type) {
			case XYZ:
				got = ToXYZ(from)
			case Lab:
				got = ToLab(from)
			case Luv:
				got = ToLuv(from)
			case HSLuv:
				got = ToHSLuv(from)
			case LinearRGB:
				got = ToLinearRGB(from)
			}
			if diff := cmp.Diff(to, got, approx(roundTripTol)); diff != "" {
				t.Errorf("%T -> %T (-want +got):\n%s", from, to, diff)
			}
		}
	}
}

func TestAbsoluteFromXYZPanicsOnPointer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AbsoluteFromXYZ[*Lab] did not panic")
		}
	}()
	_ = AbsoluteFromXYZ[*Lab](XYZ{})
}
