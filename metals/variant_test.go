package metals

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestMetallicRatioSolvesDefiningEquation(t *testing.T) {
	// Each metallic ratio is the positive root of x² = nx + 1.
	for n := 1; n <= 10; n++ {
		x := MetallicRatio(n)
		if residual := x*x - float64(n)*x - 1; math.Abs(residual) > epsilon {
			t.Errorf("MetallicRatio(%d) = %v does not solve x² = %dx + 1 (residual %v)", n, x, n, residual)
		}
		if x <= 1 {
			t.Errorf("MetallicRatio(%d) = %v, expected > 1", n, x)
		}
	}
}

func TestVariantRatios(t *testing.T) {
	tests := []struct {
		variant Variant
		ratio   float64
	}{
		{Golden, 1.6180339887498949},
		{Silver, 2.4142135623730951},
		{Bronze, 3.302775637731995},
	}

	for _, tc := range tests {
		t.Run(tc.variant.Name(), func(t *testing.T) {
			if got := tc.variant.Ratio(); math.Abs(got-tc.ratio) > epsilon {
				t.Errorf("Ratio() = %v, expected %v", got, tc.ratio)
			}
		})
	}
}

func TestVariantAngle(t *testing.T) {
	// The golden angle is the celebrated 137.5° of phyllotaxis.
	got := Golden.Angle().DegreesCanonical()
	if math.Abs(got-137.50776405003785) > 1e-6 {
		t.Errorf("golden angle = %v°, expected ~137.5077°", got)
	}

	// In general the canonical angle is 1/(1+ratio) of a turn.
	for _, v := range Variants() {
		want := 360 / (1 + v.Ratio())
		if deg := v.Angle().Degrees(); math.Abs(deg-want) > epsilon {
			t.Errorf("%s angle = %v°, expected %v°", v, deg, want)
		}
	}
}

func TestVariantSequence(t *testing.T) {
	seq := Silver.Sequence(3)

	if seq.CommonRatio != Silver.Ratio() {
		t.Errorf("CommonRatio = %v, expected %v", seq.CommonRatio, Silver.Ratio())
	}
	if seq.ScaleFactor != 3 {
		t.Errorf("ScaleFactor = %v, expected 3", seq.ScaleFactor)
	}
}

func TestVariantAngleSequence(t *testing.T) {
	seq := Golden.AngleSequence()

	if got := seq.At(0).Degrees(); math.Abs(got) > epsilon {
		t.Errorf("At(0) = %v°, expected 0", got)
	}
	want := 2 * Golden.Angle().Degrees()
	if got := seq.At(2).Degrees(); math.Abs(got-want) > epsilon {
		t.Errorf("At(2) = %v°, expected %v", got, want)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Variant
	}{
		{"lowercase", "golden", Golden},
		{"capitalized", "Silver", Silver},
		{"uppercase", "BRONZE", Bronze},
		{"padded", "  nickel ", Nickel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseVariant(tc.in)
			if err != nil {
				t.Fatalf("ParseVariant(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseVariant(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}

	if _, err := ParseVariant("adamantium"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ParseVariant(unknown) error = %v, expected ErrUnknownVariant", err)
	}
}

func TestVariantsOrdering(t *testing.T) {
	vs := Variants()
	if len(vs) != 6 {
		t.Fatalf("Variants() returned %d variants, expected 6", len(vs))
	}
	for i := 1; i < len(vs); i++ {
		if vs[i].Ratio() <= vs[i-1].Ratio() {
			t.Errorf("variants not in ascending ratio order at index %d", i)
		}
	}
}

func TestVariantString(t *testing.T) {
	if got := Golden.String(); got != "Golden" {
		t.Errorf("String() = %q, expected %q", got, "Golden")
	}
	if got := Variant(42).String(); got != "Variant(42)" {
		t.Errorf("String() = %q, expected %q", got, "Variant(42)")
	}
}
