package geometry

import (
	"math"
	"math/cmplx"
	"testing"
)

const epsilon = 1e-9

func TestAngleConversions(t *testing.T) {
	tests := []struct {
		name    string
		angle   Angle
		turns   float64
		radians float64
		degrees float64
	}{
		{"zero", Zero(), 0, 0, 0},
		{"quarter turn", FromTurns(0.25), 0.25, math.Pi / 2, 90},
		{"half turn from degrees", FromDegrees(180), 0.5, math.Pi, 180},
		{"full turn from radians", FromRadians(2 * math.Pi), 1, 2 * math.Pi, 360},
		{"negative", FromDegrees(-90), -0.25, -math.Pi / 2, -90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if math.Abs(tc.angle.Turns-tc.turns) > epsilon {
				t.Errorf("Turns = %v, expected %v", tc.angle.Turns, tc.turns)
			}
			if math.Abs(tc.angle.Radians()-tc.radians) > epsilon {
				t.Errorf("Radians() = %v, expected %v", tc.angle.Radians(), tc.radians)
			}
			if math.Abs(tc.angle.Degrees()-tc.degrees) > epsilon {
				t.Errorf("Degrees() = %v, expected %v", tc.angle.Degrees(), tc.degrees)
			}
		})
	}
}

func TestAngleCanonical(t *testing.T) {
	tests := []struct {
		name    string
		angle   Angle
		degrees float64
	}{
		{"full turn reduces to zero", FromDegrees(360), 0},
		{"within range unchanged", FromDegrees(137.5), 137.5},
		{"beyond one turn", FromDegrees(450), 90},
		{"negative wraps positive", FromDegrees(-90), 270},
		{"many turns", FromDegrees(3690), 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.angle.DegreesCanonical()
			if math.Abs(got-tc.degrees) > epsilon {
				t.Errorf("DegreesCanonical() = %v, expected %v", got, tc.degrees)
			}
			if got < 0 || got >= 360 {
				t.Errorf("DegreesCanonical() = %v, outside [0, 360)", got)
			}
		})
	}
}

func TestAngleCanonicalRanges(t *testing.T) {
	a := FromDegrees(-450)

	if got := a.TurnsCanonical(); got < 0 || got >= 1 {
		t.Errorf("TurnsCanonical() = %v, outside [0, 1)", got)
	}
	if got := a.RadiansCanonical(); got < 0 || got >= 2*math.Pi {
		t.Errorf("RadiansCanonical() = %v, outside [0, 2π)", got)
	}
	if got := a.Canonical().Turns; math.Abs(got-0.75) > epsilon {
		t.Errorf("Canonical().Turns = %v, expected 0.75", got)
	}
}

func TestAngleAdd(t *testing.T) {
	a := FromDegrees(30)
	b := FromDegrees(45)

	sum := a.Add(b)
	if math.Abs(sum.Degrees()-75) > epsilon {
		t.Errorf("Add() degrees = %v, expected 75", sum.Degrees())
	}

	// Commutativity
	if sum != b.Add(a) {
		t.Error("Add() is not commutative")
	}

	// Zero is the additive identity
	if a.Add(Zero()) != a {
		t.Error("adding the zero angle changed the value")
	}
}

func TestAngleScale(t *testing.T) {
	a := FromDegrees(30)

	if got := a.Scale(3).Degrees(); math.Abs(got-90) > epsilon {
		t.Errorf("Scale(3) degrees = %v, expected 90", got)
	}
	if got := a.Scale(0); got != Zero() {
		t.Errorf("Scale(0) = %v, expected zero angle", got)
	}
	if got := a.Scale(-1).Degrees(); math.Abs(got+30) > epsilon {
		t.Errorf("Scale(-1) degrees = %v, expected -30", got)
	}
}

func TestAngleComplex(t *testing.T) {
	tests := []struct {
		name  string
		angle Angle
		want  complex128
	}{
		{"zero", Zero(), complex(1, 0)},
		{"quarter turn", FromDegrees(90), complex(0, 1)},
		{"half turn", FromDegrees(180), complex(-1, 0)},
		{"three quarters", FromDegrees(270), complex(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.angle.Complex()
			if cmplx.Abs(got-tc.want) > epsilon {
				t.Errorf("Complex() = %v, expected %v", got, tc.want)
			}
			if math.Abs(cmplx.Abs(got)-1) > epsilon {
				t.Errorf("Complex() modulus = %v, expected 1", cmplx.Abs(got))
			}
		})
	}
}

func TestAngleString(t *testing.T) {
	tests := []struct {
		angle Angle
		want  string
	}{
		{FromDegrees(137.5077), "137.51°"},
		{Zero(), "0.00°"},
		{FromDegrees(-45), "-45.00°"},
	}

	for _, tc := range tests {
		if got := tc.angle.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}
