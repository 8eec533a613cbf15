package geometry

import (
	"math"
	"testing"
)

func TestAngleSequenceAt(t *testing.T) {
	seq := NewAngleSequence(FromDegrees(90))

	tests := []struct {
		n       int
		degrees float64
	}{
		{0, 0},
		{1, 90},
		{2, 180},
		{4, 360},
		{-1, -90},
	}

	for _, tc := range tests {
		got := seq.At(tc.n).Degrees()
		if math.Abs(got-tc.degrees) > epsilon {
			t.Errorf("At(%d) degrees = %v, expected %v", tc.n, got, tc.degrees)
		}
	}
}

func TestAngleSequenceShift(t *testing.T) {
	seq := NewAngleSequence(FromDegrees(90))
	shifted := seq.Shift(FromDegrees(30))

	if got := shifted.At(0).Degrees(); math.Abs(got-30) > epsilon {
		t.Errorf("shifted At(0) degrees = %v, expected 30", got)
	}
	if got := shifted.At(2).Degrees(); math.Abs(got-210) > epsilon {
		t.Errorf("shifted At(2) degrees = %v, expected 210", got)
	}

	// Original is untouched
	if seq.Phase != Zero() {
		t.Errorf("Shift() mutated the original sequence phase: %v", seq.Phase)
	}
}

func TestAngleSequenceValues(t *testing.T) {
	seq := NewAngleSequence(FromDegrees(120))

	var got []float64
	for a := range seq.Values() {
		got = append(got, a.Degrees())
		if len(got) == 4 {
			break
		}
	}

	want := []float64{0, 120, 240, 360}
	for i := range want {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("Values()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	// Restartable: a second iteration starts over at index 0
	for a := range seq.Values() {
		if math.Abs(a.Degrees()) > epsilon {
			t.Errorf("restarted iteration began at %v, expected 0", a.Degrees())
		}
		break
	}
}
