package geometry

import "iter"

// AngleSequence is an infinite arithmetic progression of angles: the n-th
// element is Phase + Step·n. The zero value is the constant zero sequence.
type AngleSequence struct {
	Step  Angle
	Phase Angle
}

// NewAngleSequence creates a sequence of successive multiples of step,
// starting from the zero angle.
func NewAngleSequence(step Angle) AngleSequence {
	return AngleSequence{Step: step}
}

// At returns the n-th angle of the sequence.
func (s AngleSequence) At(n int) Angle {
	return s.Phase.Add(s.Step.Scale(float64(n)))
}

// Shift returns a copy of the sequence with its phase advanced by the
// given angle. Every element of the result is shifted by the same amount.
func (s AngleSequence) Shift(phase Angle) AngleSequence {
	return AngleSequence{Step: s.Step, Phase: s.Phase.Add(phase)}
}

// Values returns an iterator over the sequence starting at index 0.
// The sequence is infinite; the consumer decides when to stop. Each call
// returns a fresh iterator, so iteration is restartable.
func (s AngleSequence) Values() iter.Seq[Angle] {
	return func(yield func(Angle) bool) {
		for n := 0; ; n++ {
			if !yield(s.At(n)) {
				return
			}
		}
	}
}
