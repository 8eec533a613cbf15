// Package sequences provides closed-form infinite numeric sequences.
// A sequence is never materialized: every element is computed on demand
// from its index.
package sequences

import (
	"errors"
	"iter"
	"math"
)

// Slice query errors. Callers are expected to validate spans before
// querying; these surface the invalid cases as typed failures.
var (
	ErrNoStart  = errors.New("sequences: slice requires an explicit start")
	ErrNoStop   = errors.New("sequences: slice requires an explicit stop")
	ErrZeroStep = errors.New("sequences: slice step cannot be zero")
)

// GeometricSequence represents the infinite sequence
// a(n) = ScaleFactor · CommonRatio^n for every integer n.
// Two sequences are equal iff both fields match exactly; compare with ==.
type GeometricSequence struct {
	CommonRatio float64
	ScaleFactor float64
}

// New creates a geometric sequence from a common ratio and a scale factor.
func New(commonRatio, scaleFactor float64) GeometricSequence {
	return GeometricSequence{CommonRatio: commonRatio, ScaleFactor: scaleFactor}
}

// At returns the element at the given index. Negative indices address
// prior terms: At(-1) is the element one ratio step before At(0).
func (s GeometricSequence) At(n int) float64 {
	return s.ScaleFactor * math.Pow(s.CommonRatio, float64(n))
}

// Span selects a half-open index range of a sequence, mirroring slice
// subscripts: From(a).To(b) covers indices a..b-1, and By(k) visits every
// k-th index. Build spans with From; the zero Span is rejected by Slice.
type Span struct {
	start, stop, step *int
	hasStart          bool
}

// From starts a span at the given index.
func From(start int) Span {
	return Span{start: &start, hasStart: true}
}

// To sets the exclusive stop index of the span.
func (sp Span) To(stop int) Span {
	sp.stop = &stop
	return sp
}

// By sets the span's stride. Negative strides walk the sequence backward;
// a zero stride is rejected when the span is evaluated.
func (sp Span) By(step int) Span {
	sp.step = &step
	return sp
}

// Slice returns the elements selected by the span, in order, following
// half-open range semantics: [At(start), At(start+step), ...) stopping
// before stop. An empty range yields an empty slice.
func (s GeometricSequence) Slice(sp Span) ([]float64, error) {
	if !sp.hasStart {
		return nil, ErrNoStart
	}
	if sp.stop == nil {
		return nil, ErrNoStop
	}
	step := 1
	if sp.step != nil {
		step = *sp.step
	}
	if step == 0 {
		return nil, ErrZeroStep
	}

	start, stop := *sp.start, *sp.stop
	items := []float64{}
	if step > 0 {
		for n := start; n < stop; n += step {
			items = append(items, s.At(n))
		}
	} else {
		for n := start; n > stop; n += step {
			items = append(items, s.At(n))
		}
	}
	return items, nil
}

// Values returns an iterator over the sequence starting at index 0 and
// growing without bound. Each call returns a fresh iterator, so the
// infinite sequence can be ranged over repeatedly; the consumer decides
// when to stop.
func (s GeometricSequence) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for n := 0; ; n++ {
			if !yield(s.At(n)) {
				return
			}
		}
	}
}
