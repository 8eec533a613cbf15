package metals

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"

	"github.com/podratz/leonardo/geometry"
	"github.com/podratz/leonardo/sequences"
	"github.com/podratz/leonardo/shapes"
)

// Arithmetic and comparison errors for metallic numbers.
var (
	// ErrZeroStep rejects predecessor arithmetic with n = 0: there is no
	// zeroth predecessor to add or subtract.
	ErrZeroStep = errors.New("metals: predecessor step cannot be zero")

	// ErrVariantMismatch rejects ordering comparisons across variants.
	ErrVariantMismatch = errors.New("metals: cannot order metals of different variants")
)

// Metal is a metallic number: a magnitude attached to a variant of the
// metallic family. The magnitude may be any real number, zero and
// negatives included.
type Metal struct {
	Variant   Variant
	Magnitude float64
}

// New creates a metallic number with the given magnitude.
func New(v Variant, magnitude float64) Metal {
	return Metal{Variant: v, Magnitude: magnitude}
}

// Unit creates a metallic number with magnitude 1.
func Unit(v Variant) Metal {
	return New(v, 1)
}

// Ratio returns the ratio of the underlying variant.
func (m Metal) Ratio() float64 {
	return m.Variant.Ratio()
}

// At returns the n-th element of the variant sequence scaled by this
// metal's magnitude. At(0) is the magnitude itself; negative indices
// address predecessors.
func (m Metal) At(n int) float64 {
	return m.Variant.Sequence(m.Magnitude).At(n)
}

// Slice returns a range of the magnitude-scaled sequence; see
// sequences.GeometricSequence.Slice for span semantics and errors.
func (m Metal) Slice(sp sequences.Span) ([]float64, error) {
	return m.Variant.Sequence(m.Magnitude).Slice(sp)
}

// Next returns the successor metallic number, one ratio step up.
func (m Metal) Next() Metal {
	return New(m.Variant, m.At(1))
}

// Value returns the n-th next metallic value.
func (m Metal) Value(n int) float64 {
	return m.At(n)
}

// AngleAdjusted returns the magnitude-adjusted multiple of the canonical
// angle: Angle()·(1 + log_ratio(magnitude)). A zero magnitude yields the
// zero angle, guarding the logarithm.
func (m Metal) AngleAdjusted() geometry.Angle {
	if m.IsZero() {
		return geometry.Zero()
	}
	n := 1 + math.Log(m.Magnitude)/math.Log(m.Ratio())
	return m.Variant.Angle().Scale(n)
}

// Angles returns the variant's angle sequence shifted by AngleAdjusted,
// tying this instance's magnitude to a concrete rotation in a
// phyllotaxis-style spiral.
func (m Metal) Angles() geometry.AngleSequence {
	return m.Variant.AngleSequence().Shift(m.AngleAdjusted())
}

// Equal reports whether both metals share a variant and a magnitude.
func (m Metal) Equal(other Metal) bool {
	return m.Variant == other.Variant && m.Magnitude == other.Magnitude
}

// Less orders two metals of the same variant by magnitude. Metals of
// different variants are not comparable and yield ErrVariantMismatch.
func (m Metal) Less(other Metal) (bool, error) {
	if m.Variant != other.Variant {
		return false, fmt.Errorf("%w: %s vs %s", ErrVariantMismatch, m.Variant, other.Variant)
	}
	return m.Magnitude < other.Magnitude, nil
}

// Add returns a new metal with the n-th predecessor At(-n) added to the
// magnitude. n = 0 fails with ErrZeroStep.
func (m Metal) Add(n int) (Metal, error) {
	if n == 0 {
		return Metal{}, ErrZeroStep
	}
	return New(m.Variant, m.Magnitude+m.At(-n)), nil
}

// Sub returns a new metal with the n-th predecessor subtracted from the
// magnitude. n = 0 fails with ErrZeroStep.
func (m Metal) Sub(n int) (Metal, error) {
	if n == 0 {
		return Metal{}, ErrZeroStep
	}
	return New(m.Variant, m.Magnitude-m.At(-n)), nil
}

// AddInPlace adds the n-th predecessor to the magnitude in place.
func (m *Metal) AddInPlace(n int) error {
	if n == 0 {
		return ErrZeroStep
	}
	m.Magnitude += m.At(-n)
	return nil
}

// SubInPlace subtracts the n-th predecessor from the magnitude in place.
func (m *Metal) SubInPlace(n int) error {
	if n == 0 {
		return ErrZeroStep
	}
	m.Magnitude -= m.At(-n)
	return nil
}

// Rectangle returns the metallic rectangle of this number: the next
// metallic value wide and the current magnitude tall, so the aspect ratio
// equals the variant's ratio.
func (m Metal) Rectangle() shapes.Rectangle {
	return shapes.NewRectangle(m.Next().Magnitude, m.Magnitude)
}

// Rectangles returns a lazy infinite sequence of rectangles with the
// fixed current magnitude as height and successive sequence terms as
// width. Each call returns a fresh, restartable iterator.
func (m Metal) Rectangles() iter.Seq[shapes.Rectangle] {
	seq := m.Variant.Sequence(m.Magnitude)
	return func(yield func(shapes.Rectangle) bool) {
		for width := range seq.Values() {
			if !yield(shapes.NewRectangle(width, m.Magnitude)) {
				return
			}
		}
	}
}

// IsZero reports whether the magnitude is zero.
func (m Metal) IsZero() bool {
	return m.Magnitude == 0
}

// String renders the magnitude in decimal.
func (m Metal) String() string {
	return strconv.FormatFloat(m.Magnitude, 'g', -1, 64)
}

// GoString renders a reconstructable literal such as "Golden(1.5)".
func (m Metal) GoString() string {
	return fmt.Sprintf("%s(%s)", m.Variant, m)
}
