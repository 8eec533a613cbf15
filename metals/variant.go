// Package metals models the metallic ratios (the golden ratio and its
// generalizations) together with the sequences, angles, and rectangles
// they give rise to.
//
// The n-th metallic ratio is the positive root of x² = nx + 1. Golden is
// the n=1 case (~1.618), silver n=2 (~2.414), and so on. Every ratio in
// the family exceeds 1, so the derived sequences grow without bound.
package metals

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/podratz/leonardo/geometry"
	"github.com/podratz/leonardo/sequences"
)

// ErrUnknownVariant is returned by ParseVariant for names outside the family.
var ErrUnknownVariant = errors.New("metals: unknown variant")

// Variant identifies a member of the metallic family. The set is a closed
// enumeration; each variant's ratio is a class-level constant, not runtime
// configuration.
type Variant int

const (
	Golden   Variant = iota + 1 // x² = x + 1, ~1.6180339887
	Silver                      // x² = 2x + 1, ~2.4142135624
	Bronze                      // x² = 3x + 1, ~3.3027756377
	Copper                      // x² = 4x + 1, ~4.2360679775
	Nickel                      // x² = 5x + 1, ~5.1925824036
	Platinum                    // x² = 6x + 1, ~6.1622776602
)

var variantNames = [...]string{
	Golden:   "golden",
	Silver:   "silver",
	Bronze:   "bronze",
	Copper:   "copper",
	Nickel:   "nickel",
	Platinum: "platinum",
}

// MetallicRatio returns the n-th metallic ratio, the positive root of
// x² = nx + 1, in closed form: (n + √(n²+4)) / 2.
func MetallicRatio(n int) float64 {
	fn := float64(n)
	return (fn + math.Sqrt(fn*fn+4)) / 2
}

// Ratio returns the variant's characteristic ratio.
func (v Variant) Ratio() float64 {
	return MetallicRatio(int(v))
}

// Valid reports whether v names one of the enumerated variants.
func (v Variant) Valid() bool {
	return v >= Golden && v <= Platinum
}

// String returns the capitalized variant name, e.g. "Golden".
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	name := variantNames[v]
	return strings.ToUpper(name[:1]) + name[1:]
}

// Name returns the lowercase variant name used for lookup and storage.
func (v Variant) Name() string {
	if !v.Valid() {
		return fmt.Sprintf("variant-%d", int(v))
	}
	return variantNames[v]
}

// ParseVariant resolves a case-insensitive variant name.
func ParseVariant(name string) (Variant, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for v := Golden; v <= Platinum; v++ {
		if variantNames[v] == want {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Variants returns all enumerated variants in ascending ratio order.
func Variants() []Variant {
	vs := make([]Variant, 0, Platinum-Golden+1)
	for v := Golden; v <= Platinum; v++ {
		vs = append(vs, v)
	}
	return vs
}

// Sequence builds the variant's geometric sequence: successive powers of
// the metallic ratio scaled by the given factor.
func (v Variant) Sequence(scaleFactor float64) sequences.GeometricSequence {
	return sequences.New(v.Ratio(), scaleFactor)
}

// Angle returns the variant's canonical rotation, 1/(1+ratio) of a full
// turn. For Golden this is the 137.5° growth angle of phyllotaxis.
func (v Variant) Angle() geometry.Angle {
	return geometry.FromTurns(1 / (1 + v.Ratio()))
}

// AngleSequence returns successive multiples of the canonical angle, one
// per sequence index.
func (v Variant) AngleSequence() geometry.AngleSequence {
	return geometry.NewAngleSequence(v.Angle())
}
