// Package phyllotaxis places seeds on a Vogel spiral driven by a metallic
// angle sequence. Seed k sits at radius spacing·√k and at the k-th angle
// of the metal's rotation sequence, reproducing the sunflower-head
// packing that makes the 137.5° golden angle famous.
package phyllotaxis

import (
	"math"

	"github.com/podratz/leonardo/geometry"
	"github.com/podratz/leonardo/metals"
)

// Seed is one placed point of the spiral.
type Seed struct {
	Index int
	X     float64
	Y     float64
	R     float64
	Theta geometry.Angle
}

// Layout is a fully computed spiral placement.
type Layout struct {
	Metal   metals.Metal
	Spacing float64
	Seeds   []Seed
}

// Place computes the first count seeds of the spiral for the given metal.
// The phase of the metal's angle sequence can be advanced with extra;
// the zero angle keeps the metal's own adjusted phase.
func Place(m metals.Metal, count int, spacing float64, extra geometry.Angle) Layout {
	if count < 0 {
		count = 0
	}
	if spacing <= 0 {
		spacing = 1
	}

	angles := m.Angles().Shift(extra)
	seeds := make([]Seed, 0, count)
	k := 0
	for theta := range angles.Values() {
		if k >= count {
			break
		}
		r := spacing * math.Sqrt(float64(k))
		rad := theta.Radians()
		seeds = append(seeds, Seed{
			Index: k,
			X:     r * math.Cos(rad),
			Y:     r * math.Sin(rad),
			R:     r,
			Theta: theta,
		})
		k++
	}

	return Layout{Metal: m, Spacing: spacing, Seeds: seeds}
}

// Radius returns the outermost seed radius, zero for an empty layout.
func (l Layout) Radius() float64 {
	if len(l.Seeds) == 0 {
		return 0
	}
	return l.Seeds[len(l.Seeds)-1].R
}
