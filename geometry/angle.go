// Package geometry provides angle value types for rotational computations.
// Angles are stored as fractions of a full turn, which canonicalizes with a
// plain floored modulo instead of trigonometric normalization.
package geometry

import (
	"fmt"
	"math"
)

// Angle represents a rotation as a fraction of a full turn (1.0 = 360°).
// It is an immutable value type; all arithmetic returns new values.
type Angle struct {
	Turns float64
}

// Zero returns the zero angle, the additive identity.
func Zero() Angle {
	return Angle{}
}

// FromTurns creates an angle from a fraction of a full rotation.
func FromTurns(turns float64) Angle {
	return Angle{Turns: turns}
}

// FromRadians creates an angle from a value in radians.
func FromRadians(radians float64) Angle {
	return Angle{Turns: radians / (2 * math.Pi)}
}

// FromDegrees creates an angle from a value in degrees.
func FromDegrees(degrees float64) Angle {
	return Angle{Turns: degrees / 360}
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.Turns * 2 * math.Pi
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return a.Turns * 360
}

// TurnsCanonical returns the turn fraction reduced into [0, 1).
func (a Angle) TurnsCanonical() float64 {
	return flooredMod(a.Turns, 1)
}

// RadiansCanonical returns the angle reduced into [0, 2π).
func (a Angle) RadiansCanonical() float64 {
	return flooredMod(a.Radians(), 2*math.Pi)
}

// DegreesCanonical returns the angle reduced into [0, 360).
func (a Angle) DegreesCanonical() float64 {
	return flooredMod(a.Degrees(), 360)
}

// Canonical returns the angle reduced into a single turn.
func (a Angle) Canonical() Angle {
	return Angle{Turns: a.TurnsCanonical()}
}

// Complex returns the point on the unit circle at this angle,
// cos(θ) + i·sin(θ).
func (a Angle) Complex() complex128 {
	rad := a.Radians()
	return complex(math.Cos(rad), math.Sin(rad))
}

// Add returns the sum of two angles.
func (a Angle) Add(b Angle) Angle {
	return Angle{Turns: a.Turns + b.Turns}
}

// Scale returns the angle multiplied by a scalar.
func (a Angle) Scale(k float64) Angle {
	return Angle{Turns: a.Turns * k}
}

// String renders the angle in degrees to two decimal places.
func (a Angle) String() string {
	return fmt.Sprintf("%.2f°", a.Degrees())
}

// flooredMod computes the floored modulo, matching the mathematical
// convention where the result always has the sign of the divisor.
// math.Mod alone truncates toward zero and would leave negatives.
func flooredMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
