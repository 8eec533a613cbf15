package phyllotaxis

import (
	"math"
	"strings"
	"testing"

	"github.com/podratz/leonardo/geometry"
	"github.com/podratz/leonardo/internal/canvas"
	"github.com/podratz/leonardo/metals"
)

func TestPlaceSeedCount(t *testing.T) {
	m := metals.Unit(metals.Golden)

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"typical", 100, 100},
		{"single", 1, 1},
		{"none", 0, 0},
		{"negative clamps", -5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Place(m, tc.count, 1, geometry.Zero())
			if len(l.Seeds) != tc.want {
				t.Errorf("Place() produced %d seeds, expected %d", len(l.Seeds), tc.want)
			}
		})
	}
}

func TestPlaceRadialGrowth(t *testing.T) {
	m := metals.Unit(metals.Golden)
	l := Place(m, 50, 2, geometry.Zero())

	// Radii follow spacing·√k exactly and are monotonically increasing.
	for _, seed := range l.Seeds {
		want := 2 * math.Sqrt(float64(seed.Index))
		if math.Abs(seed.R-want) > 1e-9 {
			t.Errorf("seed %d radius = %v, expected %v", seed.Index, seed.R, want)
		}
	}
	if got := l.Radius(); math.Abs(got-2*math.Sqrt(49)) > 1e-9 {
		t.Errorf("Radius() = %v, expected %v", got, 2*math.Sqrt(49))
	}
}

func TestPlaceAnglesFollowMetal(t *testing.T) {
	m := metals.Unit(metals.Golden)
	l := Place(m, 10, 1, geometry.Zero())

	angles := m.Angles()
	for _, seed := range l.Seeds {
		want := angles.At(seed.Index)
		if math.Abs(seed.Theta.Turns-want.Turns) > 1e-9 {
			t.Errorf("seed %d angle = %v, expected %v", seed.Index, seed.Theta, want)
		}
		// Cartesian position matches the polar pair.
		if math.Abs(seed.X-seed.R*math.Cos(want.Radians())) > 1e-9 {
			t.Errorf("seed %d X inconsistent with polar form", seed.Index)
		}
	}
}

func TestPlacePhaseShift(t *testing.T) {
	m := metals.Unit(metals.Golden)
	base := Place(m, 5, 1, geometry.Zero())
	shifted := Place(m, 5, 1, geometry.FromDegrees(90))

	for i := range base.Seeds {
		diff := shifted.Seeds[i].Theta.Degrees() - base.Seeds[i].Theta.Degrees()
		if math.Abs(diff-90) > 1e-9 {
			t.Errorf("seed %d phase shift = %v°, expected 90°", i, diff)
		}
	}
}

func TestPlaceDeterminism(t *testing.T) {
	m := metals.New(metals.Silver, 2)
	a := Place(m, 30, 1.5, geometry.Zero())
	b := Place(m, 30, 1.5, geometry.Zero())

	for i := range a.Seeds {
		if a.Seeds[i] != b.Seeds[i] {
			t.Fatalf("seed %d differs between identical placements", i)
		}
	}
}

func TestDraw(t *testing.T) {
	m := metals.Unit(metals.Golden)
	l := Place(m, 60, 1, geometry.Zero())

	c := canvas.New(60, 30)
	Draw(c, l, []rune{'•'})

	if !strings.ContainsRune(c.String(), '•') {
		t.Error("Draw() left the canvas empty")
	}
}

func TestDrawRectangles(t *testing.T) {
	m := metals.Unit(metals.Golden)
	c := canvas.New(60, 20)

	DrawRectangles(c, m, 3)

	out := c.String()
	if !strings.ContainsRune(out, '┌') || !strings.ContainsRune(out, '┘') {
		t.Error("DrawRectangles() drew no box outlines")
	}

	// Zero magnitude draws nothing.
	empty := canvas.New(60, 20)
	DrawRectangles(empty, metals.New(metals.Golden, 0), 3)
	if strings.ContainsRune(empty.String(), '┌') {
		t.Error("DrawRectangles() drew boxes for a zero metal")
	}
}
