package shapes

import (
	"errors"
	"math"
	"testing"
)

func TestNewRectangle(t *testing.T) {
	r := NewRectangle(10, 20)

	if r.Width != 10 {
		t.Errorf("Width = %v, expected 10", r.Width)
	}
	if r.Height != 20 {
		t.Errorf("Height = %v, expected 20", r.Height)
	}
}

func TestRectangleEquality(t *testing.T) {
	a := NewRectangle(10, 20)
	b := NewRectangle(10, 20)
	c := NewRectangle(20, 10)

	if a != b {
		t.Error("rectangles with identical dimensions should be equal")
	}
	if a == c {
		t.Error("rectangles with swapped dimensions should not be equal")
	}
}

func TestRectangleAspectRatio(t *testing.T) {
	r := NewRectangle(16.180339887, 10)
	if got := r.AspectRatio(); math.Abs(got-1.6180339887) > 1e-9 {
		t.Errorf("AspectRatio() = %v, expected 1.6180339887", got)
	}
}

func TestRectangleStringParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rect Rectangle
	}{
		{"integers", NewRectangle(10, 20)},
		{"fractional", NewRectangle(1.6180339887498949, 1)},
		{"zero", NewRectangle(0, 0)},
		{"negative", NewRectangle(-3.5, 7)},
		{"tiny", NewRectangle(1e-12, 2e12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			restored, err := Parse(tc.rect.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.rect.String(), err)
			}
			if restored != tc.rect {
				t.Errorf("round trip = %v, expected %v", restored, tc.rect)
			}
		})
	}
}

func TestRectangleString(t *testing.T) {
	if got := NewRectangle(10, 20).String(); got != "Rectangle(10, 20)" {
		t.Errorf("String() = %q, expected %q", got, "Rectangle(10, 20)")
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"Rectangle",
		"Rectangle()",
		"Rectangle(10)",
		"Rectangle(10, 20, 30)",
		"Rectangle(ten, twenty)",
		"Square(10, 20)",
		"Rectangle(10, 20",
	}

	for _, in := range inputs {
		if _, err := Parse(in); !errors.Is(err, ErrBadRectangle) {
			t.Errorf("Parse(%q) error = %v, expected ErrBadRectangle", in, err)
		}
	}
}
