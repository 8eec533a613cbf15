// Package shapes provides plain geometric value types derived from
// metallic numbers.
package shapes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadRectangle is returned by Parse for input that does not match the
// textual form produced by Rectangle.String.
var ErrBadRectangle = errors.New("shapes: malformed rectangle literal")

// Rectangle is a width/height pair. No invariant is enforced: zero and
// negative dimensions are representable. Compare with ==.
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle creates a rectangle with the given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// AspectRatio returns width divided by height. For a metallic rectangle
// this is the defining ratio of its variant.
func (r Rectangle) AspectRatio() float64 {
	return r.Width / r.Height
}

// String renders the rectangle as "Rectangle(w, h)". The output round-trips
// through Parse to an equal value.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%s, %s)",
		formatDimension(r.Width), formatDimension(r.Height))
}

// Parse restores a rectangle from the form produced by String.
func Parse(s string) (Rectangle, error) {
	body, ok := strings.CutPrefix(s, "Rectangle(")
	if !ok {
		return Rectangle{}, ErrBadRectangle
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return Rectangle{}, ErrBadRectangle
	}

	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Rectangle{}, ErrBadRectangle
	}

	width, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Rectangle{}, fmt.Errorf("%w: %v", ErrBadRectangle, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Rectangle{}, fmt.Errorf("%w: %v", ErrBadRectangle, err)
	}

	return Rectangle{Width: width, Height: height}, nil
}

// formatDimension prints the shortest decimal that parses back to the
// exact same float64, so the String/Parse round trip is lossless.
func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
