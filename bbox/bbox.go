// Package bbox - Bounding-box geometry and validation for detection pipelines.
package bbox

import (
	"fmt"
	"image"
)

// Box represents an axis-aligned bounding box with (X1, Y1) as the top-left
// corner and (X2, Y2) as the bottom-right corner.
//
// A box is considered valid when all coordinates are finite and both the
// width (X2-X1) and height (Y2-Y1) are strictly positive. Negative
// coordinates are tolerated only where the caller opts in.
type Box struct {
	X1, Y1, X2, Y2 float32
}

// Size describes the pixel dimensions of the image a box is checked or
// clamped against. It is passed per call; nothing in this package holds on
// to it.
type Size struct {
	Width  int
	Height int
}

// New returns a box from its four corner coordinates.
func New(x1, y1, x2, y2 float32) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// FromSlice builds a box from a coordinate slice interpreted positionally as
// (x1, y1, x2, y2).
//
// Arguments:
// - coords: The coordinate values; must contain exactly four entries.
//
// Returns:
// - The box, or a ValidationError of KindInvalid when the slice cannot be
//   destructured into four values.
//
// @example
// box, err := bbox.FromSlice([]float32{10, 10, 50, 50})
func FromSlice(coords []float32) (Box, error) {
	if len(coords) != 4 {
		return Box{}, &ValidationError{
			Kind:    KindInvalid,
			Message: fmt.Sprintf("expected 4 coordinates, got %d (%v)", len(coords), coords),
		}
	}
	return Box{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
}

// FromRect converts an image.Rectangle into a Box.
func FromRect(r image.Rectangle) Box {
	r = r.Canon()
	return Box{
		X1: float32(r.Min.X),
		Y1: float32(r.Min.Y),
		X2: float32(r.Max.X),
		Y2: float32(r.Max.Y),
	}
}

// ToRect converts the box to an image.Rectangle, truncating coordinates to
// integers and canonicalizing the result.
func (b Box) ToRect() image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2)).Canon()
}

// Width returns X2-X1. Negative for inverted boxes.
func (b Box) Width() float32 {
	return b.X2 - b.X1
}

// Height returns Y2-Y1. Negative for inverted boxes.
func (b Box) Height() float32 {
	return b.Y2 - b.Y1
}

func (b Box) String() string {
	return fmt.Sprintf("(%.2f, %.2f)-(%.2f, %.2f)", b.X1, b.Y1, b.X2, b.Y2)
}

// Logger receives the diagnostic line emitted when a clamped box collapses
// below the minimum size. A *log.Logger satisfies it; a nil Logger silences
// the diagnostics.
type Logger interface {
	Printf(format string, args ...interface{})
}
