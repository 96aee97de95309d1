package bbox

import (
	"github.com/chewxy/math32"
)

// IsValid reports whether the box satisfies the bounding-box invariants:
// finite coordinates, strictly positive width and height, and, unless
// allowNegative is set, no negative coordinates.
//
// This is the non-failing counterpart of Validate: IsValid(b, n) is true if
// and only if Validate(b, n) returns nil.
//
// Arguments:
// - b: The box to check.
// - allowNegative: Whether negative coordinates are acceptable.
//
// Returns:
// - true when the box is well-formed.
//
// @example
// ok := bbox.IsValid(bbox.New(10, 10, 50, 50), false) // true
// ok = bbox.IsValid(bbox.New(50, 10, 10, 50), false)  // false, inverted
func IsValid(b Box, allowNegative bool) bool {
	for _, v := range [4]float32{b.X1, b.Y1, b.X2, b.Y2} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	if b.X2 <= b.X1 || b.Y2 <= b.Y1 {
		return false
	}
	if !allowNegative {
		if b.X1 < 0 || b.Y1 < 0 || b.X2 < 0 || b.Y2 < 0 {
			return false
		}
	}
	return true
}

// Validate checks the bounding-box invariants and returns a ValidationError
// naming the first violated condition. Checks run in a fixed order:
// non-finite values, zero/negative width, zero/negative height, negative
// coordinates.
//
// Arguments:
// - b: The box to validate.
// - allowNegative: Whether negative coordinates are acceptable.
//
// Returns:
// - nil on success, a *ValidationError of KindInvalid otherwise.
func Validate(b Box, allowNegative bool) error {
	for _, v := range [4]float32{b.X1, b.Y1, b.X2, b.Y2} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return errInvalid(b, "coordinates must be finite")
		}
	}
	if b.X2 <= b.X1 {
		return errInvalid(b, "zero or negative width (x2 %.2f <= x1 %.2f)", b.X2, b.X1)
	}
	if b.Y2 <= b.Y1 {
		return errInvalid(b, "zero or negative height (y2 %.2f <= y1 %.2f)", b.Y2, b.Y1)
	}
	if !allowNegative {
		// The pairs are checked separately so the surfaced message names the
		// corner that actually went negative.
		if b.X1 < 0 || b.Y1 < 0 {
			return errInvalid(b, "negative coordinates (x1 %.2f, y1 %.2f)", b.X1, b.Y1)
		}
		if b.X2 < 0 || b.Y2 < 0 {
			return errInvalid(b, "negative coordinates (x2 %.2f, y2 %.2f)", b.X2, b.Y2)
		}
	}
	return nil
}

// ValidateInBounds validates the box and additionally enforces strict image
// bounds: any coordinate outside [0, size.Width] x [0, size.Height] is a
// hard failure rather than something to clamp away.
//
// Arguments:
// - b: The box to validate.
// - size: The image dimensions the box must fit inside.
// - allowNegative: Whether negative coordinates pass the shape checks. Note
//   that strict bounds still reject them afterwards.
//
// Returns:
// - nil on success. A *ValidationError of KindInvalid for shape failures, or
//   of KindOutOfBounds (carrying size) when the box exceeds the image.
//
// @example
// err := bbox.ValidateInBounds(bbox.New(10, 10, 150, 50), bbox.Size{Width: 100, Height: 100}, false)
// // err is a KindOutOfBounds ValidationError: x2 exceeds the image width.
func ValidateInBounds(b Box, size Size, allowNegative bool) error {
	if err := Validate(b, allowNegative); err != nil {
		return err
	}
	w := float32(size.Width)
	h := float32(size.Height)
	if b.X1 < 0 || b.Y1 < 0 || b.X2 > w || b.Y2 > h {
		return errOutOfBounds(b, size, "box exceeds image bounds %dx%d", size.Width, size.Height)
	}
	return nil
}
