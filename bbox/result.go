package bbox

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Result is the outcome of ValidateAndClamp. It is a pure snapshot: built
// fresh on every call and never mutated afterwards.
type Result struct {
	// Valid reports whether a usable box came out of the call.
	Valid bool
	// Clamped is the box projected into the image, nil when Valid is false.
	Clamped *Box
	// Original is the box as it was passed in.
	Original Box
	// Warnings lists every non-fatal and fatal observation, in the order the
	// checks ran.
	Warnings []string
	// WasClamped is set when any coordinate had to be moved.
	WasClamped bool
	// EmptyAfterClamp is set when the box had no usable area inside the
	// image.
	EmptyAfterClamp bool
}

// ValidateAndClamp checks b against the image and clamps it, folding every
// failure mode into the returned Result instead of an error. Batch callers
// can keep going past individual bad boxes without control-flow
// interruptions.
//
// The decision procedure, in order:
//  1. Non-finite coordinates invalidate the box outright.
//  2. Inverted or degenerate boxes (x2 <= x1 or y2 <= y1) invalidate it.
//  3. Coordinates that merely stick out of the image add a warning each and
//     mark the result as clamped.
//  4. Boxes completely outside the image are invalid and empty; no clamping
//     is attempted.
//  5. Otherwise the box is clamped; a box that collapses below MinSize is
//     invalid and empty.
//
// Arguments:
// - b: The box to check and clamp.
// - size: The image dimensions.
//
// Returns:
// - A Result describing what happened. Never fails.
//
// @example
// res := bbox.Clamper{}.ValidateAndClamp(bbox.New(-5, -5, 50, 50), bbox.Size{Width: 100, Height: 100})
// // res.Valid, res.WasClamped are true; *res.Clamped is (0, 0)-(50, 50)
func (c Clamper) ValidateAndClamp(b Box, size Size) Result {
	res := Result{Original: b}

	for _, v := range [4]float32{b.X1, b.Y1, b.X2, b.Y2} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("box %s has non-finite coordinates", b))
			return res
		}
	}

	if b.X2 <= b.X1 || b.Y2 <= b.Y1 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("box %s is inverted or degenerate (width %.2f, height %.2f)",
				b, b.Width(), b.Height()))
		return res
	}

	w := float32(size.Width)
	h := float32(size.Height)

	if b.X1 < 0 || b.Y1 < 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("box %s has negative origin, clamping to image", b))
		res.WasClamped = true
	}
	if b.X2 > w || b.Y2 > h {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("box %s extends past image %dx%d, clamping", b, size.Width, size.Height))
		res.WasClamped = true
	}

	if b.X1 >= w || b.Y1 >= h || b.X2 <= 0 || b.Y2 <= 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("box %s lies completely outside image %dx%d", b, size.Width, size.Height))
		res.WasClamped = true
		res.EmptyAfterClamp = true
		return res
	}

	clamper := Clamper{MinSize: c.MinSize, Logger: c.Logger}
	clamped, ok := clamper.Clamp(b, size)
	if !ok {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("box %s collapsed below %.1fpx after clamping", b, clamper.minSize()))
		res.EmptyAfterClamp = true
		return res
	}

	res.Valid = true
	res.Clamped = &clamped
	return res
}

// ValidateAndClamp is the package-level variant using default Clamper
// settings.
func ValidateAndClamp(b Box, size Size) Result {
	return Clamper{}.ValidateAndClamp(b, size)
}
