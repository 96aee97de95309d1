package bbox

import (
	"image"

	"github.com/chewxy/math32"
)

// DefaultMinSize is the minimum width/height a clamped box must retain, in
// pixels.
const DefaultMinSize float32 = 1.0

// Clamper projects boxes into image bounds.
type Clamper struct {
	// MinSize is the smallest width/height a clamped box may have before it
	// is considered empty. Zero means DefaultMinSize.
	MinSize float32
	// ForceMin substitutes a MinSize x MinSize box anchored at the clamped
	// top-left corner instead of dropping boxes that collapse. The forced
	// box is not re-clamped, so its far corner can exceed the image when the
	// anchor sits near the border.
	ForceMin bool
	// Logger receives one diagnostic line per dropped box. Nil disables it.
	Logger Logger
}

func (c Clamper) minSize() float32 {
	if c.MinSize > 0 {
		return c.MinSize
	}
	return DefaultMinSize
}

// Clamp projects each coordinate of b into [0, size.Width] x
// [0, size.Height].
//
// Arguments:
// - b: The box to clamp.
// - size: The image dimensions to clamp against.
//
// Returns:
// - The clamped box and true, or a zero Box and false when the clamped box
//   collapses below MinSize and ForceMin is unset.
//
// @example
// c := bbox.Clamper{}
// box, ok := c.Clamp(bbox.New(-10, -10, 50, 50), bbox.Size{Width: 100, Height: 100})
// // box is (0, 0)-(50, 50), ok is true
func (c Clamper) Clamp(b Box, size Size) (Box, bool) {
	w := float32(size.Width)
	h := float32(size.Height)

	clamped := Box{
		X1: clamp(b.X1, 0, w),
		Y1: clamp(b.Y1, 0, h),
		X2: clamp(b.X2, 0, w),
		Y2: clamp(b.Y2, 0, h),
	}

	min := c.minSize()
	if clamped.Width() < min || clamped.Height() < min {
		if !c.ForceMin {
			if c.Logger != nil {
				c.Logger.Printf("bbox: dropping box %s: collapsed below %.1fpx after clamping to %dx%d",
					b, min, size.Width, size.Height)
			}
			return Box{}, false
		}
		clamped.X2 = clamped.X1 + min
		clamped.Y2 = clamped.Y1 + min
	}
	return clamped, true
}

// ClampRect is the integer variant of Clamp for callers working in
// image.Rectangle space. Coordinates in, coordinates out are whole pixels.
func (c Clamper) ClampRect(r image.Rectangle, size Size) (image.Rectangle, bool) {
	clamped, ok := c.Clamp(FromRect(r), size)
	if !ok {
		return image.Rectangle{}, false
	}
	return clamped.ToRect(), true
}

// ClampToImage clamps b into the image bounds with default settings: a one
// pixel minimum size, collapsed boxes dropped, no diagnostics.
func ClampToImage(b Box, size Size) (Box, bool) {
	return Clamper{}.Clamp(b, size)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
