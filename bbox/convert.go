package bbox

// ToPixels converts a box with normalized [0,1] coordinates into pixel
// space, truncating each coordinate to a whole pixel.
//
// Arguments:
// - b: The box in normalized coordinates.
// - size: The target image dimensions.
//
// Returns:
// - The box in pixel coordinates, each value truncated towards zero.
//
// @example
// px := bbox.ToPixels(bbox.New(0.1, 0.1, 0.5, 0.5), bbox.Size{Width: 100, Height: 200})
// // px is (10, 20)-(50, 100)
func ToPixels(b Box, size Size) Box {
	w := float32(size.Width)
	h := float32(size.Height)
	return Box{
		X1: float32(int(b.X1 * w)),
		Y1: float32(int(b.Y1 * h)),
		X2: float32(int(b.X2 * w)),
		Y2: float32(int(b.Y2 * h)),
	}
}

// ToNormalized converts a box in pixel coordinates into normalized [0,1]
// coordinates. Together with ToPixels it round-trips within one pixel per
// coordinate; the pixel truncation is the only loss.
func ToNormalized(b Box, size Size) Box {
	w := float32(size.Width)
	h := float32(size.Height)
	return Box{
		X1: b.X1 / w,
		Y1: b.Y1 / h,
		X2: b.X2 / w,
		Y2: b.Y2 / h,
	}
}
