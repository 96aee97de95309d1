package images

import (
	"image/color"
	"image/draw"

	"github.com/nvr-ai/go-bbox/bbox"
)

// DrawBox paints a one-pixel rectangle outline onto img for debug overlays.
// The box is clamped to the image; boxes entirely outside draw nothing.
//
// Arguments:
// - img: The destination image, modified in place.
// - b: The box to outline, in pixel coordinates of img.
// - c: The outline color.
//
// @example
// images.DrawBox(frame, detection.Box, color.RGBA{255, 0, 0, 255})
func DrawBox(img draw.Image, b bbox.Box, c color.Color) {
	bounds := img.Bounds()
	size := bbox.Size{Width: bounds.Dx(), Height: bounds.Dy()}

	clamped, ok := bbox.ClampToImage(b, size)
	if !ok {
		return
	}
	rect := clamped.ToRect().Add(bounds.Min)

	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.Set(x, rect.Min.Y, c)
		img.Set(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.Set(rect.Min.X, y, c)
		img.Set(rect.Max.X-1, y, c)
	}
}
