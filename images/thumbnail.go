package images

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail downscales img to fit within maxWidth x maxHeight, preserving
// the aspect ratio. Images already inside the bounds are returned as-is;
// nothing is ever upscaled.
//
// Arguments:
// - img: The source image.
// - maxWidth, maxHeight: The bounding dimensions in pixels.
//
// Returns:
// - The resized image.
//
// @example
// thumb := images.Thumbnail(crop, 128, 128)
func Thumbnail(img image.Image, maxWidth, maxHeight uint) image.Image {
	return resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)
}
