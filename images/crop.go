// Package images - Image helpers for annotated boxes: cropping, thumbnails,
// and debug overlays. Decoding is the caller's problem; everything here
// operates on already-decoded image.Image values.
package images

import (
	"image"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-bbox/bbox"
)

// subImager is implemented by the stdlib image types that support cheap
// cropping.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop extracts the region of img covered by the box. The box is clamped to
// the image first, so detections hanging over an edge crop to the visible
// part.
//
// Arguments:
// - img: The source image.
// - b: The region to extract, in pixel coordinates of img.
//
// Returns:
// - The cropped image, or an error when the box has no usable area inside
//   the image.
//
// @example
// crop, err := images.Crop(frame, detection.Box)
func Crop(img image.Image, b bbox.Box) (image.Image, error) {
	bounds := img.Bounds()
	size := bbox.Size{Width: bounds.Dx(), Height: bounds.Dy()}

	res := bbox.ValidateAndClamp(b, size)
	if !res.Valid {
		return nil, errors.Errorf("cannot crop box %s from %dx%d image: %s",
			b, size.Width, size.Height, res.Warnings[len(res.Warnings)-1])
	}

	rect := res.Clamped.ToRect().Add(bounds.Min)
	if si, ok := img.(subImager); ok {
		return si.SubImage(rect), nil
	}

	// Fallback for exotic image types without SubImage.
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			out.Set(x, y, img.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return out, nil
}
