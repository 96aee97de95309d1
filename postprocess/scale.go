package postprocess

import (
	"github.com/nvr-ai/go-bbox/bbox"
)

// ScaleToOriginal maps detection boxes from one coordinate space to another
// using linear scaling, typically from model-input space back to the
// original image.
//
// Arguments:
// - detections: Detections in `from` space; the input slice is not
//   modified.
// - from: The space the boxes currently live in (e.g. 640x640).
// - to: The target space (e.g. the original 1920x1080 frame).
//
// Returns:
// - Detections with rescaled boxes. A degenerate `from` size returns the
//   input unchanged.
func ScaleToOriginal(detections []Detection, from, to bbox.Size) []Detection {
	if from.Width == 0 || from.Height == 0 {
		return detections
	}
	sx := float32(to.Width) / float32(from.Width)
	sy := float32(to.Height) / float32(from.Height)

	out := make([]Detection, len(detections))
	for i, d := range detections {
		d.Box = bbox.Box{
			X1: d.Box.X1 * sx,
			Y1: d.Box.Y1 * sy,
			X2: d.Box.X2 * sx,
			Y2: d.Box.Y2 * sy,
		}
		out[i] = d
	}
	return out
}

// UndoLetterbox maps detections from letterboxed model-input space back to
// the original image: padding is subtracted, the uniform scale is undone,
// and the result is clamped into the original image. Detections that end up
// without usable area inside the image are dropped.
//
// Arguments:
// - detections: Detections in letterboxed space.
// - scale: The uniform scale the preprocessor applied to the image.
// - padLeft, padTop: The letterbox padding in input-space pixels.
// - orig: The original image dimensions.
//
// Returns:
// - Detections in original-image coordinates.
func UndoLetterbox(detections []Detection, scale float32, padLeft, padTop int, orig bbox.Size) []Detection {
	if scale == 0 {
		return detections
	}
	out := make([]Detection, 0, len(detections))
	for _, d := range detections {
		mapped := bbox.Box{
			X1: (d.Box.X1 - float32(padLeft)) / scale,
			Y1: (d.Box.Y1 - float32(padTop)) / scale,
			X2: (d.Box.X2 - float32(padLeft)) / scale,
			Y2: (d.Box.Y2 - float32(padTop)) / scale,
		}
		res := bbox.ValidateAndClamp(mapped, orig)
		if !res.Valid {
			continue
		}
		d.Box = *res.Clamped
		out = append(out, d)
	}
	return out
}
