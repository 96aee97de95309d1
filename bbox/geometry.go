package bbox

import (
	"github.com/chewxy/math32"
)

// Area returns the box area. Inverted or degenerate boxes yield 0, never a
// negative value.
func (b Box) Area() float32 {
	return math32.Max(0, b.Width()) * math32.Max(0, b.Height())
}

// Intersection returns the overlap area between the two boxes, 0 when they
// are disjoint or merely edge-touching.
func (b Box) Intersection(o Box) float32 {
	ix1 := math32.Max(b.X1, o.X1)
	iy1 := math32.Max(b.Y1, o.Y1)
	ix2 := math32.Min(b.X2, o.X2)
	iy2 := math32.Min(b.Y2, o.Y2)
	if ix2 <= ix1 || iy2 <= iy1 {
		return 0
	}
	return (ix2 - ix1) * (iy2 - iy1)
}

// Union returns the combined area of the two boxes, counting the overlap
// once.
func (b Box) Union(o Box) float32 {
	return b.Area() + o.Area() - b.Intersection(o)
}

// IoU computes the Intersection over Union of two boxes.
//
// The result is in [0, 1]: 0 for disjoint boxes, 1 for identical ones. This
// is the overlap metric used to decide whether two detections describe the
// same object.
//
// Arguments:
// - a, b: The boxes to compare. Order does not matter.
//
// Returns:
// - The IoU score. Degenerate intersections and non-positive unions both
//   yield 0.
//
// @example
// iou := bbox.IoU(bbox.New(0, 0, 10, 10), bbox.New(5, 5, 15, 15))
// // intersection 5x5=25, union 100+100-25=175, iou ~= 0.142857
func IoU(a, b Box) float32 {
	inter := a.Intersection(b)
	if inter <= 0 {
		return 0
	}
	union := a.Area() + b.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}
