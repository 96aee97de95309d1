// Package postprocess - Detection post-processing on top of the bbox core:
// output-tensor decoding, Non-Maximum Suppression, and coordinate mapping
// back to the original image.
package postprocess

import (
	"fmt"
	"sort"

	"github.com/nvr-ai/go-bbox/bbox"
)

// Detection represents a single detection result.
type Detection struct {
	// The bounding box of the detection, in pixel coordinates.
	Box bbox.Box
	// The confidence score of the detection.
	Score float32
	// The predicted class index of the detection.
	Class int
	// Label is the human-readable class name, empty when unknown.
	Label string
}

func (d Detection) String() string {
	label := d.Label
	if label == "" {
		label = fmt.Sprintf("class %d", d.Class)
	}
	return fmt.Sprintf("%s (score %.3f) %s", label, d.Score, d.Box)
}

// SortByScore orders detections by descending confidence in place.
func SortByScore(detections []Detection) {
	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Score > detections[j].Score
	})
}
