package postprocess

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/nvr-ai/go-bbox/bbox"
)

// NMSConfig defines parameters for Non-Maximum Suppression.
type NMSConfig struct {
	// IoUThreshold is the overlap above which a lower-scored box is
	// suppressed.
	IoUThreshold float32
	// ClassAware limits suppression to detections of the same class.
	ClassAware bool
	// ScoreThreshold drops detections below this confidence before
	// suppression runs. Zero keeps everything.
	ScoreThreshold float32
}

// ApplyNMS filters overlapping detections using greedy Non-Maximum
// Suppression.
//
// Arguments:
// - detections: Candidate detections in any order; they are sorted by
//   descending score first. The input slice is not modified.
// - config: Suppression parameters.
//
// Returns:
// - The surviving detections, highest score first. Nil when none survive.
//
// @example
// kept := postprocess.ApplyNMS(detections, postprocess.NMSConfig{IoUThreshold: 0.5})
func ApplyNMS(detections []Detection, config NMSConfig) []Detection {
	n := len(detections)
	if n == 0 {
		return nil
	}

	sorted := make([]Detection, 0, n)
	for _, d := range detections {
		if d.Score >= config.ScoreThreshold {
			sorted = append(sorted, d)
		}
	}
	SortByScore(sorted)

	filtered := make([]Detection, 0, len(sorted))
	used := make([]bool, len(sorted))

	for i := range sorted {
		if used[i] {
			continue
		}

		anchor := sorted[i]
		filtered = append(filtered, anchor)
		used[i] = true

		for j := i + 1; j < len(sorted); j++ {
			if used[j] {
				continue
			}
			if config.ClassAware && anchor.Class != sorted[j].Class {
				continue
			}
			if bbox.IoU(anchor.Box, sorted[j].Box) > config.IoUThreshold {
				used[j] = true
			}
		}
	}

	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

// SoftNMS applies Soft-NMS: overlapping boxes have their scores decayed
// rather than being removed outright. The method can be "linear" or
// "gaussian" (case-insensitive); anything else falls back to hard
// suppression. Detections whose decayed score drops below scoreThreshold are
// discarded.
//
// Arguments:
// - detections: Candidate detections; the input slice is not modified.
// - method: Decay method, "linear" or "gaussian".
// - iouThreshold: Overlap at which decay (or hard suppression) kicks in.
// - sigma: Gaussian decay width; values <= 0 default to 0.5.
// - scoreThreshold: Final score cutoff.
//
// Returns:
// - Surviving detections sorted by descending score.
func SoftNMS(detections []Detection, method string, iouThreshold, sigma, scoreThreshold float32) []Detection {
	n := len(detections)
	if n == 0 {
		return nil
	}

	work := make([]Detection, n)
	copy(work, detections)
	SortByScore(work)

	for i := 0; i < len(work); i++ {
		// Resort the tail so work[i] is the best remaining candidate.
		if i > 0 {
			SortByScore(work[i:])
		}
		for j := i + 1; j < len(work); j++ {
			iou := bbox.IoU(work[i].Box, work[j].Box)
			if iou <= 0 {
				continue
			}
			work[j].Score *= softNMSWeight(iou, iouThreshold, sigma, method)
		}
	}

	out := make([]Detection, 0, len(work))
	for _, d := range work {
		if d.Score >= scoreThreshold {
			out = append(out, d)
		}
	}
	SortByScore(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func softNMSWeight(iou, iouThreshold, sigma float32, method string) float32 {
	switch strings.ToLower(method) {
	case "linear":
		if iou > iouThreshold {
			return 1 - iou
		}
		return 1
	case "gaussian":
		if sigma <= 0 {
			sigma = 0.5
		}
		return math32.Exp(-(iou * iou) / sigma)
	default:
		if iou > iouThreshold {
			return 0
		}
		return 1
	}
}
