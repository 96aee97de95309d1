package postprocess

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-bbox/bbox"
)

// detectionStride is the per-row layout of a decoded output tensor:
// x1, y1, x2, y2, score, class.
const detectionStride = 6

// FromTensor decodes a model output tensor of shape [N, 6] into detections.
// Each row is (x1, y1, x2, y2, score, class) in pixel coordinates of the
// given image size.
//
// Rows below scoreThreshold are skipped. Every surviving box runs through
// the combined validator, so NaN boxes, inverted boxes, and boxes outside
// the image are dropped rather than propagated; the clamped box is what
// lands in the detection.
//
// Arguments:
// - t: The output tensor, float32, shape [N, 6].
// - size: The image dimensions the coordinates refer to.
// - scoreThreshold: Minimum confidence to keep a row.
// - labels: Class names indexed by class id; may be nil or short, in which
//   case Label is left empty.
//
// Returns:
// - The decoded detections, or an error for a tensor of the wrong dtype or
//   shape.
//
// @example
// dense := tensor.New(tensor.WithShape(n, 6), tensor.WithBacking(raw))
// detections, err := postprocess.FromTensor(dense, size, 0.5, labels)
func FromTensor(t *tensor.Dense, size bbox.Size, scoreThreshold float32, labels []string) ([]Detection, error) {
	if t == nil {
		return nil, errors.New("output tensor is nil")
	}
	if t.Dtype() != tensor.Float32 {
		return nil, errors.Errorf("output tensor must be float32, got %v", t.Dtype())
	}
	shape := t.Shape()
	if len(shape) != 2 || shape[1] != detectionStride {
		return nil, errors.Errorf("output tensor must have shape [N, %d], got %v", detectionStride, shape)
	}

	data, ok := t.Data().([]float32)
	if !ok {
		return nil, errors.Errorf("unexpected backing type %T for float32 tensor", t.Data())
	}

	rows := shape[0]
	detections := make([]Detection, 0, rows)
	for i := 0; i < rows; i++ {
		row := data[i*detectionStride : (i+1)*detectionStride]
		score := row[4]
		if score < scoreThreshold {
			continue
		}

		box, err := bbox.FromSlice(row[:4])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		res := bbox.ValidateAndClamp(box, size)
		if !res.Valid {
			continue
		}

		class := int(row[5])
		det := Detection{
			Box:   *res.Clamped,
			Score: score,
			Class: class,
		}
		if class >= 0 && class < len(labels) {
			det.Label = labels[class]
		}
		detections = append(detections, det)
	}
	return detections, nil
}
