package bbox

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures diagnostics emitted during clamping.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// TestClamp verifies projection into image bounds.
//
// @example
// go test -v -run TestClamp
func TestClamp(t *testing.T) {
	size := Size{Width: 100, Height: 100}

	tests := []struct {
		name    string
		box     Box
		want    Box
		dropped bool
	}{
		{
			name: "negative origin clamped to zero",
			box:  New(-10, -10, 50, 50),
			want: New(0, 0, 50, 50),
		},
		{
			name: "overhang clamped to image edge",
			box:  New(50, 50, 150, 150),
			want: New(50, 50, 100, 100),
		},
		{
			name: "box already inside is untouched",
			box:  New(10, 20, 30, 40),
			want: New(10, 20, 30, 40),
		},
		{
			name:    "box entirely past the image collapses",
			box:     New(200, 200, 300, 300),
			dropped: true,
		},
		{
			name:    "box entirely before the image collapses",
			box:     New(-50, -50, -10, -10),
			dropped: true,
		},
		{
			name:    "sliver thinner than the minimum size",
			box:     New(10, 10, 10.5, 50),
			dropped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClampToImage(tt.box, size)
			if tt.dropped {
				assert.False(t, ok, "collapsed boxes are dropped")
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got,
				"clamped coordinates should match")
		})
	}
}

// TestClampStaysInBounds checks that whenever a box survives clamping, its
// coordinates are inside [0, W] x [0, H].
func TestClampStaysInBounds(t *testing.T) {
	size := Size{Width: 64, Height: 48}
	boxes := []Box{
		New(-100, -100, 200, 200),
		New(-5, 10, 70, 40),
		New(0, 0, 64, 48),
		New(63, 47, 200, 200),
		New(0.25, 0.75, 63.5, 47.5),
	}

	for _, b := range boxes {
		got, ok := ClampToImage(b, size)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, got.X1, float32(0), "x1 in bounds for %s", b)
		assert.GreaterOrEqual(t, got.Y1, float32(0), "y1 in bounds for %s", b)
		assert.LessOrEqual(t, got.X2, float32(size.Width), "x2 in bounds for %s", b)
		assert.LessOrEqual(t, got.Y2, float32(size.Height), "y2 in bounds for %s", b)
	}
}

// TestClampForceMin verifies the substitute-a-minimal-box mode.
func TestClampForceMin(t *testing.T) {
	size := Size{Width: 100, Height: 100}
	c := Clamper{MinSize: 2, ForceMin: true}

	t.Run("collapsed box becomes a minimal box", func(t *testing.T) {
		got, ok := c.Clamp(New(10, 10, 10.5, 50), size)
		require.True(t, ok, "ForceMin never drops a box")
		assert.Equal(t, New(10, 10, 12, 12), got,
			"both dimensions snap to MinSize anchored at the clamped origin")
	})

	t.Run("far corner may exceed the image near the border", func(t *testing.T) {
		// The forced box is deliberately not re-clamped.
		got, ok := c.Clamp(New(200, 200, 300, 300), size)
		require.True(t, ok)
		assert.Equal(t, New(100, 100, 102, 102), got)
		assert.Greater(t, got.X2, float32(size.Width),
			"documented behavior: the substituted box can stick out")
	})
}

// TestClampLogger verifies the diagnostic line for dropped boxes.
func TestClampLogger(t *testing.T) {
	logger := &recordingLogger{}
	c := Clamper{Logger: logger}
	size := Size{Width: 100, Height: 100}

	_, ok := c.Clamp(New(200, 200, 300, 300), size)
	assert.False(t, ok)
	require.Len(t, logger.lines, 1, "exactly one diagnostic per dropped box")
	assert.Contains(t, logger.lines[0], "dropping box")

	logger.lines = nil
	_, ok = c.Clamp(New(10, 10, 50, 50), size)
	assert.True(t, ok)
	assert.Empty(t, logger.lines, "surviving boxes log nothing")
}

// TestClampRect verifies the integer-space variant.
func TestClampRect(t *testing.T) {
	size := Size{Width: 100, Height: 100}

	got, ok := Clamper{}.ClampRect(image.Rect(-10, -10, 50, 50), size)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 50, 50), got,
		"integer boxes stay integer through clamping")

	_, ok = Clamper{}.ClampRect(image.Rect(200, 200, 300, 300), size)
	assert.False(t, ok, "fully outside rectangles are dropped")
}
