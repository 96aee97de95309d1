package bbox

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateAndClamp walks the combined validator through every branch of
// its decision procedure.
//
// @example
// go test -v -run TestValidateAndClamp
func TestValidateAndClamp(t *testing.T) {
	size := Size{Width: 100, Height: 100}

	t.Run("negative origin is clamped with a warning", func(t *testing.T) {
		res := ValidateAndClamp(New(-5, -5, 50, 50), size)

		assert.True(t, res.Valid)
		assert.True(t, res.WasClamped)
		assert.False(t, res.EmptyAfterClamp)
		require.NotNil(t, res.Clamped)
		assert.Equal(t, New(0, 0, 50, 50), *res.Clamped)
		assert.Equal(t, New(-5, -5, 50, 50), res.Original,
			"the original box is preserved untouched")
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("clean box passes with no warnings", func(t *testing.T) {
		res := ValidateAndClamp(New(10, 10, 50, 50), size)

		assert.True(t, res.Valid)
		assert.False(t, res.WasClamped)
		require.NotNil(t, res.Clamped)
		assert.Equal(t, New(10, 10, 50, 50), *res.Clamped)
		assert.Empty(t, res.Warnings)
	})

	t.Run("non-finite coordinates invalidate outright", func(t *testing.T) {
		res := ValidateAndClamp(New(math32.NaN(), 10, 50, 50), size)

		assert.False(t, res.Valid)
		assert.Nil(t, res.Clamped)
		assert.False(t, res.WasClamped)
		assert.False(t, res.EmptyAfterClamp)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "non-finite")
	})

	t.Run("inverted box reports its dimensions", func(t *testing.T) {
		res := ValidateAndClamp(New(50, 10, 10, 50), size)

		assert.False(t, res.Valid)
		assert.Nil(t, res.Clamped)
		assert.False(t, res.WasClamped)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "width -40.00",
			"the warning names the computed width")
	})

	t.Run("negative origin and overhang warn independently", func(t *testing.T) {
		res := ValidateAndClamp(New(-5, -5, 150, 150), size)

		assert.True(t, res.Valid)
		assert.True(t, res.WasClamped)
		require.NotNil(t, res.Clamped)
		assert.Equal(t, New(0, 0, 100, 100), *res.Clamped)
		assert.Len(t, res.Warnings, 2,
			"each out-of-range side contributes its own warning, in order")
	})

	t.Run("completely outside short-circuits before clamping", func(t *testing.T) {
		res := ValidateAndClamp(New(200, 200, 300, 300), size)

		assert.False(t, res.Valid)
		assert.Nil(t, res.Clamped)
		assert.True(t, res.WasClamped)
		assert.True(t, res.EmptyAfterClamp)
		assert.Contains(t, res.Warnings[len(res.Warnings)-1], "completely outside")
	})

	t.Run("box entirely left of the image", func(t *testing.T) {
		res := ValidateAndClamp(New(-50, 10, -10, 50), size)

		assert.False(t, res.Valid)
		assert.True(t, res.EmptyAfterClamp)
	})

	t.Run("sliver collapses during clamping", func(t *testing.T) {
		// Inside the image but thinner than the minimum size.
		res := ValidateAndClamp(New(10, 10, 10.5, 50), size)

		assert.False(t, res.Valid)
		assert.Nil(t, res.Clamped)
		assert.True(t, res.EmptyAfterClamp)
		assert.False(t, res.WasClamped,
			"nothing was moved, the box was simply too small")
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "collapsed")
	})

	t.Run("custom minimum size is honored", func(t *testing.T) {
		c := Clamper{MinSize: 10}
		res := c.ValidateAndClamp(New(10, 10, 15, 50), size)

		assert.False(t, res.Valid, "a 5px wide box is below the 10px minimum")
		assert.True(t, res.EmptyAfterClamp)
	})
}

// TestValidateAndClampNeverPanics sanity-checks the no-failure contract over
// awkward inputs.
func TestValidateAndClampNeverPanics(t *testing.T) {
	size := Size{Width: 100, Height: 100}
	boxes := []Box{
		{},
		New(math32.Inf(1), math32.Inf(-1), math32.NaN(), 0),
		New(-1e30, -1e30, 1e30, 1e30),
		New(100, 100, 100, 100),
		New(0, 0, 100, 100),
	}

	for _, b := range boxes {
		assert.NotPanics(t, func() {
			res := ValidateAndClamp(b, size)
			assert.Equal(t, b, res.Original)
		}, "box %s", b)
	}
}
