package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	noMin = math.Inf(-1)
	noMax = math.Inf(1)
)

func TestImplicitStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max float64
		value    float64
		integer  bool
		want     float64
	}{
		{name: "bounded range", min: 0, max: 10, value: 5, want: 0.01},
		{name: "bounded negative range", min: -1, max: 1, value: 0, want: 0.002},
		{name: "unbounded uses magnitude", min: noMin, max: noMax, value: 250, want: 0.1},
		{name: "unbounded small value", min: noMin, max: noMax, value: 0.05, want: 0.00001},
		{name: "half bounded uses magnitude", min: 0, max: noMax, value: 7, want: 0.001},
		{name: "zero falls back to one", min: noMin, max: noMax, value: 0, want: 1},
		{name: "integer never below one", min: 0, max: 10, value: 3, integer: true, want: 1},
		{name: "integer large range", min: 0, max: 100000, value: 3, integer: true, want: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ImplicitStep(tt.min, tt.max, tt.value, tt.integer), 1e-12)
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 1e9, Clamp(1e9, 0, noMax))
	assert.Equal(t, -1e9, Clamp(-1e9, noMin, 10))
	assert.Equal(t, 10.0, Clamp(1e9, noMin, 10))
}

func TestSnap(t *testing.T) {
	t.Parallel()

	t.Run("relative to zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.3, Snap(0.31, 0.1, noMin))
		assert.Equal(t, 12.0, Snap(12.4, 1, noMin))
		assert.Equal(t, -2.5, Snap(-2.4, 0.5, noMin))
	})

	t.Run("relative to min", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.5, Snap(1.6, 1, 0.5))
		assert.Equal(t, 0.05, Snap(0.02, 0.1, 0.05))
	})

	t.Run("repeated increments do not drift", func(t *testing.T) {
		t.Parallel()
		v := 0.0
		for i := 0; i < 1000; i++ {
			v = Snap(v+0.1, 0.1, noMin)
		}
		assert.Equal(t, 100.0, v)
	})

	t.Run("steps below the default precision", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 4e-13, Snap(4e-13, 1e-13, noMin))
		assert.Equal(t, 4e-13, Snap(4.3e-13, 1e-13, noMin))
		assert.Equal(t, 1.5e-20, Snap(1.52e-20, 1e-21, 0))

		step := ImplicitStep(math.Inf(-1), math.Inf(1), 3e-12, false)
		snapped := Snap(3.1004e-12, step, noMin)
		assert.NotZero(t, snapped)
		assert.InDelta(t, 3.1e-12, snapped, 2e-15)
	})

	t.Run("non-positive step is ignored", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.234, Snap(1.234, 0, noMin))
	})
}

func TestSnapIsIdempotent(t *testing.T) {
	t.Parallel()

	steps := []float64{1, 0.1, 0.01, 0.25, 1.0 / 3, 7, 0.001}
	mins := []float64{noMin, 0, 0.05, -3}
	for _, step := range steps {
		for _, m := range mins {
			for v := -10.0; v <= 10; v += 0.37 {
				once := Snap(v, step, m)
				require.Equal(t, once, Snap(once, step, m), "step=%v min=%v v=%v", step, m, v)
			}
		}
	}
}

func TestWheelTicks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, WheelTicks(0, -120))
	assert.Equal(t, 1, WheelTicks(0, -0.5))
	assert.Equal(t, -1, WheelTicks(0, 3))
	assert.Equal(t, 1, WheelTicks(4, 0))
	assert.Equal(t, 0, WheelTicks(0, 0))
}

func TestArrowMultiplier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, ArrowMultiplier(true, false, false))
	assert.Equal(t, 10.0, ArrowMultiplier(true, true, false))
	assert.Equal(t, 0.1, ArrowMultiplier(true, false, true))
	assert.Equal(t, 10.0, ArrowMultiplier(false, false, false))
	assert.Equal(t, 100.0, ArrowMultiplier(false, true, false))
}

func TestRangeHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, MapRange(0.5, 0, 10))
	assert.Equal(t, -1.0, MapRange(0, -1, 1))
	assert.Equal(t, 0.25, FillRatio(2.5, 0, 10))
	assert.Equal(t, 1.0, FillRatio(20, 0, 10))
	assert.Equal(t, 0.0, FillRatio(5, 0, noMax))
}

func TestFormatAndParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10", Format(10, -1))
	assert.Equal(t, "0.125", Format(0.125, -1))
	assert.Equal(t, "3.14", Format(3.14159, 2))

	v, ok := Parse(" 12.5 ")
	require.True(t, ok)
	assert.Equal(t, 12.5, v)

	for _, bad := range []string{"", "abc", "12px", "NaN", "Inf"} {
		_, ok := Parse(bad)
		assert.False(t, ok, bad)
	}
}
