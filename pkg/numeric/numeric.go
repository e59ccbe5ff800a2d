// Package numeric holds the stateless math behind number controllers: step
// inference, clamping, snapping and the conversion of wheel, keyboard and
// pointer input into value deltas.
//
// Unbounded sides are expressed with infinities: a missing minimum is
// math.Inf(-1) and a missing maximum is math.Inf(1).
package numeric

import (
	"math"
	"strconv"
	"strings"
)

const (
	// SliderResolution is the number of implicit steps across a bounded range.
	SliderResolution = 1000

	// DragThreshold is the distance in pixels a pointer must travel before a
	// drag on a text field picks an axis.
	DragThreshold = 5

	// maxSnapDecimals bounds the rounding of snapped values for steps of
	// ordinary magnitude. Smaller steps widen it to their own precision.
	maxSnapDecimals = 12

	// snapGuardDigits are kept below the leading digit of step.
	snapGuardDigits = 3
)

// Unbounded reports whether v imposes no limit.
func Unbounded(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}

// Bounded reports whether both min and max are finite.
func Bounded(min, max float64) bool {
	return !Unbounded(min) && !Unbounded(max)
}

// ImplicitStep infers a step when none was set explicitly. A bounded range is
// divided into SliderResolution steps. Otherwise the step is derived from the
// magnitude of value, falling back to 1 for zero. Integer properties never
// step below 1.
func ImplicitStep(min, max, value float64, integer bool) float64 {
	var step float64
	switch {
	case Bounded(min, max) && max > min:
		step = (max - min) / SliderResolution
	case value != 0 && !Unbounded(value):
		step = math.Pow(10, math.Floor(math.Log10(math.Abs(value)))) / SliderResolution
	default:
		step = 1
	}
	if integer {
		step = math.Max(1, math.Round(step))
	}
	return step
}

// Clamp limits v to the finite bounds.
func Clamp(v, min, max float64) float64 {
	if !Unbounded(max) && v > max {
		v = max
	}
	if !Unbounded(min) && v < min {
		v = min
	}
	return v
}

// Snap rounds v to the nearest multiple of step, counted from min when min is
// finite and from zero otherwise. The result is rounded to the decimal
// precision of step so repeated increments do not drift.
func Snap(v, step, min float64) float64 {
	if step <= 0 || Unbounded(step) || math.IsNaN(v) {
		return v
	}
	offset := 0.0
	if !Unbounded(min) {
		offset = min
	}
	n := math.Round((v - offset) / step)
	snapped := offset + n*step
	scale := math.Pow(10, float64(snapDecimals(step, offset)))
	// Past 2^53 the scaled value has no fractional digits left to round.
	if scaled := snapped * scale; math.Abs(scaled) < 1<<53 {
		return math.Round(scaled) / scale
	}
	return snapped
}

// snapDecimals is the number of decimals written in step and offset, capped
// at the larger of maxSnapDecimals and the precision step itself needs.
func snapDecimals(step, offset float64) int {
	d := 0
	for _, v := range []float64{step, offset} {
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if i := strings.IndexByte(text, '.'); i >= 0 {
			d = max(d, len(text)-i-1)
		}
	}
	limit := max(maxSnapDecimals, snapGuardDigits-int(math.Floor(math.Log10(step))))
	return min(d, limit)
}

// WheelTicks reduces a wheel event to a single signed tick. Scrolling up or
// right yields +1; magnitude is ignored so every device moves one step.
func WheelTicks(deltaX, deltaY float64) int {
	wheel := deltaX - deltaY
	switch {
	case wheel > 0:
		return 1
	case wheel < 0:
		return -1
	default:
		return 0
	}
}

// ArrowMultiplier scales a keyboard or drag delta. Implicit steps are fine
// grained so they move ten at a time; shift is coarser, alt finer.
func ArrowMultiplier(explicit, shift, alt bool) float64 {
	m := 10.0
	if explicit {
		m = 1
	}
	if shift {
		m *= 10
	} else if alt {
		m /= 10
	}
	return m
}

// MapRange maps a ratio in [0,1] onto [min,max].
func MapRange(ratio, min, max float64) float64 {
	return min + ratio*(max-min)
}

// FillRatio is the slider fill for v, clamped to [0,1].
func FillRatio(v, min, max float64) float64 {
	if !Bounded(min, max) || max == min {
		return 0
	}
	return math.Max(0, math.Min(1, (v-min)/(max-min)))
}

// Format renders v for display. A negative decimals value prints the
// shortest exact representation.
func Format(v float64, decimals int) string {
	if decimals < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Parse reads typed text as a finite number.
func Parse(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
