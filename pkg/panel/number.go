package panel

import (
	"math"

	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/numeric"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

type dragAxis int

const (
	axisNone dragAxis = iota
	axisHorizontal
	axisVertical
)

type dragState struct {
	active  bool
	slider  bool
	axis    dragAxis
	initial float64
	delta   float64
	moveX   float64
	moveY   float64
}

// NumberController edits a numeric property through a text field and, when
// both bounds are finite, a slider.
//
// Every interactive edit is snapped to the step and clamped to the bounds
// before it is written. SetValue only clamps.
type NumberController struct {
	base

	min, max     float64
	step         float64
	stepExplicit bool
	decimals     int
	integer      bool
	hasSlider    bool

	inputFocused bool
	pending      *string
	drag         dragState
}

func newNumberController(parent *GUI, b *binding.Binding, nb numberBounds) *NumberController {
	c := &NumberController{
		min:      nb.min,
		max:      nb.max,
		decimals: -1,
		integer:  b.IsInteger(),
	}
	c.init(c, parent, b, widget.KindNumber)

	c.on(widget.EventFocus, c.onFocus)
	c.on(widget.EventInput, c.onInput)
	c.on(widget.EventKeyDown, c.onKeyDown)
	c.on(widget.EventBlur, c.onBlur)
	c.on(widget.EventWheel, c.onWheel)
	c.on(widget.EventPointerDown, c.onPointerDown)
	c.on(widget.EventPointerMove, c.onPointerMove)
	c.on(widget.EventPointerUp, c.onPointerUp)

	if nb.stepGiven {
		c.step = nb.step
		c.stepExplicit = true
	}
	c.onUpdateMinMax()
	return c
}

// Min sets the lower bound. Infinite values remove it.
func (c *NumberController) Min(v float64) Controller {
	c.min = v
	c.onUpdateMinMax()
	return c
}

// Max sets the upper bound. Infinite values remove it.
func (c *NumberController) Max(v float64) Controller {
	c.max = v
	c.onUpdateMinMax()
	return c
}

// Step sets an explicit step. Non-positive values are ignored.
func (c *NumberController) Step(v float64) Controller {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return c
	}
	c.step = v
	c.stepExplicit = true
	c.UpdateDisplay()
	return c
}

// Decimals fixes the number of decimals shown. Negative values show the
// shortest exact form.
func (c *NumberController) Decimals(n int) Controller {
	c.decimals = n
	c.UpdateDisplay()
	return c
}

// Bounds returns the current bounds; missing bounds are infinite.
func (c *NumberController) Bounds() (min, max float64) { return c.min, c.max }

// StepSize returns the explicit or inferred step.
func (c *NumberController) StepSize() float64 { return c.step }

// StepExplicit reports whether the step was set by the caller.
func (c *NumberController) StepExplicit() bool { return c.stepExplicit }

// HasSlider reports whether both bounds are finite.
func (c *NumberController) HasSlider() bool { return c.hasSlider }

// Float returns the live value as float64.
func (c *NumberController) Float() float64 {
	f, _ := toFloat(c.Value())
	return f
}

func (c *NumberController) onUpdateMinMax() {
	if !c.stepExplicit {
		initial, _ := toFloat(c.initial)
		c.step = numeric.ImplicitStep(c.min, c.max, initial, c.integer)
	}
	c.hasSlider = numeric.Bounded(c.min, c.max)
	c.el.SetClass(widget.ClassSlider, c.hasSlider)
	c.UpdateDisplay()
}

// SetValue writes v clamped to the finite bounds. Values that are not
// numbers are rejected.
func (c *NumberController) SetValue(v any) Controller {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		c.log.Warn().Interface("value", v).Msg("value is not a number")
		return c
	}
	c.setValue(numeric.Clamp(f, c.min, c.max))
	return c
}

// Commit writes v the way interactive input does: snapped to the step, then
// clamped to the bounds.
func (c *NumberController) Commit(v float64) Controller {
	return c.SetValue(numeric.Clamp(numeric.Snap(v, c.step, c.min), c.min, c.max))
}

func (c *NumberController) UpdateDisplay() Controller {
	v := c.Float()
	if c.hasSlider {
		c.el.SetFill(numeric.FillRatio(v, c.min, c.max))
	}
	if !c.inputFocused {
		c.el.SetText(widget.PartValue, numeric.Format(v, c.decimals))
	}
	return c
}

func (c *NumberController) showText() {
	c.el.SetText(widget.PartValue, numeric.Format(c.Float(), c.decimals))
}

func (c *NumberController) onFocus(widget.Event) {
	c.inputFocused = true
	c.pending = nil
}

func (c *NumberController) onInput(ev widget.Event) {
	text := ev.Text
	c.pending = &text
}

func (c *NumberController) onKeyDown(ev widget.Event) {
	switch ev.Key {
	case widget.KeyEnter:
		c.finishEdit()
	case widget.KeyEscape:
		c.pending = nil
		c.finishEdit()
	case widget.KeyArrowUp, widget.KeyArrowDown:
		sign := 1.0
		if ev.Key == widget.KeyArrowDown {
			sign = -1
		}
		c.pending = nil
		c.Commit(c.Float() + sign*c.step*numeric.ArrowMultiplier(c.stepExplicit, ev.Shift, ev.Alt))
		if c.inputFocused {
			c.showText()
		} else {
			c.callOnFinishChange()
		}
	}
}

func (c *NumberController) finishEdit() {
	if c.el.Focused() {
		c.el.Blur()
		return
	}
	c.commitText()
	c.UpdateDisplay()
	c.callOnFinishChange()
}

func (c *NumberController) onBlur(widget.Event) {
	c.inputFocused = false
	c.commitText()
	c.UpdateDisplay()
	c.callOnFinishChange()
}

// commitText writes pending typed text. Text that is not a finite number is
// dropped and the display reverts.
func (c *NumberController) commitText() {
	if c.pending == nil {
		return
	}
	text := *c.pending
	c.pending = nil
	v, ok := numeric.Parse(text)
	if !ok {
		c.log.Debug().Str("text", text).Msg("typed value rejected")
		return
	}
	c.Commit(v)
}

func (c *NumberController) onWheel(ev widget.Event) {
	if !c.inputFocused && !c.hasSlider {
		return
	}
	ticks := numeric.WheelTicks(ev.DeltaX, ev.DeltaY)
	if ticks == 0 {
		return
	}
	c.Commit(c.Float() + float64(ticks)*c.step)
	if c.inputFocused {
		c.pending = nil
		c.showText()
		return
	}
	c.callOnFinishChange()
}

func (c *NumberController) onPointerDown(ev widget.Event) {
	if ev.Part == widget.PartValue {
		c.drag = dragState{active: true, initial: c.Float()}
		return
	}
	if !c.hasSlider {
		return
	}
	c.drag = dragState{active: true, slider: true, axis: axisHorizontal}
	c.setDragging(true)
	c.Commit(numeric.MapRange(clampRatio(ev.Ratio), c.min, c.max))
}

func (c *NumberController) onPointerMove(ev widget.Event) {
	if !c.drag.active {
		return
	}
	if c.drag.slider {
		c.Commit(numeric.MapRange(clampRatio(ev.Ratio), c.min, c.max))
		return
	}

	if c.drag.axis == axisNone {
		c.drag.moveX += ev.DX
		c.drag.moveY += ev.DY
		switch {
		case math.Abs(c.drag.moveY) > numeric.DragThreshold:
			c.drag.axis = axisVertical
			if c.el.Focused() {
				c.el.Blur()
			}
			c.setDragging(true)
		case math.Abs(c.drag.moveX) > numeric.DragThreshold:
			c.drag = dragState{}
			return
		default:
			return
		}
	}

	c.drag.delta -= ev.DY * c.step * numeric.ArrowMultiplier(c.stepExplicit, ev.Shift, ev.Alt)
	target := c.drag.initial + c.drag.delta
	if !numeric.Unbounded(c.max) && target > c.max {
		c.drag.delta = c.max - c.drag.initial
	} else if !numeric.Unbounded(c.min) && target < c.min {
		c.drag.delta = c.min - c.drag.initial
	}
	c.Commit(c.drag.initial + c.drag.delta)
}

func (c *NumberController) onPointerUp(widget.Event) {
	if !c.drag.active {
		return
	}
	moved := c.drag.slider || c.drag.axis == axisVertical
	c.drag = dragState{}
	c.setDragging(false)
	if moved {
		c.callOnFinishChange()
	}
}

func (c *NumberController) setDragging(on bool) {
	c.el.SetClass(widget.ClassActive, on)
	c.el.SetClass(widget.ClassDraggingX, on && c.drag.axis == axisHorizontal)
	c.el.SetClass(widget.ClassDraggingY, on && c.drag.axis == axisVertical)
}

func clampRatio(r float64) float64 {
	return math.Max(0, math.Min(1, r))
}
