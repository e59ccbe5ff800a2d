package panel

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/frame"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// Controller binds one property of a host object to a row of its panel.
// Setters return the controller so calls can be chained; setters that do not
// apply to a variant, such as Min on a boolean, do nothing.
type Controller interface {
	Node

	Parent() *GUI
	Object() any
	Property() string

	Name() string
	SetName(name string) Controller

	// Value reads the live property.
	Value() any
	// SetValue writes v, fires OnChange up the tree and refreshes the
	// display. It fires even when v equals the current value.
	SetValue(v any) Controller
	// InitialValue is the value captured when the controller was added.
	InitialValue() any
	// UpdateDisplay redraws the element from the live value.
	UpdateDisplay() Controller

	OnChange(fn ChangeFunc) Controller
	OnFinishChange(fn ChangeFunc) Controller

	// Reset restores the initial value and completes the change.
	Reset() Controller

	Enable(enabled bool) Controller
	Disable(disabled bool) Controller
	Disabled() bool
	Show(show bool) Controller
	Hide() Controller
	Hidden() bool

	// Options replaces this controller with an option controller over the
	// same property and returns the replacement.
	Options(options any) Controller
	Min(v float64) Controller
	Max(v float64) Controller
	Step(v float64) Controller
	Decimals(n int) Controller

	// Listen polls the property once per frame and redraws when it changed
	// outside the panel.
	Listen(enable bool) Controller
	Listening() bool

	// Save returns the persisted form of the value. ok is false for
	// controllers that are not persisted.
	Save() (v any, ok bool)
	// Load applies a persisted value and completes the change.
	Load(v any) Controller

	Destroyed() bool

	core() *base
}

// base carries the state shared by every controller variant. self is the
// embedding variant so overridden methods dispatch correctly.
type base struct {
	self   Controller
	parent *GUI
	bind   *binding.Binding

	name    string
	initial any

	disabled bool
	hidden   bool
	changed  bool

	listening   bool
	listenID    frame.ID
	listenArmed bool
	listenPrev  any

	onChange       ChangeFunc
	onFinishChange ChangeFunc

	el       widget.Element
	unlisten []func()
	log      zerolog.Logger

	destroyed bool
}

func (b *base) init(self Controller, parent *GUI, bind *binding.Binding, kind widget.Kind) {
	b.self = self
	b.parent = parent
	b.bind = bind
	b.name = bind.Property()
	b.initial = bind.Get()
	b.el = parent.backend.NewControl(parent.el, kind, b.name)
	b.log = parent.log.With().Str("property", b.name).Str("kind", string(kind)).Logger()
}

func (b *base) core() *base { return b }

// on registers h for events of type t. Events are ignored while the
// controller is disabled.
func (b *base) on(t widget.EventType, h widget.Handler) {
	b.unlisten = append(b.unlisten, b.el.Listen(t, func(ev widget.Event) {
		if b.disabled || b.destroyed {
			return
		}
		h(ev)
	}))
}

func (b *base) Parent() *GUI     { return b.parent }
func (b *base) Object() any      { return b.bind.Object() }
func (b *base) Property() string { return b.bind.Property() }
func (b *base) Name() string     { return b.name }

func (b *base) SetName(name string) Controller {
	b.name = name
	b.el.SetText(widget.PartName, name)
	return b.self
}

func (b *base) Value() any        { return b.bind.Get() }
func (b *base) InitialValue() any { return b.initial }

func (b *base) SetValue(v any) Controller {
	b.setValue(v)
	return b.self
}

func (b *base) setValue(v any) {
	if err := b.bind.Set(v); err != nil {
		b.log.Warn().Err(err).Interface("value", v).Msg("value rejected")
		return
	}
	b.callOnChange()
	b.self.UpdateDisplay()
}

func (b *base) UpdateDisplay() Controller { return b.self }

func (b *base) OnChange(fn ChangeFunc) Controller {
	b.onChange = fn
	return b.self
}

func (b *base) OnFinishChange(fn ChangeFunc) Controller {
	b.onFinishChange = fn
	return b.self
}

func (b *base) event() ChangeEvent {
	return ChangeEvent{
		Object:     b.bind.Object(),
		Property:   b.bind.Property(),
		Value:      b.self.Value(),
		Controller: b.self,
	}
}

func (b *base) callOnChange() {
	b.changed = true
	ev := b.event()
	if b.onChange != nil {
		b.onChange(ev)
	}
	if b.parent != nil {
		b.parent.callOnChange(ev)
	}
}

// callOnFinishChange completes an interaction. Nothing fires unless a change
// happened since the previous completion.
func (b *base) callOnFinishChange() {
	if !b.changed {
		return
	}
	b.changed = false
	ev := b.event()
	if b.onFinishChange != nil {
		b.onFinishChange(ev)
	}
	if b.parent != nil {
		b.parent.callOnFinishChange(ev)
	}
}

func (b *base) Reset() Controller {
	b.self.SetValue(b.initial)
	b.callOnFinishChange()
	return b.self
}

func (b *base) Enable(enabled bool) Controller {
	return b.self.Disable(!enabled)
}

func (b *base) Disable(disabled bool) Controller {
	if b.disabled == disabled {
		return b.self
	}
	b.disabled = disabled
	b.el.SetDisabled(disabled)
	return b.self
}

func (b *base) Disabled() bool { return b.disabled }

func (b *base) Show(show bool) Controller {
	b.hidden = !show
	b.el.SetHidden(b.hidden)
	return b.self
}

func (b *base) Hide() Controller { return b.self.Show(false) }
func (b *base) Hidden() bool     { return b.hidden }

func (b *base) Options(options any) Controller {
	if b.destroyed || b.parent == nil {
		return b.self
	}
	if !isOptionSet(options) {
		b.log.Warn().Interface("options", options).Msg("not an option set")
		return b.self
	}
	replacement, err := newOptionController(b.parent, b.bind, options)
	if err != nil {
		b.log.Warn().Err(err).Msg("cannot replace controller with options")
		return b.self
	}
	b.parent.adopt(replacement)
	replacement.SetName(b.name)
	b.self.Destroy()
	b.log.Debug().Msg("controller replaced by option controller")
	return replacement
}

func (b *base) Min(float64) Controller  { return b.self }
func (b *base) Max(float64) Controller  { return b.self }
func (b *base) Step(float64) Controller { return b.self }
func (b *base) Decimals(int) Controller { return b.self }

func (b *base) Listen(enable bool) Controller {
	b.listening = enable
	if b.listenArmed {
		b.parent.frames.Cancel(b.listenID)
		b.listenArmed = false
	}
	b.el.SetClass(widget.ClassListening, enable)
	if enable && !b.destroyed {
		b.listenPrev, _ = b.self.Save()
		b.listenCallback()
	}
	return b.self
}

func (b *base) Listening() bool { return b.listening }

// listenCallback re-arms itself for the next frame and redraws when the
// persisted form of the value changed since the previous frame.
func (b *base) listenCallback() {
	b.listenID = b.parent.frames.Request(b.listenCallback)
	b.listenArmed = true

	current, _ := b.self.Save()
	if !reflect.DeepEqual(current, b.listenPrev) {
		b.self.UpdateDisplay()
	}
	b.listenPrev = current
}

func (b *base) Save() (any, bool) { return b.self.Value(), true }

func (b *base) Load(v any) Controller {
	b.self.SetValue(v)
	b.callOnFinishChange()
	return b.self
}

// Destroy stops listening, detaches the element and removes the controller
// from its parent. Later calls do nothing.
func (b *base) Destroy() {
	if b.destroyed {
		return
	}
	b.Listen(false)
	b.destroyed = true
	for _, off := range b.unlisten {
		off()
	}
	b.unlisten = nil
	if b.parent != nil {
		b.parent.removeChild(b.self)
	}
	b.el.Remove()
	b.onChange, b.onFinishChange = nil, nil
}

func (b *base) Destroyed() bool         { return b.destroyed }
func (b *base) Element() widget.Element { return b.el }
