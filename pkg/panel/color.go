package panel

import (
	"strings"

	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/colorfmt"
	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// ColorController edits a colour stored as a hex string, a packed integer,
// an object with r, g and b channels or an array of three channels. Channels
// of objects and arrays range over [0, rgbScale].
//
// Object and array colours held by reference (maps and slices) are updated in
// place; the property keeps pointing at the same value.
type ColorController struct {
	base
	format      colorfmt.Format
	rgbScale    float64
	initialHex  string
	textFocused bool
}

func newColorController(parent *GUI, b *binding.Binding, rgbScale float64) (*ColorController, error) {
	format, err := colorfmt.Detect(b.Get())
	if err != nil {
		return nil, tperrors.NewBindingError(b.Property(), tperrors.ErrUnsupportedType)
	}
	c := &ColorController{format: format, rgbScale: rgbScale}
	c.init(c, parent, b, widget.KindColor)
	c.initial = colorfmt.Clone(c.initial)
	c.initialHex, _ = format.ToHex(c.initial, rgbScale)

	c.on(widget.EventChange, func(ev widget.Event) {
		if hex, ok := colorfmt.Normalize(ev.Text); ok {
			c.setValueFromHex(hex)
		}
		c.callOnFinishChange()
	})
	c.on(widget.EventFocus, func(widget.Event) {
		c.textFocused = true
	})
	c.on(widget.EventInput, func(ev widget.Event) {
		if hex, ok := colorfmt.Normalize(ev.Text); ok {
			c.setValueFromHex(hex)
		}
	})
	c.on(widget.EventKeyDown, func(ev widget.Event) {
		if ev.Key != widget.KeyEnter {
			return
		}
		if c.el.Focused() {
			c.el.Blur()
			return
		}
		c.UpdateDisplay()
		c.callOnFinishChange()
	})
	c.on(widget.EventBlur, func(widget.Event) {
		c.textFocused = false
		c.UpdateDisplay()
		c.callOnFinishChange()
	})

	c.UpdateDisplay()
	return c, nil
}

// FormatName returns the detected representation: string, int, object or
// array.
func (c *ColorController) FormatName() string { return c.format.Name() }

// RGBScale returns the channel range of object and array colours.
func (c *ColorController) RGBScale() float64 { return c.rgbScale }

// Hex returns the current colour as "#rrggbb", or "" when the property no
// longer holds a colour.
func (c *ColorController) Hex() string {
	hex, _ := c.format.ToHex(c.Value(), c.rgbScale)
	return hex
}

// SetValue writes v. Strings are parsed as colours for every format, so
// SetValue("#ff0000") works on arrays and objects too.
func (c *ColorController) SetValue(v any) Controller {
	if s, ok := v.(string); ok && c.format.Name() != "string" {
		if hex, ok := colorfmt.Normalize(s); ok {
			c.setValueFromHex(hex)
		} else {
			c.log.Warn().Str("value", s).Msg("invalid colour")
		}
		return c
	}
	c.setValue(v)
	return c
}

func (c *ColorController) setValueFromHex(hex string) {
	v, err := c.format.FromHex(hex, c.Value(), c.rgbScale)
	if err != nil {
		c.log.Warn().Err(err).Msg("colour rejected")
		return
	}
	c.setValue(v)
}

// Reset restores the initial colour through hex, which rewrites channels in
// place without sharing storage with the captured initial value.
func (c *ColorController) Reset() Controller {
	if c.initialHex != "" {
		c.setValueFromHex(c.initialHex)
	}
	c.callOnFinishChange()
	return c
}

// Save returns the colour as "#rrggbb".
func (c *ColorController) Save() (any, bool) {
	hex := c.Hex()
	return hex, hex != ""
}

// Load applies a saved hex string. Anything else is ignored.
func (c *ColorController) Load(v any) Controller {
	s, ok := v.(string)
	if !ok {
		return c
	}
	hex, ok := colorfmt.Normalize(s)
	if !ok {
		return c
	}
	c.setValueFromHex(hex)
	c.callOnFinishChange()
	return c
}

func (c *ColorController) UpdateDisplay() Controller {
	hex := c.Hex()
	c.el.SetText(widget.PartDisplay, hex)
	if !c.textFocused {
		c.el.SetText(widget.PartValue, strings.TrimPrefix(hex, "#"))
	}
	return c
}
