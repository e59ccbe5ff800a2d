package panel

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// Option is a named choice. Use []Option when display names differ from
// values and order matters.
type Option struct {
	Name  string
	Value any
}

// OptionController is a dropdown over a fixed set of values.
//
// Slices and arrays use each element as both name and value. Maps use keys
// as names, sorted, and entries as values.
type OptionController struct {
	base
	names  []string
	values []any
}

func newOptionController(parent *GUI, b *binding.Binding, options any) (*OptionController, error) {
	names, values, err := parseOptions(options)
	if err != nil {
		return nil, tperrors.NewBindingError(b.Property(), err)
	}
	c := &OptionController{names: names, values: values}
	c.init(c, parent, b, widget.KindOption)
	c.el.SetOptions(names)
	c.on(widget.EventChange, func(ev widget.Event) {
		if ev.Index < 0 || ev.Index >= len(c.values) {
			return
		}
		c.SetValue(c.values[ev.Index])
		c.callOnFinishChange()
	})
	c.UpdateDisplay()
	return c, nil
}

// Options replaces the option set in place.
func (c *OptionController) Options(options any) Controller {
	names, values, err := parseOptions(options)
	if err != nil {
		c.log.Warn().Err(err).Msg("options rejected")
		return c
	}
	c.names, c.values = names, values
	c.el.SetOptions(names)
	c.UpdateDisplay()
	return c
}

// SetValue writes v. A value equal to an option, numerically or otherwise,
// is stored as that option's value.
func (c *OptionController) SetValue(v any) Controller {
	if i := c.indexOf(v); i >= 0 {
		v = c.values[i]
	}
	c.setValue(v)
	return c
}

func (c *OptionController) UpdateDisplay() Controller {
	value := c.Value()
	i := c.indexOf(value)
	c.el.SetSelected(i)
	if i >= 0 {
		c.el.SetText(widget.PartDisplay, c.names[i])
	} else {
		c.el.SetText(widget.PartDisplay, fmt.Sprint(value))
	}
	return c
}

// Names returns the display names in order.
func (c *OptionController) Names() []string { return append([]string(nil), c.names...) }

// Values returns the option values in order.
func (c *OptionController) Values() []any { return append([]any(nil), c.values...) }

// Selected returns the index of the current value, or -1 when it matches no
// option.
func (c *OptionController) Selected() int { return c.indexOf(c.Value()) }

func (c *OptionController) indexOf(v any) int {
	for i, candidate := range c.values {
		if looseEqual(candidate, v) {
			return i
		}
	}
	return -1
}

func parseOptions(options any) ([]string, []any, error) {
	if list, ok := options.([]Option); ok {
		names := make([]string, len(list))
		values := make([]any, len(list))
		for i, o := range list {
			names[i], values[i] = o.Name, o.Value
		}
		return names, values, nil
	}

	rv := reflect.ValueOf(options)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		names := make([]string, rv.Len())
		values := make([]any, rv.Len())
		for i := range names {
			values[i] = rv.Index(i).Interface()
			names[i] = fmt.Sprint(values[i])
		}
		return names, values, nil
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		names := make([]string, len(keys))
		values := make([]any, len(keys))
		for i, k := range keys {
			names[i] = fmt.Sprint(k.Interface())
			values[i] = rv.MapIndex(k).Interface()
		}
		return names, values, nil
	}
	return nil, nil, fmt.Errorf("%w: options must be a slice, array, map or []Option, got %T", tperrors.ErrUnsupportedType, options)
}
