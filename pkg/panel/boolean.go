package panel

import (
	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// BooleanController is a checkbox.
type BooleanController struct {
	base
}

func newBooleanController(parent *GUI, b *binding.Binding) *BooleanController {
	c := &BooleanController{}
	c.init(c, parent, b, widget.KindBoolean)
	c.on(widget.EventChange, func(ev widget.Event) {
		c.SetValue(ev.Checked)
		c.callOnFinishChange()
	})
	c.UpdateDisplay()
	return c
}

// SetValue writes v coerced to a bool: numbers are true when non-zero and
// strings are parsed by strconv.ParseBool.
func (c *BooleanController) SetValue(v any) Controller {
	c.setValue(toBool(v))
	return c
}

func (c *BooleanController) UpdateDisplay() Controller {
	checked, _ := c.Value().(bool)
	c.el.SetChecked(checked)
	return c
}
