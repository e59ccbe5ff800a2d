package panel

import (
	"fmt"

	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// StringController is a single-line text field. Typing does not write the
// property; the text is committed on blur or Enter and Escape discards it.
type StringController struct {
	base
	pending *string
}

func newStringController(parent *GUI, b *binding.Binding) *StringController {
	c := &StringController{}
	c.init(c, parent, b, widget.KindString)

	c.on(widget.EventInput, func(ev widget.Event) {
		text := ev.Text
		c.pending = &text
	})
	c.on(widget.EventKeyDown, func(ev widget.Event) {
		switch ev.Key {
		case widget.KeyEnter:
			c.finishEdit()
		case widget.KeyEscape:
			c.pending = nil
			c.finishEdit()
		}
	})
	c.on(widget.EventBlur, func(widget.Event) {
		c.commit()
	})

	c.UpdateDisplay()
	return c
}

// finishEdit blurs a focused field, which commits through the blur handler,
// and commits directly otherwise.
func (c *StringController) finishEdit() {
	if c.el.Focused() {
		c.el.Blur()
		return
	}
	c.commit()
}

func (c *StringController) commit() {
	if c.pending != nil {
		text := *c.pending
		c.pending = nil
		c.SetValue(text)
	}
	c.UpdateDisplay()
	c.callOnFinishChange()
}

// SetValue writes the string form of v.
func (c *StringController) SetValue(v any) Controller {
	if s, ok := v.(string); ok {
		c.setValue(s)
	} else {
		c.setValue(fmt.Sprint(v))
	}
	return c
}

func (c *StringController) UpdateDisplay() Controller {
	c.el.SetText(widget.PartValue, fmt.Sprint(c.Value()))
	return c
}
