package panel

import (
	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// FunctionController is a button that calls a function property. A click
// fires OnChange and OnFinishChange after the call. It is never persisted.
type FunctionController struct {
	base
}

func newFunctionController(parent *GUI, b *binding.Binding) *FunctionController {
	c := &FunctionController{}
	c.init(c, parent, b, widget.KindFunction)
	c.on(widget.EventClick, func(widget.Event) {
		c.Call()
	})
	return c
}

// Call invokes the function as a click would. An error returned by the
// function is logged.
func (c *FunctionController) Call() Controller {
	if err := c.bind.Call(); err != nil {
		c.log.Warn().Err(err).Msg("function property failed")
	}
	c.callOnChange()
	c.callOnFinishChange()
	return c
}

// Reset does nothing: a function has no state to restore.
func (c *FunctionController) Reset() Controller { return c }

func (c *FunctionController) Save() (any, bool) { return nil, false }

func (c *FunctionController) Load(any) Controller { return c }
