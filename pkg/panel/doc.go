// Package panel builds live tweaking panels over the fields of host objects.
//
// A GUI is a titled container of controllers and nested folders. Each
// controller binds one property of a host object, renders it through a
// widget.Backend, writes edits back into the object and reports them through
// change callbacks:
//
//	gui, _ := panel.New(panel.DefaultOptions())
//	gui.Add(&scene, "Speed", 0, 10)
//	gui.Add(&scene, "Mode", []string{"fast", "slow"})
//	gui.AddColor(&scene, "Tint")
//	gui.OnChange(func(ev panel.ChangeEvent) { render() })
//
// Every write, from the API or from input, fires OnChange on the controller
// and then on each enclosing container up to the root. OnFinishChange fires
// once per completed interaction (blur, pointer release, picked option) and
// only when something changed since the previous finish.
//
// A panel is not safe for concurrent use. Drive it from the goroutine that
// owns the render loop, which also calls frame.Scheduler.Tick once per frame
// to refresh listening controllers.
package panel
