package panel

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tweakpanel/internal/binding"
	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/frame"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/snapshot"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// Node is a child of a GUI: a Controller or a folder.
type Node interface {
	Element() widget.Element
	Destroy()
}

// GUI is a panel or folder holding controllers and nested folders in
// insertion order.
type GUI struct {
	parent *GUI
	root   *GUI

	children []Node
	title    string
	closed   bool
	hidden   bool

	closeFolders bool

	onChange       ChangeFunc
	onFinishChange ChangeFunc
	onOpenClose    OpenCloseFunc

	el       widget.Element
	backend  widget.Backend
	frames   *frame.Scheduler
	log      zerolog.Logger
	unlisten []func()

	destroyed bool
}

// New creates a root panel, or a folder when opts.Parent is set.
func New(opts Options) (*GUI, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if opts.Parent == nil && opts.Title == "" {
		opts.Title = DefaultTitle
	}
	return newGUI(opts), nil
}

func newGUI(opts Options) *GUI {
	g := &GUI{
		title:        opts.Title,
		closeFolders: opts.CloseFolders,
	}

	var mountOn widget.Element
	if p := opts.Parent; p != nil {
		g.parent = p
		g.root = p.root
		g.backend = p.backend
		g.frames = p.frames
		g.log = p.log
		mountOn = p.el
	} else {
		g.root = g
		g.backend = opts.Backend
		if g.backend == nil {
			g.backend = widget.NewTree()
		}
		g.frames = opts.Frames
		if g.frames == nil {
			g.frames = frame.NewScheduler()
		}
		g.log = zerolog.Nop()
		if opts.Logger != nil {
			g.log = *opts.Logger
		}
		mountOn = opts.Container
	}

	g.el = g.backend.NewPanel(mountOn, g.title, widget.MountOptions{
		Width:        opts.Width,
		InjectStyles: opts.InjectStyles,
		TouchStyles:  opts.TouchStyles,
	})
	if g.parent == nil {
		g.el.SetClass(widget.ClassRoot, true)
		g.el.SetClass(widget.ClassAllowTouchStyles, opts.TouchStyles)
	}
	g.unlisten = append(g.unlisten, g.el.Listen(widget.EventClick, func(widget.Event) {
		if !g.destroyed {
			g.Open(g.closed)
		}
	}))

	if g.parent != nil {
		g.parent.children = append(g.parent.children, g)
	}
	return g
}

// Add binds object[property] and appends a controller chosen by the type of
// the current value. args are either an option set (slice, array, map or
// []Option) or, for numbers, min, max and step; nil skips a position.
func (g *GUI) Add(object any, property string, args ...any) (Controller, error) {
	b, err := binding.New(object, property)
	if err != nil {
		return nil, err
	}
	value := b.Get()
	if value == nil {
		return nil, tperrors.NewBindingError(property, tperrors.ErrNilValue)
	}

	var options any
	if len(args) > 0 && isOptionSet(args[0]) {
		options = args[0]
	}

	var c Controller
	kind := reflect.ValueOf(value).Kind()
	switch {
	case kind == reflect.Bool:
		c = newBooleanController(g, b)
	case kind == reflect.Func:
		c = newFunctionController(g, b)
	case options != nil:
		oc, err := newOptionController(g, b, options)
		if err != nil {
			return nil, err
		}
		c = oc
	case isNumber(value):
		c = newNumberController(g, b, numberArgs(args))
	case kind == reflect.String:
		c = newStringController(g, b)
	default:
		return nil, tperrors.NewBindingError(property, fmt.Errorf("%w: %T", tperrors.ErrUnsupportedType, value))
	}

	g.adopt(c)
	return c, nil
}

func (g *GUI) adopt(c Controller) {
	g.children = append(g.children, c)
	g.log.Debug().Str("panel", g.title).Str("property", c.Property()).Str("controller", fmt.Sprintf("%T", c)).Msg("controller added")
}

// AddColor binds a colour property. rgbScale sets the channel range of array
// and object colours and defaults to 1.
func (g *GUI) AddColor(object any, property string, rgbScale ...float64) (*ColorController, error) {
	b, err := binding.New(object, property)
	if err != nil {
		return nil, err
	}
	if b.Get() == nil {
		return nil, tperrors.NewBindingError(property, tperrors.ErrNilValue)
	}
	scale := 1.0
	if len(rgbScale) > 0 && rgbScale[0] > 0 {
		scale = rgbScale[0]
	}
	c, err := newColorController(g, b, scale)
	if err != nil {
		return nil, err
	}
	g.adopt(c)
	return c, nil
}

// AddFolder appends a nested container. It starts closed when the root was
// created with CloseFolders.
func (g *GUI) AddFolder(title string) *GUI {
	folder := newGUI(Options{Parent: g, Title: title})
	if g.root.closeFolders {
		folder.Close()
	}
	return folder
}

// Load applies snap to the direct controllers and, when recursive, to
// folders matched by title. Function controllers and unknown keys are
// skipped.
func (g *GUI) Load(snap snapshot.Snapshot, recursive bool) *GUI {
	matched := make(map[string]bool, len(snap.Controllers))
	for _, c := range g.Controllers() {
		if _, ok := c.(*FunctionController); ok {
			continue
		}
		if v, ok := snap.Controllers[c.Name()]; ok {
			matched[c.Name()] = true
			c.Load(v)
		}
	}
	for name := range snap.Controllers {
		if !matched[name] {
			g.log.Debug().Str("panel", g.title).Str("key", name).Msg("snapshot key has no controller")
		}
	}

	if recursive {
		for _, folder := range g.Folders() {
			if sub, ok := snap.Folders[folder.title]; ok {
				folder.Load(sub, true)
			}
		}
	}
	return g
}

// Save captures the persistable controller values by name and, when
// recursive, folders by title. Sibling controllers or folders sharing a name
// cannot be represented and fail with a PersistenceError.
func (g *GUI) Save(recursive bool) (snapshot.Snapshot, error) {
	snap := snapshot.New()
	for _, c := range g.Controllers() {
		v, ok := c.Save()
		if !ok {
			continue
		}
		if _, dup := snap.Controllers[c.Name()]; dup {
			return snapshot.Snapshot{}, tperrors.NewPersistenceError(c.Name(), fmt.Sprintf("duplicate controller name in %q", g.title))
		}
		snap.Controllers[c.Name()] = v
	}

	if recursive {
		for _, folder := range g.Folders() {
			if _, dup := snap.Folders[folder.title]; dup {
				return snapshot.Snapshot{}, tperrors.NewPersistenceError(folder.title, fmt.Sprintf("duplicate folder title in %q", g.title))
			}
			sub, err := folder.Save(true)
			if err != nil {
				return snapshot.Snapshot{}, err
			}
			snap.Folders[folder.title] = sub
		}
	}
	return snap, nil
}

// Open opens the container when open is true and closes it otherwise.
func (g *GUI) Open(open bool) *GUI {
	g.setClosed(!open)
	return g
}

// Close closes the container.
func (g *GUI) Close() *GUI {
	return g.Open(false)
}

func (g *GUI) setClosed(closed bool) {
	if g.closed == closed {
		return
	}
	g.closed = closed
	g.el.SetClass(widget.ClassClosed, closed)
	g.callOnOpenClose(g)
}

// Closed reports whether the container is closed.
func (g *GUI) Closed() bool { return g.closed }

// Show shows the container when show is true and hides it otherwise.
func (g *GUI) Show(show bool) *GUI {
	g.hidden = !show
	g.el.SetHidden(g.hidden)
	return g
}

// Hide hides the container.
func (g *GUI) Hide() *GUI {
	return g.Show(false)
}

// Hidden reports whether the container is hidden.
func (g *GUI) Hidden() bool { return g.hidden }

// SetTitle changes the title. Folders are saved and loaded under it.
func (g *GUI) SetTitle(title string) *GUI {
	g.title = title
	g.el.SetText(widget.PartTitle, title)
	return g
}

// Title returns the title.
func (g *GUI) Title() string { return g.title }

// Reset restores every direct controller, or every controller in the
// subtree when recursive, to its initial value.
func (g *GUI) Reset(recursive bool) *GUI {
	controllers := g.Controllers()
	if recursive {
		controllers = g.ControllersRecursive()
	}
	for _, c := range controllers {
		c.Reset()
	}
	return g
}

// OnChange sets the callback fired by any change in the subtree.
func (g *GUI) OnChange(fn ChangeFunc) *GUI {
	g.onChange = fn
	return g
}

// OnFinishChange sets the callback fired when an interaction in the subtree
// completes.
func (g *GUI) OnFinishChange(fn ChangeFunc) *GUI {
	g.onFinishChange = fn
	return g
}

// OnOpenClose sets the callback fired when this container or a descendant
// folder opens or closes.
func (g *GUI) OnOpenClose(fn OpenCloseFunc) *GUI {
	g.onOpenClose = fn
	return g
}

func (g *GUI) callOnChange(ev ChangeEvent) {
	if g.onChange != nil {
		g.onChange(ev)
	}
	if g.parent != nil {
		g.parent.callOnChange(ev)
	}
}

func (g *GUI) callOnFinishChange(ev ChangeEvent) {
	if g.onFinishChange != nil {
		g.onFinishChange(ev)
	}
	if g.parent != nil {
		g.parent.callOnFinishChange(ev)
	}
}

func (g *GUI) callOnOpenClose(changed *GUI) {
	if g.onOpenClose != nil {
		g.onOpenClose(changed)
	}
	if g.parent != nil {
		g.parent.callOnOpenClose(changed)
	}
}

// Destroy removes the container from its parent and destroys its subtree.
// Later calls do nothing.
func (g *GUI) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	if g.parent != nil {
		g.parent.removeChild(g)
	}
	for _, child := range append([]Node(nil), g.children...) {
		child.Destroy()
	}
	for _, off := range g.unlisten {
		off()
	}
	g.unlisten = nil
	g.el.Remove()
	g.onChange, g.onFinishChange, g.onOpenClose = nil, nil, nil
	g.log.Debug().Str("panel", g.title).Msg("panel destroyed")
}

// Destroyed reports whether Destroy was called.
func (g *GUI) Destroyed() bool { return g.destroyed }

func (g *GUI) removeChild(n Node) {
	for i, c := range g.children {
		if c == n {
			g.children = append(g.children[:i:i], g.children[i+1:]...)
			return
		}
	}
}

// Children returns controllers and folders in insertion order.
func (g *GUI) Children() []Node {
	return append([]Node(nil), g.children...)
}

// Controllers returns the direct controllers in insertion order.
func (g *GUI) Controllers() []Controller {
	var out []Controller
	for _, c := range g.children {
		if ctrl, ok := c.(Controller); ok {
			out = append(out, ctrl)
		}
	}
	return out
}

// Folders returns the direct folders in insertion order.
func (g *GUI) Folders() []*GUI {
	var out []*GUI
	for _, c := range g.children {
		if folder, ok := c.(*GUI); ok {
			out = append(out, folder)
		}
	}
	return out
}

// ControllersRecursive returns the direct controllers followed by those of
// each folder, depth first.
func (g *GUI) ControllersRecursive() []Controller {
	out := g.Controllers()
	for _, folder := range g.Folders() {
		out = append(out, folder.ControllersRecursive()...)
	}
	return out
}

// FoldersRecursive returns every folder in the subtree in pre-order.
func (g *GUI) FoldersRecursive() []*GUI {
	var out []*GUI
	for _, folder := range g.Folders() {
		out = append(out, folder)
		out = append(out, folder.FoldersRecursive()...)
	}
	return out
}

// Parent returns the enclosing container, or nil for the root.
func (g *GUI) Parent() *GUI { return g.parent }

// Root returns the top-level container.
func (g *GUI) Root() *GUI { return g.root }

// Frames returns the scheduler that drives listening controllers.
func (g *GUI) Frames() *frame.Scheduler { return g.frames }

// Element returns the backend element of the container.
func (g *GUI) Element() widget.Element { return g.el }

func isOptionSet(arg any) bool {
	if _, ok := arg.([]Option); ok {
		return true
	}
	switch reflect.ValueOf(arg).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

type numberBounds struct {
	min, max  float64
	step      float64
	stepGiven bool
}

func numberArgs(args []any) numberBounds {
	nb := numberBounds{min: negInf, max: posInf}
	if len(args) > 0 {
		if v, ok := toFloat(args[0]); ok {
			nb.min = v
		}
	}
	if len(args) > 1 {
		if v, ok := toFloat(args[1]); ok {
			nb.max = v
		}
	}
	if len(args) > 2 {
		if v, ok := toFloat(args[2]); ok && v > 0 {
			nb.step = v
			nb.stepGiven = true
		}
	}
	return nb
}
