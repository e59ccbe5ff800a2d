// Package widget defines the rendering capability the panel core drives and
// ships Tree, an in-memory retained backend that renderers (and tests) read
// from and feed input events into.
package widget

// Kind identifies what a control row holds.
type Kind string

const (
	KindPanel    Kind = "panel"
	KindBoolean  Kind = "boolean"
	KindNumber   Kind = "number"
	KindOption   Kind = "option"
	KindColor    Kind = "color"
	KindString   Kind = "string"
	KindFunction Kind = "function"
)

// Part names a text region of an element.
type Part string

const (
	// PartName is the label of a control row.
	PartName Part = "name"
	// PartTitle is the title bar of a panel.
	PartTitle Part = "title"
	// PartValue is the editable text of a control.
	PartValue Part = "value"
	// PartDisplay is a read-only rendering: the selected option name or the
	// colour swatch.
	PartDisplay Part = "display"
)

// Common classes set by the panel core.
const (
	ClassClosed           = "closed"
	ClassListening        = "listening"
	ClassActive           = "active"
	ClassSlider           = "has-slider"
	ClassDraggingX        = "dragging-horizontal"
	ClassDraggingY        = "dragging-vertical"
	ClassAllowTouchStyles = "allow-touch-styles"
	ClassRoot             = "root"
)

// EventType enumerates the input events a backend reports.
type EventType int

const (
	// EventInput carries edited text in Event.Text.
	EventInput EventType = iota
	// EventChange is a discrete commit: a toggled checkbox (Checked), a picked
	// option (Index) or a colour picker value (Text).
	EventChange
	EventFocus
	EventBlur
	// EventKeyDown carries Key and modifier state.
	EventKeyDown
	// EventWheel carries DeltaX and DeltaY.
	EventWheel
	// EventPointerDown, EventPointerMove and EventPointerUp carry the pointer
	// position along the slider in Ratio and per-event movement in DX and DY.
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventClick
)

var eventNames = map[EventType]string{
	EventInput:       "input",
	EventChange:      "change",
	EventFocus:       "focus",
	EventBlur:        "blur",
	EventKeyDown:     "keydown",
	EventWheel:       "wheel",
	EventPointerDown: "pointerdown",
	EventPointerMove: "pointermove",
	EventPointerUp:   "pointerup",
	EventClick:       "click",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Well-known key names.
const (
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// Event is an input event delivered to a Handler.
type Event struct {
	Type EventType
	// Part is the region the event targets. Pointer events on PartValue drag
	// the text field; anywhere else they drive the slider.
	Part    Part
	Text    string
	Checked bool
	Index   int
	Key     string
	Shift   bool
	Alt     bool
	DeltaX  float64
	DeltaY  float64
	Ratio   float64
	DX      float64
	DY      float64
}

// Handler receives events from an element.
type Handler func(Event)

// Element is one mounted node of the rendering backend.
type Element interface {
	SetText(part Part, text string)
	Text(part Part) string
	// SetFill sets the slider fill ratio in [0,1].
	SetFill(ratio float64)
	SetOptions(names []string)
	// SetSelected selects an option by index; -1 selects nothing.
	SetSelected(index int)
	SetChecked(checked bool)
	SetDisabled(disabled bool)
	SetHidden(hidden bool)
	SetClass(class string, on bool)
	Focused() bool
	// Blur drops focus, reporting EventBlur when the element had it.
	Blur()
	// Listen registers h and returns a function that removes it.
	Listen(t EventType, h Handler) func()
	// Remove detaches the element and its listeners from the tree.
	Remove()
}

// MountOptions are presentation hints passed through to the backend.
type MountOptions struct {
	Width        int
	InjectStyles bool
	TouchStyles  bool
}

// Backend creates elements.
type Backend interface {
	// NewPanel creates a panel element under parent, or a detached root when
	// parent is nil.
	NewPanel(parent Element, title string, opts MountOptions) Element
	// NewControl creates a control row of kind under a panel element.
	NewControl(parent Element, kind Kind, name string) Element
}
