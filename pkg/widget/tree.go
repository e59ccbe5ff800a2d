package widget

// Tree is a retained in-memory Backend. Renderers walk its nodes to draw and
// call Emit, Focus and Blur to deliver input. It is not safe for concurrent
// use; drive it from the goroutine that owns the panel.
type Tree struct {
	roots []*Node
}

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Roots returns the top-level panels in creation order.
func (t *Tree) Roots() []*Node {
	live := t.roots[:0]
	for _, n := range t.roots {
		if !n.removed {
			live = append(live, n)
		}
	}
	t.roots = live
	return append([]*Node(nil), live...)
}

// NewPanel implements Backend.
func (t *Tree) NewPanel(parent Element, title string, opts MountOptions) Element {
	n := newNode(KindPanel)
	n.mount = opts
	n.texts[PartTitle] = title
	if p, ok := parent.(*Node); ok && p != nil {
		p.append(n)
	} else {
		t.roots = append(t.roots, n)
	}
	return n
}

// NewControl implements Backend.
func (t *Tree) NewControl(parent Element, kind Kind, name string) Element {
	n := newNode(kind)
	n.texts[PartName] = name
	if p, ok := parent.(*Node); ok && p != nil {
		p.append(n)
	}
	return n
}

type listener struct {
	id int
	h  Handler
}

// Node is an element of a Tree.
type Node struct {
	kind      Kind
	parent    *Node
	children  []*Node
	texts     map[Part]string
	fill      float64
	hasFill   bool
	options   []string
	selected  int
	checked   bool
	disabled  bool
	hidden    bool
	focused   bool
	removed   bool
	classes   map[string]bool
	listeners map[EventType][]listener
	nextID    int
	mount     MountOptions
}

var _ Element = (*Node)(nil)

func newNode(kind Kind) *Node {
	return &Node{
		kind:      kind,
		texts:     make(map[Part]string),
		selected:  -1,
		classes:   make(map[string]bool),
		listeners: make(map[EventType][]listener),
	}
}

func (n *Node) append(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// Kind reports what the node holds.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the enclosing panel node, or nil for roots.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list in display order.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

// Mount returns the options a panel was mounted with.
func (n *Node) Mount() MountOptions { return n.mount }

// SetText implements Element.
func (n *Node) SetText(part Part, text string) { n.texts[part] = text }

// Text implements Element.
func (n *Node) Text(part Part) string { return n.texts[part] }

// SetFill implements Element.
func (n *Node) SetFill(ratio float64) {
	n.fill = ratio
	n.hasFill = true
}

// Fill returns the slider fill and whether the node has a slider.
func (n *Node) Fill() (float64, bool) { return n.fill, n.hasFill }

// SetOptions implements Element.
func (n *Node) SetOptions(names []string) {
	n.options = append([]string(nil), names...)
}

// Options returns the option names.
func (n *Node) Options() []string { return append([]string(nil), n.options...) }

// SetSelected implements Element.
func (n *Node) SetSelected(index int) { n.selected = index }

// Selected returns the selected option index or -1.
func (n *Node) Selected() int { return n.selected }

// SetChecked implements Element.
func (n *Node) SetChecked(checked bool) { n.checked = checked }

// Checked reports the toggle state.
func (n *Node) Checked() bool { return n.checked }

// SetDisabled implements Element.
func (n *Node) SetDisabled(disabled bool) { n.disabled = disabled }

// Disabled reports whether input is blocked.
func (n *Node) Disabled() bool { return n.disabled }

// SetHidden implements Element.
func (n *Node) SetHidden(hidden bool) { n.hidden = hidden }

// Hidden reports whether the node is excluded from layout.
func (n *Node) Hidden() bool { return n.hidden }

// SetClass implements Element.
func (n *Node) SetClass(class string, on bool) {
	if on {
		n.classes[class] = true
		return
	}
	delete(n.classes, class)
}

// HasClass reports whether class is set.
func (n *Node) HasClass(class string) bool { return n.classes[class] }

// Focused implements Element.
func (n *Node) Focused() bool { return n.focused }

// Focus gives the node focus, reporting EventFocus when it did not have it.
func (n *Node) Focus() {
	if n.focused || n.removed {
		return
	}
	n.focused = true
	n.Emit(Event{Type: EventFocus, Part: PartValue})
}

// Blur implements Element.
func (n *Node) Blur() {
	if !n.focused {
		return
	}
	n.focused = false
	n.Emit(Event{Type: EventBlur, Part: PartValue})
}

// Listen implements Element.
func (n *Node) Listen(t EventType, h Handler) func() {
	n.nextID++
	id := n.nextID
	n.listeners[t] = append(n.listeners[t], listener{id: id, h: h})
	return func() {
		list := n.listeners[t]
		for i, l := range list {
			if l.id == id {
				n.listeners[t] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers ev to the node's handlers and returns how many ran. Removed
// nodes drop events.
func (n *Node) Emit(ev Event) int {
	if n.removed {
		return 0
	}
	handlers := append([]listener(nil), n.listeners[ev.Type]...)
	for _, l := range handlers {
		l.h(ev)
	}
	return len(handlers)
}

// Listeners reports how many handlers are registered for t.
func (n *Node) Listeners(t EventType) int { return len(n.listeners[t]) }

// Remove implements Element.
func (n *Node) Remove() {
	if n.removed {
		return
	}
	if p := n.parent; p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i:i], p.children[i+1:]...)
				break
			}
		}
	}
	n.markRemoved()
}

func (n *Node) markRemoved() {
	n.removed = true
	n.focused = false
	n.listeners = make(map[EventType][]listener)
	for _, c := range n.children {
		c.markRemoved()
	}
}

// Removed reports whether the node was detached.
func (n *Node) Removed() bool { return n.removed }

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}
