package components

import (
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// Row is one visible line of a panel: a panel title or a control.
type Row struct {
	Node  *widget.Node
	Depth int
}

// RowList flattens a panel tree into the rows a terminal can show. Hidden
// nodes are skipped and closed panels show their title only.
type RowList struct {
	entries []Row
}

// NewRowList walks root depth first.
func NewRowList(root *widget.Node) RowList {
	var entries []Row
	if root == nil {
		return RowList{}
	}
	root.Walk(func(n *widget.Node, depth int) bool {
		if n.Hidden() || n.Removed() {
			return false
		}
		entries = append(entries, Row{Node: n, Depth: depth})
		return !(n.Kind() == widget.KindPanel && n.HasClass(widget.ClassClosed))
	})
	return RowList{entries: entries}
}

// Entries returns the ordered rows.
func (r RowList) Entries() []Row {
	clone := make([]Row, len(r.entries))
	copy(clone, r.entries)
	return clone
}

// Len returns the number of rows.
func (r RowList) Len() int {
	return len(r.entries)
}
