package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tweakpanel/internal/tui/components"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	for i, row := range m.rows {
		lines = append(lines, m.renderRow(row, i == m.cursor))
	}

	sections := []string{strings.Join(lines, "\n")}

	status := components.NewStatus(components.StatusData{
		Controllers: len(m.gui.ControllersRecursive()),
		Folders:     len(m.gui.FoldersRecursive()),
		Frame:       m.gui.Frames().Frame(),
		Editing:     m.editing != nil,
	}).View()
	sections = append(sections, m.styles.Status.Render(status))

	if strings.TrimSpace(m.status) != "" {
		style := m.styles.Value
		if m.failed {
			style = m.styles.Error
		}
		sections = append(sections, style.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRow(row components.Row, selected bool) string {
	node := row.Node
	pointer := "  "
	if selected {
		pointer = m.styles.Cursor.Render("› ")
	}
	indent := strings.Repeat("  ", row.Depth)

	if node.Kind() == widget.KindPanel {
		marker := "▾"
		if node.HasClass(widget.ClassClosed) {
			marker = "▸"
		}
		style := m.styles.Folder
		if row.Depth == 0 {
			style = m.styles.Title
		}
		return pointer + indent + style.Render(fmt.Sprintf("%s %s", marker, node.Text(widget.PartTitle)))
	}

	name := m.styles.Name.Render(node.Text(widget.PartName))
	line := pointer + indent + name + " " + m.renderValue(node)
	if node.HasClass(widget.ClassListening) {
		line += " " + m.spinner.View()
	}
	if node.Disabled() {
		return m.styles.Disabled.Render(line)
	}
	return line
}

func (m Model) renderValue(node *widget.Node) string {
	if node == m.editing {
		return m.styles.Cursor.Render("[") + m.input.View() + m.styles.Cursor.Render("]")
	}

	switch node.Kind() {
	case widget.KindBoolean:
		if node.Checked() {
			return "[x]"
		}
		return "[ ]"
	case widget.KindFunction:
		return m.styles.Cursor.Render("▶ run")
	case widget.KindOption:
		return fmt.Sprintf("‹ %s ›", node.Text(widget.PartDisplay))
	case widget.KindColor:
		hex := node.Text(widget.PartDisplay)
		if hex == "" {
			return "?"
		}
		return swatch(hex) + " " + hex
	case widget.KindNumber:
		text := node.Text(widget.PartValue)
		if fill, ok := node.Fill(); ok && node.HasClass(widget.ClassSlider) {
			return m.slider.View(fill, text)
		}
		return text
	default:
		return m.styles.Value.Render(node.Text(widget.PartValue))
	}
}
