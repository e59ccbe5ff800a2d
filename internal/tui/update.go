package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tweakpanel/pkg/snapshot"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.quitting {
			return m, nil
		}
		if m.onFrame != nil {
			m.onFrame()
		}
		m.gui.Frames().Tick()
		return m, m.frameTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case savedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("save failed: %v", msg.err))
			return m, nil
		}
		m.setStatus("saved " + msg.path)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.slider = m.slider.Resize(msg.Width / 3)
		return m, nil
	case tea.KeyMsg:
		if m.editing != nil {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.activate()
	case "left", "h":
		m.adjust(-1, msg)
	case "right", "l":
		m.adjust(1, msg)
	case "shift+left", "alt+left":
		m.adjust(-1, msg)
	case "shift+right", "alt+right":
		m.adjust(1, msg)
	case "r":
		m.gui.Reset(true)
		m.setStatus("reset to initial values")
	case "s":
		return m, m.save()
	}
	m.refreshRows()
	return m, nil
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	node := m.current()
	if node == nil {
		return m, nil
	}
	if node.Disabled() {
		m.setStatus(node.Text(widget.PartName) + " is disabled")
		return m, nil
	}

	switch node.Kind() {
	case widget.KindPanel, widget.KindFunction:
		node.Emit(widget.Event{Type: widget.EventClick})
	case widget.KindBoolean:
		node.Emit(widget.Event{Type: widget.EventChange, Checked: !node.Checked()})
	case widget.KindOption:
		m.stepOption(node, 1)
	case widget.KindNumber, widget.KindString, widget.KindColor:
		m.editing = node
		m.input.SetValue(node.Text(widget.PartValue))
		m.input.CursorEnd()
		cmd := m.input.Focus()
		node.Focus()
		m.refreshRows()
		return m, cmd
	}
	m.refreshRows()
	return m, nil
}

func (m *Model) adjust(dir int, msg tea.KeyMsg) {
	node := m.current()
	if node == nil || node.Disabled() {
		return
	}
	switch node.Kind() {
	case widget.KindNumber:
		key := widget.KeyArrowUp
		if dir < 0 {
			key = widget.KeyArrowDown
		}
		node.Emit(widget.Event{
			Type:  widget.EventKeyDown,
			Key:   key,
			Shift: msg.Type == tea.KeyShiftLeft || msg.Type == tea.KeyShiftRight,
			Alt:   msg.Alt,
		})
	case widget.KindOption:
		m.stepOption(node, dir)
	case widget.KindBoolean:
		if checked := dir > 0; checked != node.Checked() {
			node.Emit(widget.Event{Type: widget.EventChange, Checked: checked})
		}
	}
}

func (m *Model) stepOption(node *widget.Node, dir int) {
	n := len(node.Options())
	if n == 0 {
		return
	}
	index := node.Selected()
	if index < 0 {
		index = 0
		if dir < 0 {
			index = n - 1
		}
	} else {
		index = ((index+dir)%n + n) % n
	}
	node.Emit(widget.Event{Type: widget.EventChange, Index: index})
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	node := m.editing
	switch msg.String() {
	case "ctrl+c":
		m.stopEditing()
		m.quitting = true
		return m, tea.Quit
	case "enter":
		node.Emit(widget.Event{Type: widget.EventKeyDown, Key: widget.KeyEnter})
		m.stopEditing()
		return m, nil
	case "esc":
		node.Emit(widget.Event{Type: widget.EventKeyDown, Key: widget.KeyEscape})
		m.stopEditing()
		return m, nil
	case "up", "down":
		key := widget.KeyArrowUp
		if msg.String() == "down" {
			key = widget.KeyArrowDown
		}
		node.Emit(widget.Event{Type: widget.EventKeyDown, Key: key})
		m.input.SetValue(node.Text(widget.PartValue))
		m.input.CursorEnd()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		node.Emit(widget.Event{Type: widget.EventInput, Part: widget.PartValue, Text: after})
	}
	return m, cmd
}

func (m *Model) stopEditing() {
	if m.editing != nil {
		m.editing.Blur()
	}
	m.editing = nil
	m.input.Blur()
	m.input.Reset()
	m.refreshRows()
}

func (m *Model) save() tea.Cmd {
	if m.savePath == "" {
		m.setError("no snapshot path configured")
		return nil
	}
	snap, err := m.gui.Save(true)
	if err != nil {
		m.setError(err.Error())
		return nil
	}
	path := m.savePath
	log := m.log
	return func() tea.Msg {
		err := snapshot.WriteFile(path, snap)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("snapshot write failed")
		} else {
			log.Info().Str("path", path).Int("values", snap.Count()).Msg("snapshot saved")
		}
		return savedMsg{path: path, err: err}
	}
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.failed = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.failed = true
}
