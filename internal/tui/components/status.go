package components

import (
	"fmt"
	"strings"
)

// StatusData aggregates what the status bar shows.
type StatusData struct {
	Controllers int
	Folders     int
	Frame       uint64
	Editing     bool
	Message     string
}

// Status renders the footer below the panel.
type Status struct {
	data StatusData
}

// NewStatus creates a new Status component.
func NewStatus(data StatusData) Status {
	return Status{data: data}
}

// View renders the status lines.
func (s Status) View() string {
	var lines []string

	counts := fmt.Sprintf("%d controllers", s.data.Controllers)
	if s.data.Folders > 0 {
		counts = fmt.Sprintf("%s in %d folders", counts, s.data.Folders)
	}
	lines = append(lines, fmt.Sprintf("%s • frame %d", counts, s.data.Frame))

	if s.data.Editing {
		lines = append(lines, "enter commit • esc cancel • ↑/↓ step")
	} else {
		lines = append(lines, "↑/↓ move • enter edit • ←/→ adjust • r reset • s save • q quit")
	}

	if strings.TrimSpace(s.data.Message) != "" {
		lines = append(lines, s.data.Message)
	}

	return strings.Join(lines, "\n")
}
