package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Slider renders the fill of a bounded number controller.
type Slider struct {
	bar progress.Model
}

// NewSlider creates a slider of the given width in cells.
func NewSlider(width int, accent lipgloss.Color) Slider {
	bar := progress.New(progress.WithSolidFill(string(accent)), progress.WithoutPercentage())
	bar.Width = width
	return Slider{bar: bar}
}

// Width returns the bar width.
func (s Slider) Width() int {
	return s.bar.Width
}

// View renders the bar at ratio followed by label.
func (s Slider) View(ratio float64, label string) string {
	ratio = math.Max(0, math.Min(1, ratio))
	return lipgloss.JoinHorizontal(lipgloss.Left, s.bar.ViewAs(ratio), " ", label)
}

// Resize returns a copy of s with width clamped to [10,40].
func (s Slider) Resize(width int) Slider {
	s.bar.Width = max(10, min(40, width))
	return s
}
