// Package term renders hazard blocks to a terminal. It supplies the
// measurable surface the grid sync needs: natural height is the line count
// of text wrapped at the column width.
package term

import "github.com/charmbracelet/lipgloss"

// Surface measures text as lipgloss renders it.
type Surface struct{}

// MeasureHeight returns the number of terminal lines text occupies when
// wrapped at width.
func (Surface) MeasureHeight(text string, width int) int {
	if width <= 0 {
		return 1
	}
	return lipgloss.Height(lipgloss.NewStyle().Width(width).Render(text))
}
