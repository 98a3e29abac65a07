// Package render draws a picker session for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/terraincognita07/rangepicker/internal/services"
)

var (
	colorMuted  = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	colorBorder = lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#45475A"}

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	weekStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	outsideStyle  = lipgloss.NewStyle().Foreground(colorMuted).Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	borderStyle   = lipgloss.NewStyle().Reverse(true).Bold(true)
	previewStyle  = lipgloss.NewStyle().Underline(true)
	footerStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

const weekdayHeader = "Mo Tu We Th Fr Sa Su"

// Session renders every pane of view side by side with a one-line summary.
func Session(view services.SessionView) string {
	panes := make([]string, 0, len(view.Panes))
	for _, pane := range view.Panes {
		panes = append(panes, Pane(pane, view))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Left, body, footerStyle.Render(summary(view)))
}

// Pane renders one bordered month with an ISO week column.
func Pane(pane services.PaneView, view services.SessionView) string {
	lines := make([]string, 0, len(pane.Grid.Weeks)+2)
	lines = append(lines, titleStyle.Render(pane.Month.Label()))
	lines = append(lines, headerStyle.Render("Wk "+weekdayHeader))

	for _, row := range pane.Grid.Weeks {
		cells := services.ClassifyWeek(row, pane.Month, view.Horizon, view.Selection, view.Preview)
		parts := make([]string, 0, len(cells)+1)
		parts = append(parts, weekStyle.Render(fmt.Sprintf("%2d", row.WeekNumber)))
		for _, cell := range cells {
			parts = append(parts, dayStyle(cell).Render(fmt.Sprintf("%2d", cell.Date.Day)))
		}
		lines = append(lines, strings.Join(parts, " "))
	}

	return paneStyle.Render(strings.Join(lines, "\n"))
}

func dayStyle(cell services.DayCell) lipgloss.Style {
	switch {
	case !cell.InMonth || !cell.InHorizon:
		return outsideStyle
	case cell.Border:
		return borderStyle
	case cell.Selected:
		return selectedStyle
	case cell.Previewed:
		return previewStyle
	default:
		return lipgloss.NewStyle()
	}
}

func summary(view services.SessionView) string {
	selection := "none"
	switch {
	case view.Selection.Complete():
		selection = fmt.Sprintf("%s .. %s", view.Selection.Start, view.Selection.End)
	case view.Selection.HasStart():
		selection = fmt.Sprintf("%s .. ?", view.Selection.Start)
	}

	text := fmt.Sprintf("horizon %s .. %s  selection %s", view.Horizon.Start, view.Horizon.End, selection)
	if view.OutOfHorizon {
		text += "  (outside horizon)"
	}
	return text
}
