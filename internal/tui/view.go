package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := RenderFrame(m.frame, m.useUnicode)

	status := fmt.Sprintf("tick %d", m.frame.Counter)
	if m.paused {
		status += "  " + pausedStyle.Render("paused")
	}
	footer := lipgloss.JoinVertical(lipgloss.Center,
		statusStyle.Render(status),
		helpStyle.Render(m.help.View(m.keys)),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, body, footer)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
