package tui

import "github.com/charmbracelet/lipgloss"

var (
	starColor   = lipgloss.Color("226") // Yellow
	mutedColor  = lipgloss.Color("245") // Gray
	accentColor = lipgloss.Color("212") // Pink

	starStyle = lipgloss.NewStyle().Bold(true).Foreground(starColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	pausedStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)

// lightStyle colors a light glyph.
func lightStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color)
}

// trackStyle paints the toggle track.
func trackStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(color)
}

// knobStyle paints the knob over the track.
func knobStyle(knob, track lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(knob).Background(track)
}
