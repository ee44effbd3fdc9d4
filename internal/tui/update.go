package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.timer.accept(msg) {
			return m, nil
		}
		m.frame = m.engine.Tick()
		return m, m.timer.schedule()

	case tea.BlurMsg:
		m.hidden = true
		return m, m.syncTimer()

	case tea.FocusMsg, tea.ResumeMsg:
		m.hidden = false
		return m, m.syncTimer()

	case VisibilityMsg:
		m.hidden = !msg.Visible
		return m, m.syncTimer()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.timer.stop()
		m.log.Info("display closed")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, m.syncTimer()

	case key.Matches(msg, m.keys.Suspend):
		m.hidden = true
		m.syncTimer()
		return m, tea.Suspend

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	return m, nil
}
