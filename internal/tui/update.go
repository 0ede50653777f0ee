package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	applog "folio/internal/log"
	"folio/internal/tracker"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = m.viewportHeight()
		m.layout()
		m.sync()
		return m, nil

	case RotateMsg:
		m.layout()
		m.sync()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.sync()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "t":
		pref := m.theme.Toggle(m.ctx)
		applog.Debug(m.ctx, "theme toggled", "theme", pref.String(), "persistent", m.theme.Persistent())
		m.styles = newStyles(pref)
		m.layout()
		return m, nil
	case "m":
		m.menu.Toggle()
		return m, nil
	case "esc":
		m.menu.Close()
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0] - '1')
		if index < len(tracker.DefaultSections) {
			section := tracker.DefaultSections[index]
			m.menu.Select(section)
			m.jump(section)
		}
		return m, nil
	}

	if m.menu.IsOpen() {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.sync()
	return m, cmd
}
