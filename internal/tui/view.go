package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/nav"
)

// View implements tea.Model.
func (m Model) View() string {
	body := m.viewport.View()
	if m.menu.IsOpen() {
		body = lipgloss.Place(m.width, m.viewportHeight(), lipgloss.Center, lipgloss.Center, m.menuView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.helpView())
}

func (m Model) headerView() string {
	parts := []string{m.styles.brand.Render(m.content.Profile.Name)}
	for _, link := range nav.Links(m.active) {
		style := m.styles.link
		if link.Active {
			style = m.styles.activeLink
		}
		parts = append(parts, style.Render(link.Label))
	}
	bar := lipgloss.NewStyle().MaxWidth(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	return m.styles.header.Width(m.width).Render(bar)
}

func (m Model) menuView() string {
	lines := make([]string, 0, len(nav.Items()))
	for i, link := range nav.Links(m.active) {
		label := fmt.Sprintf("%d  %s", i+1, link.Label)
		if link.Active {
			label = m.styles.activeLink.Render(label)
		} else {
			label = m.styles.link.Render(label)
		}
		lines = append(lines, label)
	}
	return m.styles.menu.Render(strings.Join(lines, "\n"))
}

func (m Model) helpView() string {
	help := fmt.Sprintf("↑/↓ scroll · 1-9 jump · m menu · t %s · q quit", strings.ToLower(m.styles.palette.ToggleLabel))
	return m.styles.help.Width(m.width).Render(lipgloss.NewStyle().MaxWidth(m.width).Render(help))
}
