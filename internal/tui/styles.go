package tui

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/theme"
)

type colors struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	surface lipgloss.Color
	success lipgloss.Color
}

var schemes = map[theme.Preference]colors{
	theme.Light: {
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("243"),
		accent:  lipgloss.Color("27"),
		border:  lipgloss.Color("250"),
		surface: lipgloss.Color("255"),
		success: lipgloss.Color("28"),
	},
	theme.Dark: {
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("245"),
		accent:  lipgloss.Color("75"),
		border:  lipgloss.Color("238"),
		surface: lipgloss.Color("236"),
		success: lipgloss.Color("42"),
	},
}

// styles is the lipgloss rendition of a theme palette.
type styles struct {
	palette theme.Palette

	brand      lipgloss.Style
	link       lipgloss.Style
	activeLink lipgloss.Style
	header     lipgloss.Style
	title      lipgloss.Style
	subtitle   lipgloss.Style
	body       lipgloss.Style
	muted      lipgloss.Style
	accent     lipgloss.Style
	bar        lipgloss.Style
	barEmpty   lipgloss.Style
	star       lipgloss.Style
	menu       lipgloss.Style
	help       lipgloss.Style
}

func newStyles(p theme.Preference) styles {
	palette := theme.Resolve(p)
	c, ok := schemes[palette.Key]
	if !ok {
		c = schemes[theme.Default]
	}

	return styles{
		palette: palette,
		brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.accent).
			PaddingRight(2),
		link: lipgloss.NewStyle().
			Foreground(c.muted).
			PaddingLeft(1).
			PaddingRight(1),
		activeLink: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.surface).
			Background(c.accent).
			PaddingLeft(1).
			PaddingRight(1),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(c.border),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.accent).
			MarginTop(1),
		subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.text),
		body:     lipgloss.NewStyle().Foreground(c.text),
		muted:    lipgloss.NewStyle().Foreground(c.muted),
		accent:   lipgloss.NewStyle().Foreground(c.accent),
		bar:      lipgloss.NewStyle().Foreground(c.success),
		barEmpty: lipgloss.NewStyle().Foreground(c.border),
		star:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		menu: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.accent).
			Padding(1, 2),
		help: lipgloss.NewStyle().
			Foreground(c.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(c.border),
	}
}
