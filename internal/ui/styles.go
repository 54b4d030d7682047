package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/formbuilder/internal/preview"
	"github.com/flavono123/formbuilder/internal/ui/event"
	"github.com/flavono123/formbuilder/internal/ui/theme"
)

type styles struct {
	title       lipgloss.Style
	hint        lipgloss.Style
	card        lipgloss.Style
	focusedCard lipgloss.Style
	kind        lipgloss.Style
	empty       lipgloss.Style
	preview     preview.TerminalStyles
	status      map[event.Status]lipgloss.Style
}

// newStyles reads the theme, so it must run after the flavour is set.
func newStyles() styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1()).
		Padding(0, 1)

	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(theme.Mauve()),
		hint:        lipgloss.NewStyle().Foreground(theme.Overlay1()),
		card:        card,
		focusedCard: card.BorderForeground(theme.Blue()),
		kind:        lipgloss.NewStyle().Bold(true).Foreground(theme.Base()).Background(theme.Lavender()).Padding(0, 1),
		empty:       lipgloss.NewStyle().Italic(true).Foreground(theme.Overlay0()),
		preview: preview.TerminalStyles{
			Control: lipgloss.NewStyle().Foreground(theme.Surface2()),
			Caption: lipgloss.NewStyle().Foreground(theme.Overlay1()),
		},
		status: map[event.Status]lipgloss.Style{
			event.Info:  lipgloss.NewStyle().Foreground(theme.Green()),
			event.Warn:  lipgloss.NewStyle().Foreground(theme.Yellow()),
			event.Error: lipgloss.NewStyle().Foreground(theme.Red()),
		},
	}
}
