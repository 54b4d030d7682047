package kbar

import tea "github.com/charmbracelet/bubbletea"

type ShowMsg struct{}

type HideMsg struct{}

func Show() tea.Msg {
	return ShowMsg{}
}

func Hide() tea.Msg {
	return HideMsg{}
}

// Toggle returns the command that flips the palette's visibility.
func Toggle(visible bool) tea.Cmd {
	if visible {
		return Hide
	}
	return Show
}
