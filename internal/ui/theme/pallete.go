package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var theme = catppuccin.Mocha

// SetFlavour switches the palette; unknown names keep the current one.
func SetFlavour(name string) {
	switch name {
	case "latte":
		theme = catppuccin.Latte
	case "frappe":
		theme = catppuccin.Frappe
	case "macchiato":
		theme = catppuccin.Macchiato
	case "mocha":
		theme = catppuccin.Mocha
	}
}

// Flavour returns the name of the active palette.
func Flavour() string {
	return theme.Name()
}

func Mauve() lipgloss.Color    { return lipgloss.Color(theme.Mauve().Hex) }
func Red() lipgloss.Color      { return lipgloss.Color(theme.Red().Hex) }
func Yellow() lipgloss.Color   { return lipgloss.Color(theme.Yellow().Hex) }
func Green() lipgloss.Color    { return lipgloss.Color(theme.Green().Hex) }
func Blue() lipgloss.Color     { return lipgloss.Color(theme.Blue().Hex) }
func Lavender() lipgloss.Color { return lipgloss.Color(theme.Lavender().Hex) }
func Subtext1() lipgloss.Color { return lipgloss.Color(theme.Subtext1().Hex) }
func Overlay0() lipgloss.Color { return lipgloss.Color(theme.Overlay0().Hex) }
func Overlay1() lipgloss.Color { return lipgloss.Color(theme.Overlay1().Hex) }
func Surface1() lipgloss.Color { return lipgloss.Color(theme.Surface1().Hex) }
func Surface2() lipgloss.Color { return lipgloss.Color(theme.Surface2().Hex) }
func Base() lipgloss.Color     { return lipgloss.Color(theme.Base().Hex) }
func Mantle() lipgloss.Color   { return lipgloss.Color(theme.Mantle().Hex) }
