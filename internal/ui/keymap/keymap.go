package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/flavono123/formbuilder/internal/form"
)

// main
type KeyMap struct {
	Quit      key.Binding
	ShowKbar  key.Binding
	Next      key.Binding
	Prev      key.Binding
	AddOption key.Binding
	AddField  map[form.Kind]key.Binding
}

func NewKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ShowKbar: key.NewBinding(
			key.WithKeys("alt+k"),
			key.WithHelp("alt(opt)+k", "add field"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		AddOption: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "add option"),
		),
		AddField: map[form.Kind]key.Binding{
			form.KindText: key.NewBinding(
				key.WithKeys("alt+1"),
				key.WithHelp("alt+1", "add text"),
			),
			form.KindDropdown: key.NewBinding(
				key.WithKeys("alt+2"),
				key.WithHelp("alt+2", "add dropdown"),
			),
			form.KindCheckbox: key.NewBinding(
				key.WithKeys("alt+3"),
				key.WithHelp("alt+3", "add checkbox"),
			),
			form.KindRadio: key.NewBinding(
				key.WithKeys("alt+4"),
				key.WithHelp("alt+4", "add radio"),
			),
		},
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.ShowKbar,
		k.Next,
		k.AddOption,
		k.Quit,
	}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	var adds []key.Binding
	for _, kind := range form.Kinds() {
		adds = append(adds, k.AddField[kind])
	}
	return [][]key.Binding{
		k.ShortHelp(),
		adds,
	}
}

// kbar
type KbarKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Pick key.Binding
	Hide key.Binding
}

func NewKbarKeyMap() KbarKeyMap {
	return KbarKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down: key.NewBinding(key.WithKeys("down", "ctrl+n")),
		Pick: key.NewBinding(key.WithKeys("enter")),
		Hide: key.NewBinding(key.WithKeys("esc", "alt+k")),
	}
}
