package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/formbuilder/internal/form"
	"github.com/flavono123/formbuilder/internal/preview"
)

// card is the editor of one field: its label box and live preview.
type card struct {
	id    string
	label textinput.Model
}

func newCard(f form.FieldDefinition) card {
	ti := textinput.New()
	ti.Prompt = "Label: "
	ti.Placeholder = f.Kind.String() + " field"
	ti.CharLimit = LABEL_CHAR_LIMIT
	ti.SetValue(f.Label)
	return card{id: f.ID, label: ti}
}

func (c card) view(f form.FieldDefinition, e preview.Element, index int, focused bool, width int, st styles) string {
	style := st.card
	if focused {
		style = st.focusedCard
	}
	if width > 0 {
		style = style.Width(width - style.GetHorizontalFrameSize())
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Left,
			st.kind.Render(f.Kind.String()),
			st.hint.Render(fmt.Sprintf(" #%d", index+1)),
		),
		c.label.View(),
	}
	if p := preview.Terminal(e, st.preview); p != "" {
		rows = append(rows, p)
	}
	if f.Kind.IsChoice() {
		rows = append(rows, st.hint.Render("ctrl+o add option"))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
