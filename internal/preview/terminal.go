package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TerminalStyles styles the terminal drawing of an element.
type TerminalStyles struct {
	Control lipgloss.Style // box or glyph of the control
	Caption lipgloss.Style // placeholder and option text
}

// Terminal draws an element as text for the terminal UI. Every control is
// drawn greyed out through the styles; there is nothing to interact with.
func Terminal(e Element, st TerminalStyles) string {
	switch e.Control {
	case ControlTextInput:
		return st.Control.Render("[ ") + st.Caption.Render(e.Placeholder) + st.Control.Render(" ]")
	case ControlSelect:
		first := ""
		if len(e.Choices) > 0 {
			first = e.Choices[0]
		}
		lines := []string{st.Control.Render("[ ") + st.Caption.Render(first) + st.Control.Render(" ▾ ]")}
		for _, c := range e.Choices {
			lines = append(lines, st.Control.Render("  · ")+st.Caption.Render(c))
		}
		return strings.Join(lines, "\n")
	case ControlCheckbox:
		return st.Control.Render("[ ]")
	case ControlRadioGroup:
		lines := make([]string, 0, len(e.Choices))
		for _, c := range e.Choices {
			lines = append(lines, st.Control.Render("( )")+" "+st.Caption.Render(c))
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}
