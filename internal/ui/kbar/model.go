package kbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flavono123/formbuilder/internal/form"
	"github.com/flavono123/formbuilder/internal/ui/event"
	"github.com/flavono123/formbuilder/internal/ui/keymap"
	"github.com/flavono123/formbuilder/internal/ui/theme"
)

const (
	KBAR_WIDTH_DIV                 = 3
	KBAR_MIN_WIDTH                 = 24
	KBAR_SEARCH_RESULTS_MAX_HEIGHT = 10
)

type Model struct {
	keys          keymap.KbarKeyMap
	visible       bool
	style         lipgloss.Style
	items         kbarItems
	input         textinput.Model
	searchResults searchResults
	srViewport    viewport.Model
	cursor        int
}

func NewModel() *Model {
	var items kbarItems
	for _, k := range form.Kinds() {
		items = append(items, kbarItem{kind: k})
	}

	ti := textinput.New()
	ti.Placeholder = "Add a field..."
	ti.Prompt = "+ "
	ti.Width = 20
	m := &Model{
		keys:    keymap.NewKbarKeyMap(),
		visible: false,
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Overlay1()),
		items:      items,
		input:      ti,
		cursor:     0,
		srViewport: viewport.New(KBAR_MIN_WIDTH, len(items)),
	}

	m.setSearchResults(items)
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ShowMsg:
		m.setVisible(true)
		m.reset()
		return m, m.input.Focus()
	case HideMsg:
		m.setVisible(false)
		m.reset()
		m.input.Blur()
		return m, nil
	case tea.WindowSizeMsg:
		m.setViewSize(msg)
		return m, nil
	case tea.KeyMsg:
		if !m.Visible() {
			return m, nil
		}
		filtered := m.items.filter(m.input.Value())
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.setSearchResults(filtered)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(filtered)-1 {
				m.cursor++
			}
			m.setSearchResults(filtered)
			return m, nil
		case key.Matches(msg, m.keys.Pick):
			kind, ok := m.Hovered()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return event.AddFieldMsg{Kind: kind}
			}
		case key.Matches(msg, m.keys.Hide):
			return m, Hide
		}
	}

	prevInputValue := m.input.Value()
	im, iCmd := m.input.Update(msg)
	m.input = im
	cmds = append(cmds, iCmd)
	if prevInputValue != m.input.Value() {
		m.moveCursorTop(m.items.filter(m.input.Value()))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	inputStyle := lipgloss.NewStyle().Margin(0, 0, 1, 0)
	m.srViewport.SetContent(m.searchResults.string(m.srViewport.Width))
	return m.style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			inputStyle.Render(m.input.View()),
			m.srViewport.View(),
		),
	)
}

func (m *Model) setVisible(visible bool) {
	m.visible = visible
}

func (m *Model) Visible() bool {
	return m.visible
}

// Hovered returns the kind the cursor is on, if any.
func (m *Model) Hovered() (form.Kind, bool) {
	for _, sr := range m.searchResults {
		if sr.Hovered {
			return sr.Item.kind, true
		}
	}
	return 0, false
}

func (m *Model) setViewSize(msg tea.WindowSizeMsg) {
	m.srViewport.Width = max(msg.Width/KBAR_WIDTH_DIV, KBAR_MIN_WIDTH)
	m.srViewport.Height = min(len(m.items), KBAR_SEARCH_RESULTS_MAX_HEIGHT)
}

func (m *Model) reset() {
	m.input.Reset()
	m.cursor = 0
	m.setSearchResults(m.items)
	m.srViewport.SetYOffset(0)
}

func (m *Model) setSearchResults(items kbarItems) {
	var newSearchResults searchResults
	for index, item := range items {
		newSearchResults = append(newSearchResults, searchResult{
			Item:    item,
			Hovered: m.cursor == index,
		})
	}
	m.searchResults = newSearchResults
}

func (m *Model) moveCursorTop(items kbarItems) {
	m.cursor = 0
	m.setSearchResults(items)
}

// subcomponents(not model)
type kbarItem struct {
	kind form.Kind
}
type kbarItems []kbarItem

type searchResult struct {
	Item    kbarItem
	Hovered bool
}

type searchResults []searchResult

func (i kbarItem) String() string {
	return i.kind.String()
}

func (i kbarItem) render(width int) string {
	l := lipgloss.NewStyle().
		MaxWidth(width).
		Padding(0, 0, 0, 1)
	g := lipgloss.NewStyle().Foreground(theme.Subtext1())
	s := lipgloss.JoinHorizontal(
		lipgloss.Left,
		"Add ",
		i.kind.String(),
		" ",
		g.Render("field"),
	)

	return l.Render(s)
}

func (m kbarItems) filter(inputValue string) kbarItems {
	if inputValue == "" {
		return m
	}

	var items kbarItems
	var itemStrings []string
	for _, item := range m {
		itemStrings = append(itemStrings, item.String())
	}
	matches := fuzzy.Find(inputValue, itemStrings)
	for _, match := range matches {
		items = append(items, m[match.Index])
	}
	return items
}

func (sr searchResult) render(width int) string {
	style := lipgloss.NewStyle()
	if sr.Hovered {
		style = style.Background(theme.Overlay0())
	}
	return style.Render(sr.Item.render(width))
}

func (sr searchResults) string(width int) string {
	noResultsStyle := lipgloss.NewStyle().Foreground(theme.Overlay1())
	if len(sr) == 0 {
		return noResultsStyle.Render("No matching field kind.")
	}

	var result []string
	for _, item := range sr {
		result = append(result, item.render(width))
	}

	return strings.Join(result, "\n")
}
