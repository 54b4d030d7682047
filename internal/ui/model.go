package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/formbuilder/internal/form"
	"github.com/flavono123/formbuilder/internal/preview"
	"github.com/flavono123/formbuilder/internal/ui/event"
	"github.com/flavono123/formbuilder/internal/ui/kbar"
	"github.com/flavono123/formbuilder/internal/ui/keymap"
	"github.com/flavono123/formbuilder/internal/ui/theme"
)

type Model struct {
	keys   keymap.KeyMap
	store  *form.Store
	cards  []card
	focus  int
	vp     viewport.Model
	help   help.Model
	kbar   *kbar.Model
	styles styles
	width  int
	height int

	status     string
	statusKind event.Status
}

// InitModel builds the root model over store. The store is the single
// source of truth; the model only keeps per-field editor widgets.
func InitModel(store *form.Store) *Model {
	m := &Model{
		keys:   keymap.NewKeyMap(),
		store:  store,
		vp:     viewport.New(DEFAULT_WIDTH, DEFAULT_HEIGHT-CARDS_VERTICAL_MARGIN),
		help:   help.New(),
		kbar:   kbar.NewModel(),
		styles: newStyles(),
		width:  DEFAULT_WIDTH,
		height: DEFAULT_HEIGHT,
	}
	m.syncCards(store.Fields())
	if len(m.cards) > 0 {
		m.setFocus(0)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-CARDS_VERTICAL_MARGIN, 1)
		m.help.Width = msg.Width
		km, kCmd := m.kbar.Update(msg)
		m.kbar = km.(*kbar.Model)
		cmds = append(cmds, kCmd)

	case kbar.ShowMsg, kbar.HideMsg:
		km, kCmd := m.kbar.Update(msg)
		m.kbar = km.(*kbar.Model)
		cmds = append(cmds, kCmd)
		if _, hidden := msg.(kbar.HideMsg); hidden && len(m.cards) > 0 {
			cmds = append(cmds, m.cards[m.focus].label.Focus())
		}

	case event.AddFieldMsg:
		if m.kbar.Visible() {
			km, _ := m.kbar.Update(kbar.HideMsg{})
			m.kbar = km.(*kbar.Model)
		}
		cmds = append(cmds, m.addField(msg.Kind))

	case event.SetStatusMsg:
		m.status, m.statusKind = msg.Message, msg.Status
		cmds = append(cmds, event.ShowStatus())

	case event.HideStatusMsg:
		m.status = ""

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	default:
		// cursor blink and other widget ticks
		if m.kbar.Visible() {
			km, kCmd := m.kbar.Update(msg)
			m.kbar = km.(*kbar.Model)
			cmds = append(cmds, kCmd)
		} else if len(m.cards) > 0 {
			var c tea.Cmd
			m.cards[m.focus].label, c = m.cards[m.focus].label.Update(msg)
			cmds = append(cmds, c)
		}
	}

	m.syncViewport()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	if m.kbar.Visible() {
		km, kCmd := m.kbar.Update(msg)
		m.kbar = km.(*kbar.Model)
		return kCmd
	}

	if key.Matches(msg, m.keys.ShowKbar) {
		if len(m.cards) > 0 {
			m.cards[m.focus].label.Blur()
		}
		return kbar.Toggle(m.kbar.Visible())
	}
	for _, kind := range form.Kinds() {
		if key.Matches(msg, m.keys.AddField[kind]) {
			return m.addField(kind)
		}
	}

	if len(m.cards) == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % len(m.cards))
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus - 1 + len(m.cards)) % len(m.cards))
		return nil
	case key.Matches(msg, m.keys.AddOption):
		return m.addOption()
	}

	return m.editLabel(msg)
}

// addField is the "add {kind}" trigger.
func (m *Model) addField(kind form.Kind) tea.Cmd {
	f := m.store.AddField(kind)
	m.syncCards(m.store.Fields())
	m.setFocus(len(m.cards) - 1)
	return tea.Batch(
		m.cards[m.focus].label.Focus(),
		event.SetStatus(fmt.Sprintf("added %s field", f.Kind), event.Info),
	)
}

// addOption is the "Add Option" trigger of the focused field; it only exists
// for dropdown and radio fields.
func (m *Model) addOption() tea.Cmd {
	id := m.cards[m.focus].id
	f, ok := m.store.Field(id)
	if !ok {
		return nil
	}
	if !f.Kind.IsChoice() {
		return event.SetStatus(fmt.Sprintf("%s fields have no options", f.Kind), event.Warn)
	}
	m.store.AddOption(id)
	return nil
}

// editLabel feeds the key to the focused label box and pushes any change to
// the store, like an input's change event.
func (m *Model) editLabel(msg tea.KeyMsg) tea.Cmd {
	c := &m.cards[m.focus]
	prev := c.label.Value()

	var cmd tea.Cmd
	c.label, cmd = c.label.Update(msg)
	if v := c.label.Value(); v != prev {
		m.store.UpdateLabel(c.id, v)
	}
	return cmd
}

// syncCards creates editors for fields the model has not seen yet. The list
// only grows at the tail, so cards stay aligned with the snapshot by index.
func (m *Model) syncCards(fields form.FieldList) {
	for i := len(m.cards); i < len(fields); i++ {
		m.cards = append(m.cards, newCard(fields[i]))
	}
	if len(m.cards) != len(fields) {
		log.Printf("card count %d does not match field count %d", len(m.cards), len(fields))
	}
}

func (m *Model) setFocus(i int) {
	if len(m.cards) > 0 {
		m.cards[m.focus].label.Blur()
	}
	m.focus = i
	m.cards[m.focus].label.Focus()
}

func (m *Model) View() string {
	if m.kbar.Visible() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			UPPER_20,
			m.kbar.View(),
			lipgloss.WithWhitespaceBackground(theme.Mantle()),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.title.Render("Form Builder"),
		m.addHints(),
		"",
		m.vp.View(),
		m.statusView(),
		m.help.View(m.keys),
	)
}

func (m *Model) addHints() string {
	var hints []string
	for _, kind := range form.Kinds() {
		h := m.keys.AddField[kind].Help()
		hints = append(hints, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return m.styles.hint.Render(strings.Join(hints, "  "))
}

func (m *Model) statusView() string {
	if m.status == "" {
		return ""
	}
	return m.styles.status[m.statusKind].Render(m.status)
}

func (m *Model) syncViewport() {
	fields := m.store.Fields()
	if len(fields) == 0 {
		m.vp.SetContent(m.styles.empty.Render("No fields yet. Press alt+k or alt+1..4 to add one."))
		return
	}

	width := min(m.width, CARD_MAX_WIDTH)
	elems := preview.RenderAll(fields)
	var views []string
	focusTop, focusBottom := 0, 0
	line := 0
	for i, f := range fields {
		if i >= len(m.cards) {
			break
		}
		v := m.cards[i].view(f, elems[i], i, i == m.focus, width, m.styles)
		h := lipgloss.Height(v)
		if i == m.focus {
			focusTop, focusBottom = line, line+h
		}
		line += h
		views = append(views, v)
	}
	m.vp.SetContent(lipgloss.JoinVertical(lipgloss.Left, views...))

	if focusTop < m.vp.YOffset {
		m.vp.SetYOffset(focusTop)
	} else if focusBottom > m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(focusBottom - m.vp.Height)
	}
}
