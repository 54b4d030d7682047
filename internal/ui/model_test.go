package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/formbuilder/internal/form"
	"github.com/flavono123/formbuilder/internal/ui/event"
	"github.com/flavono123/formbuilder/internal/ui/kbar"
)

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var _ = Describe("Model", func() {
	var (
		store *form.Store
		m     *Model
	)

	BeforeEach(func() {
		store = form.NewStore(&form.SequenceGenerator{})
		m = InitModel(store)
		m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	})

	Describe("add field triggers", func() {
		It("should add one field per trigger in order", func() {
			m.Update(alt('4'))
			m.Update(alt('1'))
			m.Update(alt('3'))
			m.Update(alt('2'))

			fields := store.Fields()
			Expect(fields).To(HaveLen(4))
			Expect(fields[0].Kind).To(Equal(form.KindRadio))
			Expect(fields[1].Kind).To(Equal(form.KindText))
			Expect(fields[2].Kind).To(Equal(form.KindCheckbox))
			Expect(fields[3].Kind).To(Equal(form.KindDropdown))
			Expect(m.cards).To(HaveLen(4))
		})

		It("should focus the new field", func() {
			m.Update(alt('1'))
			m.Update(alt('2'))

			Expect(m.focus).To(Equal(1))
			Expect(m.cards[1].label.Focused()).To(BeTrue())
			Expect(m.cards[0].label.Focused()).To(BeFalse())
		})

		It("should add the kind picked in the palette", func() {
			m.Update(kbar.ShowMsg{})
			Expect(m.kbar.Visible()).To(BeTrue())

			m.Update(event.AddFieldMsg{Kind: form.KindRadio})

			Expect(m.kbar.Visible()).To(BeFalse())
			Expect(store.Fields()).To(HaveLen(1))
			Expect(store.Fields()[0].Options).To(Equal([]string{"Option 1"}))
		})

		It("should ask for the palette on alt+k", func() {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}, Alt: true})
			Expect(cmd).NotTo(BeNil())
		})
	})

	Describe("label box", func() {
		It("should update the focused field's label on every change", func() {
			m.Update(alt('1'))
			m.Update(runes("!"))
			Expect(store.Fields()[0].Label).To(Equal("text field!"))

			m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
			Expect(store.Fields()[0].Label).To(Equal("text field"))
		})

		It("should only touch the focused field", func() {
			m.Update(alt('1'))
			m.Update(alt('3'))
			m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
			m.Update(runes("?"))

			fields := store.Fields()
			Expect(fields[0].Label).To(Equal("text field?"))
			Expect(fields[1].Label).To(Equal("checkbox field"))
		})

		It("should ignore typing without fields", func() {
			m.Update(runes("abc"))
			Expect(store.Len()).To(Equal(0))
		})
	})

	Describe("add option trigger", func() {
		It("should append options to the focused dropdown", func() {
			m.Update(alt('2'))
			m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
			m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})

			Expect(store.Fields()[0].Options).To(Equal([]string{"Option 1", "Option 2", "Option 3"}))
		})

		It("should warn instead of adding options to a text field", func() {
			m.Update(alt('1'))
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})

			Expect(store.Fields()[0].Options).To(BeEmpty())
			Expect(cmd).NotTo(BeNil())
		})
	})

	Describe("focus", func() {
		It("should wrap around", func() {
			m.Update(alt('1'))
			m.Update(alt('1'))
			m.Update(alt('1'))

			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			Expect(m.focus).To(Equal(0))

			m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
			Expect(m.focus).To(Equal(2))
		})
	})

	Describe("status", func() {
		It("should show and hide status messages", func() {
			m.Update(event.SetStatusMsg{Message: "added text field", Status: event.Info})
			Expect(m.View()).To(ContainSubstring("added text field"))

			m.Update(event.HideStatusMsg{})
			Expect(m.View()).NotTo(ContainSubstring("added text field"))
		})
	})

	Describe("View", func() {
		It("should hint how to add the first field", func() {
			Expect(m.View()).To(ContainSubstring("No fields yet"))
		})

		It("should render a preview per field", func() {
			m.Update(alt('1'))
			m.Update(alt('4'))
			m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})

			view := m.View()
			Expect(view).To(ContainSubstring("Form Builder"))
			Expect(view).To(ContainSubstring("[ text field ]"))
			Expect(view).To(ContainSubstring("( ) Option 1"))
			Expect(view).To(ContainSubstring("( ) Option 2"))
			Expect(view).To(ContainSubstring("ctrl+o add option"))
		})

		It("should show the palette over the builder", func() {
			m.Update(kbar.ShowMsg{})
			Expect(m.View()).To(ContainSubstring("Add radio field"))
		})
	})

	It("should quit on ctrl+c", func() {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		Expect(cmd).NotTo(BeNil())
	})
})
