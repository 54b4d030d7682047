package kbar

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/formbuilder/internal/form"
	"github.com/flavono123/formbuilder/internal/ui/event"
)

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var _ = Describe("Kbar", func() {
	var m *Model

	BeforeEach(func() {
		m = NewModel()
		m.Update(ShowMsg{})
	})

	It("should list every kind when the input is empty", func() {
		Expect(m.Visible()).To(BeTrue())
		Expect(m.searchResults).To(HaveLen(len(form.Kinds())))

		kind, ok := m.Hovered()
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(form.KindText))
	})

	It("should fuzzy filter kinds by input", func() {
		typeText(m, "rad")

		Expect(m.searchResults).To(HaveLen(1))
		kind, _ := m.Hovered()
		Expect(kind).To(Equal(form.KindRadio))
	})

	It("should emit an add field message on pick", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(event.AddFieldMsg{Kind: form.KindDropdown}))
	})

	It("should not move the cursor past the results", func() {
		for i := 0; i < 10; i++ {
			m.Update(tea.KeyMsg{Type: tea.KeyDown})
		}
		kind, _ := m.Hovered()
		Expect(kind).To(Equal(form.KindRadio))

		m.Update(tea.KeyMsg{Type: tea.KeyUp})
		kind, _ = m.Hovered()
		Expect(kind).To(Equal(form.KindCheckbox))
	})

	It("should do nothing on pick without matches", func() {
		typeText(m, "zzz")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd).To(BeNil())
		Expect(m.View()).To(ContainSubstring("No matching field kind."))
	})

	It("should ask to hide on esc and reset when hidden", func() {
		typeText(m, "dro")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		Expect(cmd()).To(Equal(HideMsg{}))

		m.Update(HideMsg{})
		Expect(m.Visible()).To(BeFalse())
		Expect(m.input.Value()).To(BeEmpty())
		Expect(m.searchResults).To(HaveLen(len(form.Kinds())))
	})

	It("should ignore keys while hidden", func() {
		m.Update(HideMsg{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd).To(BeNil())
	})

	Describe("Toggle", func() {
		It("should show when hidden and hide when visible", func() {
			Expect(Toggle(false)()).To(Equal(ShowMsg{}))
			Expect(Toggle(true)()).To(Equal(HideMsg{}))
		})
	})
})
