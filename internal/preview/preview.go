// Package preview maps field definitions to the disabled, non-interactive
// controls shown to the builder's user, and draws those controls for the
// terminal and HTML front ends.
package preview

import (
	"slices"

	"github.com/flavono123/formbuilder/internal/form"
)

// Control is the kind of preview control.
type Control uint

const (
	ControlNone Control = iota
	ControlTextInput
	ControlSelect
	ControlCheckbox
	ControlRadioGroup
)

func (c Control) String() string {
	switch c {
	case ControlTextInput:
		return "text-input"
	case ControlSelect:
		return "select"
	case ControlCheckbox:
		return "checkbox"
	case ControlRadioGroup:
		return "radio-group"
	default:
		return "none"
	}
}

// Element is a front-end neutral description of a preview control.
type Element struct {
	Control     Control
	Placeholder string
	Choices     []string
	Disabled    bool
}

func (e Element) Empty() bool {
	return e.Control == ControlNone
}

// Render returns the preview of a field. It has no state and never fails;
// a field of an unrecognized kind yields an empty element.
func Render(f form.FieldDefinition) Element {
	switch f.Kind {
	case form.KindText:
		return Element{Control: ControlTextInput, Placeholder: f.Label, Disabled: true}
	case form.KindDropdown:
		return Element{Control: ControlSelect, Choices: slices.Clone(f.Options), Disabled: true}
	case form.KindCheckbox:
		return Element{Control: ControlCheckbox, Disabled: true}
	case form.KindRadio:
		return Element{Control: ControlRadioGroup, Choices: slices.Clone(f.Options), Disabled: true}
	default:
		return Element{}
	}
}

// RenderAll previews every field of a snapshot, in order.
func RenderAll(fields form.FieldList) []Element {
	out := make([]Element, 0, len(fields))
	for _, f := range fields {
		out = append(out, Render(f))
	}
	return out
}
