package form

import (
	"fmt"
	"slices"
)

// FieldDefinition is one configurable entry of the form.
type FieldDefinition struct {
	ID      string   `json:"id"`
	Kind    Kind     `json:"kind"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// FieldList is the ordered set of fields; insertion order is display order.
type FieldList []FieldDefinition

func newField(id string, kind Kind) FieldDefinition {
	f := FieldDefinition{
		ID:      id,
		Kind:    kind,
		Label:   kind.String() + " field",
		Options: []string{},
	}
	if kind.IsChoice() {
		f.Options = append(f.Options, optionLabel(0))
	}
	return f
}

// optionLabel names the option appended after n existing ones.
func optionLabel(n int) string {
	return fmt.Sprintf("Option %d", n+1)
}

func (f FieldDefinition) clone() FieldDefinition {
	f.Options = slices.Clone(f.Options)
	if f.Options == nil {
		f.Options = []string{}
	}
	return f
}

func (l FieldList) clone() FieldList {
	out := make(FieldList, len(l))
	for i, f := range l {
		out[i] = f.clone()
	}
	return out
}

func (l FieldList) indexOf(id string) int {
	return slices.IndexFunc(l, func(f FieldDefinition) bool { return f.ID == id })
}
