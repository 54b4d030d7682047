package form

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown field kind")

// Kind is the type of a field definition.
type Kind uint

const (
	KindText Kind = iota
	KindDropdown
	KindCheckbox
	KindRadio
)

var kindNames = [...]string{
	KindText:     "text",
	KindDropdown: "dropdown",
	KindCheckbox: "checkbox",
	KindRadio:    "radio",
}

// Kinds returns every recognized kind in display order.
func Kinds() []Kind {
	return []Kind{KindText, KindDropdown, KindCheckbox, KindRadio}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsChoice reports whether fields of this kind carry options.
func (k Kind) IsChoice() bool {
	return k == KindDropdown || k == KindRadio
}

func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind maps a kind name, as shown by String, back to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
