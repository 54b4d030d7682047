package preview

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var inputTypes = regexp.MustCompile(`^(text|checkbox|radio)$`)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

// HTML returns the markup for an element. The output is restricted to the
// preview controls and their attributes, so user-entered labels and options
// can never carry markup of their own.
func HTML(e Element) string {
	var b strings.Builder

	switch e.Control {
	case ControlTextInput:
		b.WriteString(`<input type="text" placeholder="`)
		b.WriteString(html.EscapeString(e.Placeholder))
		b.WriteString(`"`)
		writeDisabled(&b, e.Disabled)
		b.WriteString(`>`)
	case ControlSelect:
		b.WriteString(`<select`)
		writeDisabled(&b, e.Disabled)
		b.WriteString(`>`)
		for _, c := range e.Choices {
			b.WriteString(`<option>`)
			b.WriteString(html.EscapeString(c))
			b.WriteString(`</option>`)
		}
		b.WriteString(`</select>`)
	case ControlCheckbox:
		b.WriteString(`<input type="checkbox"`)
		writeDisabled(&b, e.Disabled)
		b.WriteString(`>`)
	case ControlRadioGroup:
		for _, c := range e.Choices {
			b.WriteString(`<label><input type="radio"`)
			writeDisabled(&b, e.Disabled)
			b.WriteString(`> `)
			b.WriteString(html.EscapeString(c))
			b.WriteString(`</label>`)
		}
	default:
		return ""
	}

	return strings.TrimSpace(previewSanitizer().Sanitize(b.String()))
}

func writeDisabled(b *strings.Builder, disabled bool) {
	if disabled {
		b.WriteString(` disabled`)
	}
}

func previewSanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("input", "select", "option", "label")
		policy.AllowAttrs("type").Matching(inputTypes).OnElements("input")
		policy.AllowAttrs("placeholder").OnElements("input")
		policy.AllowAttrs("disabled").OnElements("input", "select")
		policy.AllowNoAttrs().OnElements("label", "option", "select")
		htmlPolicy = policy
	})
	return htmlPolicy
}
