package kit

import (
	"fmt"

	"kit/internal/regex"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regexPattern = iota
	regexText
)

type regexTool struct {
	form
	flags   regex.Flags
	outputs []output
}

func newRegexTool() *regexTool {
	return &regexTool{
		form: newForm(
			[]string{"Pattern", "Test"},
			[]string{`e.g. \d+`, "Text to test against"},
		),
		flags: regex.Flags{Global: true},
	}
}

func (t *regexTool) Name() string       { return "Regex Tester" }
func (t *regexTool) Slug() string       { return "regex" }
func (t *regexTool) Category() Category { return CategoryConverters }

func (t *regexTool) Bindings() []key.Binding {
	return []key.Binding{
		binding("alt+g", "global"),
		binding("alt+i", "ignore case"),
		binding("alt+m", "multiline"),
	}
}

func (t *regexTool) Options(m *Model) string {
	return fmt.Sprintf("Flags: /%s/", t.flags)
}

func (t *regexTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "alt+g":
		t.flags.Global = !t.flags.Global
	case "alt+i":
		t.flags.IgnoreCase = !t.flags.IgnoreCase
	case "alt+m":
		t.flags.Multiline = !t.flags.Multiline
	default:
		return false, nil
	}
	t.run(m)
	return true, nil
}

func (t *regexTool) Changed(m *Model, i int) tea.Cmd {
	t.run(m)
	return nil
}

func (t *regexTool) Outputs() []output {
	return t.outputs
}

func (t *regexTool) run(m *Model) {
	t.outputs = nil
	pattern, text := t.value(regexPattern), t.value(regexText)
	if pattern == "" {
		return
	}

	res, err := regex.Match(pattern, text, t.flags)
	if err != nil {
		t.outputs = []output{{label: "Error", value: err.Error(), err: true}}
		return
	}
	if len(res.Matches) == 0 {
		t.outputs = []output{{label: "Matches", value: "No matches"}}
		return
	}

	t.outputs = []output{{
		label:  "Highlighted",
		value:  text,
		styled: regex.Highlight(text, res.Spans, func(s string) string { return m.styles.Match.Render(s) }),
	}}
	for i, s := range res.Matches {
		t.outputs = append(t.outputs, output{label: fmt.Sprintf("Match %d", i+1), value: s})
	}
}
