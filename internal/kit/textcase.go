package kit

import (
	"kit/internal/textcase"

	tea "github.com/charmbracelet/bubbletea"
)

type textCaseTool struct {
	form
}

func newTextCaseTool() *textCaseTool {
	return &textCaseTool{
		form: newForm([]string{"Text"}, []string{"Enter text to convert"}),
	}
}

func (t *textCaseTool) Name() string       { return "Text Case Converter" }
func (t *textCaseTool) Slug() string       { return "text-case" }
func (t *textCaseTool) Category() Category { return CategoryConverters }

func (t *textCaseTool) Changed(m *Model, i int) tea.Cmd { return nil }

func (t *textCaseTool) Outputs() []output {
	in := t.value(0)
	if in == "" {
		return nil
	}
	out := make([]output, len(textcase.All))
	for i, c := range textcase.All {
		out[i] = output{label: c.String(), value: textcase.Convert(in, c)}
	}
	return out
}
