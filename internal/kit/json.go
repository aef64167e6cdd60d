package kit

import (
	"errors"

	"kit/internal/jsonfmt"

	tea "github.com/charmbracelet/bubbletea"
)

type jsonTool struct {
	form
	outputs []output
}

func newJSONTool() *jsonTool {
	return &jsonTool{
		form: newForm([]string{"JSON"}, []string{`{"paste": "json here"}`}),
	}
}

func (t *jsonTool) Name() string       { return "JSON Formatter" }
func (t *jsonTool) Slug() string       { return "json" }
func (t *jsonTool) Category() Category { return CategoryConverters }

func (t *jsonTool) Outputs() []output {
	return t.outputs
}

func (t *jsonTool) Changed(m *Model, i int) tea.Cmd {
	t.outputs = nil
	in := t.value(0)

	formatted, err := jsonfmt.Format(in, 2)
	if errors.Is(err, jsonfmt.ErrEmpty) {
		return nil
	}
	if err != nil {
		t.outputs = []output{{label: "Error", value: err.Error(), err: true}}
		return nil
	}

	minified, _ := jsonfmt.Minify(in)
	t.outputs = []output{
		{label: "Formatted", value: formatted},
		{label: "Minified", value: minified},
	}
	if y, err := jsonfmt.ToYAML(in); err == nil {
		t.outputs = append(t.outputs, output{label: "YAML", value: y})
	}
	return nil
}
