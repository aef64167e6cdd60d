package kit

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Category int

const (
	CategoryConverters Category = iota
	CategoryGenerators
	CategoryViewers
)

// Categories is the column order of the home grid.
var Categories = []Category{CategoryConverters, CategoryGenerators, CategoryViewers}

func (c Category) String() string {
	switch c {
	case CategoryGenerators:
		return "Generators"
	case CategoryViewers:
		return "Viewers & Misc"
	}
	return "Converters & Parsers"
}

func (c Category) Description() string {
	switch c {
	case CategoryGenerators:
		return "Produce IDs, passwords, gradients, and more."
	case CategoryViewers:
		return "Inspect metadata and explore APIs."
	}
	return "Transform and decode data formats quickly."
}

// output is a read-only entry on a tool page. styled, when set, is shown
// instead of value; copying always uses value.
type output struct {
	label  string
	value  string
	styled string
	err    bool
}

// tool is one utility page. Inputs come first in focus order, then outputs.
type tool interface {
	Name() string
	Slug() string
	Category() Category
	Inputs() []*textinput.Model
	Labels() []string
	Outputs() []output
	// Changed runs after a keystroke modified input i.
	Changed(m *Model, i int) tea.Cmd
	// Key sees every key before the focused input does.
	Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	Options(m *Model) string
	Bindings() []key.Binding
	Open(m *Model) tea.Cmd
}

// form carries the text inputs of a tool and no-op defaults for the rest of
// the interface.
type form struct {
	fields []textinput.Model
	labels []string
}

func newForm(labels, placeholders []string) form {
	f := form{labels: labels}
	for i := range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.Width = 60
		f.fields = append(f.fields, ti)
	}
	return f
}

func (f *form) Inputs() []*textinput.Model {
	inputs := make([]*textinput.Model, len(f.fields))
	for i := range f.fields {
		inputs[i] = &f.fields[i]
	}
	return inputs
}

func (f *form) Labels() []string {
	return f.labels
}

func (f *form) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return false, nil
}

func (f *form) Options(m *Model) string {
	return ""
}

func (f *form) Bindings() []key.Binding {
	return nil
}

func (f *form) Open(m *Model) tea.Cmd {
	return nil
}

func (f *form) Outputs() []output {
	return nil
}

func (f *form) value(i int) string {
	return f.fields[i].Value()
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help))
}
