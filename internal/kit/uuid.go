package kit

import (
	"fmt"
	"strconv"
	"strings"

	"kit/internal/generate"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type uuidTool struct {
	form
	version int
	ids     []string
	err     error
}

func newUUIDTool(count, version int) *uuidTool {
	t := &uuidTool{
		form:    newForm([]string{"Count"}, []string{"1-100"}),
		version: version,
	}
	t.fields[0].CharLimit = 3
	t.fields[0].SetValue(strconv.Itoa(count))
	return t
}

func (t *uuidTool) Name() string       { return "UUID Generator" }
func (t *uuidTool) Slug() string       { return "uuid" }
func (t *uuidTool) Category() Category { return CategoryGenerators }

func (t *uuidTool) Bindings() []key.Binding {
	return []key.Binding{
		binding("ctrl+e", "v4/v7"),
		binding("ctrl+r", "regenerate"),
	}
}

func (t *uuidTool) Options(m *Model) string {
	return fmt.Sprintf("Version: v%d", t.version)
}

func (t *uuidTool) Open(m *Model) tea.Cmd {
	t.generate()
	return nil
}

func (t *uuidTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+e":
		if t.version == 4 {
			t.version = 7
		} else {
			t.version = 4
		}
	case "ctrl+r":
	default:
		// digits only
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if r < '0' || r > '9' {
					return true, nil
				}
			}
		}
		return false, nil
	}
	t.generate()
	return true, nil
}

func (t *uuidTool) Changed(m *Model, i int) tea.Cmd {
	if t.value(0) == "" {
		return nil
	}
	t.generate()
	return nil
}

func (t *uuidTool) count() int {
	n, err := strconv.Atoi(t.value(0))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (t *uuidTool) generate() {
	t.ids, t.err = generate.UUIDs(t.count(), t.version)
}

func (t *uuidTool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Error", value: t.err.Error(), err: true}}
	}
	if len(t.ids) == 0 {
		return nil
	}
	out := []output{{label: "All", value: strings.Join(t.ids, "\n")}}
	if len(t.ids) > 1 {
		for i, id := range t.ids {
			out = append(out, output{label: fmt.Sprintf("#%d", i+1), value: id})
		}
	}
	return out
}
