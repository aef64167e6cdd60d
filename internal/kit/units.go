package kit

import (
	"fmt"

	"kit/internal/units"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	unitValue = iota
	unitFrom
	unitTo
)

type unitTool struct {
	form
	measure int
	result  string
	all     []output
	err     error
}

func newUnitTool() *unitTool {
	t := &unitTool{
		form: newForm(
			[]string{"Value", "From", "To"},
			[]string{"Enter a number", "Unit, alt+f to cycle", "Unit, alt+t to cycle"},
		),
	}
	t.reset()
	return t
}

func (t *unitTool) Name() string       { return "Unit Converter" }
func (t *unitTool) Slug() string       { return "unit-converter" }
func (t *unitTool) Category() Category { return CategoryConverters }

func (t *unitTool) Bindings() []key.Binding {
	return []key.Binding{
		binding("ctrl+e", "measure"),
		binding("alt+f", "from unit"),
		binding("alt+t", "to unit"),
	}
}

func (t *unitTool) current() *units.Measure {
	return &units.Measures[t.measure]
}

func (t *unitTool) Options(m *Model) string {
	return "Measure: " + t.current().Title()
}

// reset picks the first two units of the measure and clears the value.
func (t *unitTool) reset() {
	us := t.current().Units
	t.fields[unitValue].SetValue("")
	t.fields[unitFrom].SetValue(us[0].Abbr)
	t.fields[unitTo].SetValue(us[min(1, len(us)-1)].Abbr)
	t.run()
}

func (t *unitTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+e":
		t.measure = (t.measure + 1) % len(units.Measures)
		t.reset()
	case "alt+f":
		t.fields[unitFrom].SetValue(t.current().Next(t.value(unitFrom)).Abbr)
		t.run()
	case "alt+t":
		t.fields[unitTo].SetValue(t.current().Next(t.value(unitTo)).Abbr)
		t.run()
	default:
		return false, nil
	}
	return true, nil
}

func (t *unitTool) Changed(m *Model, i int) tea.Cmd {
	t.run()
	return nil
}

func (t *unitTool) run() {
	t.result, t.all, t.err = "", nil, nil
	raw := t.value(unitValue)
	if raw == "" {
		return
	}
	v, err := units.ParseValue(raw)
	if err != nil {
		t.err = err
		return
	}
	ms := t.current()
	r, err := ms.Convert(v, t.value(unitFrom), t.value(unitTo))
	if err != nil {
		t.err = err
		return
	}
	to, _ := ms.Find(t.value(unitTo))
	t.result = units.Format(r)
	t.all = append(t.all, output{label: "Result", value: t.result, styled: t.result + " " + to.Abbr})

	for _, u := range ms.Units {
		r, err := ms.Convert(v, t.value(unitFrom), u.Abbr)
		if err != nil {
			continue
		}
		t.all = append(t.all, output{
			label:  u.Abbr,
			value:  units.Format(r),
			styled: fmt.Sprintf("%s  %s", units.Format(r), u.Name),
		})
	}
}

func (t *unitTool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Error", value: t.err.Error(), err: true}}
	}
	return t.all
}
