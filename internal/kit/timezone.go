package kit

import (
	"kit/internal/timestamp"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tzTime = iota
	tzSource
	tzTarget
)

type timezoneTool struct {
	form
	converted string
	diff      string
	err       error
}

func newTimezoneTool() *timezoneTool {
	t := &timezoneTool{
		form: newForm(
			[]string{"Time", "Source", "Target"},
			[]string{timestamp.Layout, "UTC", "America/New_York"},
		),
	}
	t.fields[tzSource].SetValue("UTC")
	t.fields[tzTarget].SetValue("America/New_York")
	return t
}

func (t *timezoneTool) Name() string       { return "Timezone Converter" }
func (t *timezoneTool) Slug() string       { return "timezone-converter" }
func (t *timezoneTool) Category() Category { return CategoryConverters }

func (t *timezoneTool) Bindings() []key.Binding {
	return []key.Binding{
		binding("ctrl+r", "now"),
		binding("ctrl+e", "next zone"),
		binding("alt+s", "swap zones"),
	}
}

// Open fills in the current time the first time the page is shown.
func (t *timezoneTool) Open(m *Model) tea.Cmd {
	if t.value(tzTime) == "" {
		t.now(m)
	}
	return nil
}

func (t *timezoneTool) now(m *Model) {
	src, err := timestamp.LoadLocation(t.value(tzSource))
	if err != nil {
		src = m.location
	}
	t.fields[tzTime].SetValue(m.now().In(src).Format(timestamp.Layout))
	t.run()
}

func (t *timezoneTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		t.now(m)
	case "ctrl+e":
		// cycles whichever zone field has focus, the target otherwise
		i := tzTarget
		if m.focus == tzSource {
			i = tzSource
		}
		t.fields[i].SetValue(timestamp.NextZone(t.value(i)))
		t.fields[i].CursorEnd()
		t.run()
	case "alt+s":
		src, dst := t.value(tzSource), t.value(tzTarget)
		t.fields[tzSource].SetValue(dst)
		t.fields[tzTarget].SetValue(src)
		t.run()
	default:
		return false, nil
	}
	return true, nil
}

func (t *timezoneTool) Changed(m *Model, i int) tea.Cmd {
	t.run()
	return nil
}

func (t *timezoneTool) run() {
	t.converted, t.diff, t.err = "", "", nil
	if t.value(tzTime) == "" {
		return
	}
	out, err := timestamp.ConvertZone(t.value(tzTime), t.value(tzSource), t.value(tzTarget))
	if err != nil {
		t.err = err
		return
	}
	// both zones loaded fine inside ConvertZone
	src, _ := timestamp.LoadLocation(t.value(tzSource))
	t.converted = out.Format(timestamp.ZoneLayout)
	t.diff = timestamp.OffsetDiff(out, src, out.Location())
}

func (t *timezoneTool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Error", value: t.err.Error(), err: true}}
	}
	if t.converted == "" {
		return nil
	}
	return []output{
		{label: "Converted", value: t.converted},
		{label: "Difference", value: t.diff},
	}
}
