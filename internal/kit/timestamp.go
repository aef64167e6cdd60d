package kit

import (
	"strconv"
	"time"

	"kit/internal/timestamp"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tsUnix = iota
	tsDate
)

type timestampTool struct {
	form
	t   time.Time
	rel string
	err error
}

func newTimestampTool() *timestampTool {
	return &timestampTool{
		form: newForm(
			[]string{"Unix", "Date"},
			[]string{"Seconds or milliseconds since epoch", timestamp.Layout},
		),
	}
}

func (t *timestampTool) Name() string       { return "Timestamp Converter" }
func (t *timestampTool) Slug() string       { return "timestamp" }
func (t *timestampTool) Category() Category { return CategoryConverters }

func (t *timestampTool) Bindings() []key.Binding {
	return []key.Binding{binding("ctrl+r", "now")}
}

func (t *timestampTool) Options(m *Model) string {
	return "Zone: " + m.location.String()
}

func (t *timestampTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "ctrl+r" {
		return false, nil
	}
	t.set(m, m.now())
	return true, nil
}

func (t *timestampTool) set(m *Model, now time.Time) {
	t.t, t.err = now, nil
	t.rel = timestamp.Relative(now, now)
	t.fields[tsUnix].SetValue(strconv.FormatInt(now.Unix(), 10))
	t.fields[tsDate].SetValue(timestamp.Format(now, m.location))
}

func (t *timestampTool) Changed(m *Model, i int) tea.Cmd {
	t.t, t.err = time.Time{}, nil
	in := t.value(i)

	if i == tsUnix {
		if in == "" {
			t.fields[tsDate].SetValue("")
			return nil
		}
		ts, err := timestamp.FromUnix(in)
		if err != nil {
			t.err = err
			t.fields[tsDate].SetValue("")
			return nil
		}
		t.t, t.rel = ts, timestamp.Relative(ts, m.now())
		t.fields[tsDate].SetValue(timestamp.Format(ts, m.location))
		return nil
	}

	if in == "" {
		t.fields[tsUnix].SetValue("")
		return nil
	}
	ts, err := timestamp.ParseDate(in, m.location)
	if err != nil {
		t.err = err
		t.fields[tsUnix].SetValue("")
		return nil
	}
	t.t, t.rel = ts, timestamp.Relative(ts, m.now())
	t.fields[tsUnix].SetValue(strconv.FormatInt(ts.Unix(), 10))
	return nil
}

func (t *timestampTool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Error", value: t.err.Error(), err: true}}
	}
	if t.t.IsZero() {
		return nil
	}
	return []output{
		{label: "UTC", value: t.t.UTC().Format(time.RFC3339)},
		{label: "Milliseconds", value: strconv.FormatInt(t.t.UnixMilli(), 10)},
		{label: "Relative", value: t.rel},
	}
}
