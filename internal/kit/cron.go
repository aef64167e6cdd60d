package kit

import (
	"strings"

	"kit/internal/cronexpr"
	"kit/internal/timestamp"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// nextRuns is how many upcoming activations the cron page lists.
const nextRuns = 5

type cronTool struct {
	form
	example int
	desc    string
	runs    string
	err     error
}

func newCronTool() *cronTool {
	return &cronTool{
		form: newForm(
			[]string{"Expression"},
			[]string{"* * * * *"},
		),
		example: -1,
	}
}

func (t *cronTool) Name() string       { return "Cron Expression Parser" }
func (t *cronTool) Slug() string       { return "cron-parser" }
func (t *cronTool) Category() Category { return CategoryConverters }

func (t *cronTool) Bindings() []key.Binding {
	return []key.Binding{binding("ctrl+e", "example")}
}

func (t *cronTool) Options(m *Model) string {
	if t.example < 0 {
		return "Zone: " + m.location.String()
	}
	return "Example: " + cronexpr.Examples[t.example].Label
}

func (t *cronTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "ctrl+e" {
		return false, nil
	}
	t.example = (t.example + 1) % len(cronexpr.Examples)
	t.fields[0].SetValue(cronexpr.Examples[t.example].Expr)
	t.fields[0].CursorEnd()
	t.run(m)
	return true, nil
}

func (t *cronTool) Changed(m *Model, i int) tea.Cmd {
	t.example = -1
	t.run(m)
	return nil
}

func (t *cronTool) run(m *Model) {
	t.desc, t.runs, t.err = "", "", nil
	expr := t.value(0)
	if strings.TrimSpace(expr) == "" {
		return
	}
	t.desc, t.err = cronexpr.Describe(expr)
	if t.err != nil {
		return
	}
	// The description library accepts a few forms the scheduler does not,
	// so the run list is simply left out for those.
	runs, err := cronexpr.Next(expr, m.now().In(m.location), nextRuns)
	if err != nil {
		return
	}
	lines := make([]string, len(runs))
	for i, r := range runs {
		lines[i] = r.Format(timestamp.ZoneLayout)
	}
	t.runs = strings.Join(lines, "\n")
}

func (t *cronTool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Error", value: t.err.Error(), err: true}}
	}
	if t.desc == "" {
		return nil
	}
	out := []output{{label: "Description", value: t.desc}}
	if t.runs != "" {
		out = append(out, output{label: "Next runs", value: t.runs})
	}
	return out
}
