package kit

import (
	"strconv"
	"strings"

	"kit/internal/gradient"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	gradAngle = iota
	gradCenter
	gradStops
)

// previewWidth is the number of cells in the gradient preview bar.
const previewWidth = 48

type gradientTool struct {
	form
	g       gradient.Gradient
	css     string
	preview string
	err     error
}

func newGradientTool() *gradientTool {
	t := &gradientTool{
		form: newForm(
			[]string{"Angle", "Center", "Stops"},
			[]string{"0 to 360", "x y, like 50 50", gradient.DefaultStops},
		),
		g: gradient.Default(),
	}
	t.fields[gradAngle].SetValue(strconv.Itoa(t.g.Angle))
	t.fields[gradCenter].SetValue("50 50")
	t.fields[gradStops].SetValue(gradient.DefaultStops)
	t.run()
	return t
}

func (t *gradientTool) Name() string       { return "Gradient Generator" }
func (t *gradientTool) Slug() string       { return "gradient" }
func (t *gradientTool) Category() Category { return CategoryGenerators }

func (t *gradientTool) Bindings() []key.Binding {
	return []key.Binding{binding("ctrl+e", "linear / radial")}
}

func (t *gradientTool) Options(m *Model) string {
	return "Type: " + t.g.Kind.String()
}

func (t *gradientTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "ctrl+e" {
		return false, nil
	}
	if t.g.Kind == gradient.Linear {
		t.g.Kind = gradient.Radial
	} else {
		t.g.Kind = gradient.Linear
	}
	t.run()
	return true, nil
}

func (t *gradientTool) Changed(m *Model, i int) tea.Cmd {
	t.run()
	return nil
}

func (t *gradientTool) run() {
	t.css, t.preview, t.err = "", "", nil
	g := t.g

	var err error
	if g.Kind == gradient.Linear {
		g.Angle, err = gradient.ParseAngle(t.value(gradAngle))
	} else {
		g.X, g.Y, err = gradient.ParseCenter(t.value(gradCenter))
	}
	if err == nil {
		g.Stops, err = gradient.ParseStops(t.value(gradStops))
	}
	if err != nil {
		t.err = err
		return
	}
	t.g = g
	t.css = g.CSS()

	var sb strings.Builder
	for _, c := range g.Samples(previewWidth) {
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	t.preview = sb.String()
}

func (t *gradientTool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Error", value: t.err.Error(), err: true}}
	}
	return []output{
		{label: "CSS", value: t.css},
		{label: "Preview", value: t.css, styled: t.preview},
	}
}
