package kit

import (
	"fmt"
	"strconv"
	"strings"

	"kit/internal/generate"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type passwordTool struct {
	form
	opts     generate.PasswordOptions
	password string
	err      error
}

func newPasswordTool(length int) *passwordTool {
	t := &passwordTool{
		form: newForm([]string{"Length"}, []string{fmt.Sprintf("%d-%d", generate.MinPasswordLength, generate.MaxPasswordLength)}),
		opts: generate.PasswordOptions{
			Length:  generate.ClampLength(length),
			Upper:   true,
			Lower:   true,
			Numbers: true,
			Symbols: true,
		},
	}
	t.fields[0].CharLimit = 2
	t.fields[0].SetValue(strconv.Itoa(t.opts.Length))
	return t
}

func (t *passwordTool) Name() string       { return "Password Generator" }
func (t *passwordTool) Slug() string       { return "password" }
func (t *passwordTool) Category() Category { return CategoryGenerators }

func (t *passwordTool) Bindings() []key.Binding {
	return []key.Binding{
		binding("alt+u", "upper"),
		binding("alt+l", "lower"),
		binding("alt+n", "numbers"),
		binding("alt+s", "symbols"),
		binding("ctrl+r", "regenerate"),
	}
}

func (t *passwordTool) Options(m *Model) string {
	return strings.Join([]string{
		m.toggle("Upper", t.opts.Upper),
		m.toggle("Lower", t.opts.Lower),
		m.toggle("Numbers", t.opts.Numbers),
		m.toggle("Symbols", t.opts.Symbols),
	}, "  ")
}

func (t *passwordTool) Open(m *Model) tea.Cmd {
	return t.generate(m)
}

func (t *passwordTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "alt+u":
		t.opts.Upper = !t.opts.Upper
	case "alt+l":
		t.opts.Lower = !t.opts.Lower
	case "alt+n":
		t.opts.Numbers = !t.opts.Numbers
	case "alt+s":
		t.opts.Symbols = !t.opts.Symbols
	case "ctrl+r":
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if r < '0' || r > '9' {
					return true, nil
				}
			}
		}
		return false, nil
	}
	return true, t.generate(m)
}

func (t *passwordTool) Changed(m *Model, i int) tea.Cmd {
	n, err := strconv.Atoi(t.value(0))
	if err != nil {
		return nil
	}
	t.opts.Length = generate.ClampLength(n)
	return t.generate(m)
}

func (t *passwordTool) generate(m *Model) tea.Cmd {
	t.password, t.err = generate.Password(t.opts)
	if t.err != nil {
		return m.notifyError(t.err.Error())
	}
	return nil
}

func (t *passwordTool) Outputs() []output {
	if t.err != nil {
		return []output{
			{label: "Password", value: t.err.Error(), err: true},
			{label: "Strength", value: fmt.Sprintf("%s (0)", generate.StrengthLabel(0))},
		}
	}
	if t.password == "" {
		return nil
	}
	score := generate.Strength(t.password, t.opts)
	return []output{
		{label: "Password", value: t.password},
		{label: "Strength", value: fmt.Sprintf("%s (%d)", generate.StrengthLabel(score), score)},
	}
}
