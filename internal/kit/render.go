package kit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderLegend())
	b.WriteString("\n")

	switch m.view {
	case ViewHelp:
		b.WriteString(m.renderHelp())
	case ViewTool:
		b.WriteString(m.renderTool())
	default:
		b.WriteString(m.renderHome())
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.statusMsg))
		} else {
			b.WriteString(m.styles.Success.Render(m.statusMsg))
		}
	}

	return b.String()
}

func (m *Model) renderLegend() string {
	items := []string{m.styles.Title.Render("kit")}
	if t := m.currentTool(); t != nil {
		items = append(items, m.styles.CardTitle.Render(t.Name()))
		items = append(items, m.styles.LegendKey.Render("ESC")+m.styles.Legend.Render(" Back"))
	} else {
		items = append(items, m.styles.LegendKey.Render("Q")+m.styles.Legend.Render("uit"))
	}
	items = append(items, m.styles.LegendKey.Render("?")+m.styles.Legend.Render(" Help"))

	legend := strings.Join(items, m.styles.Legend.Render(" | "))
	return m.styles.Legend.Width(m.width).Render(legend)
}

func (m *Model) renderHome() string {
	var cards []string
	for _, c := range Categories {
		cards = append(cards, m.renderCard(c))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderCard(c Category) string {
	var lines []string
	lines = append(lines, m.styles.CardTitle.Render(c.String()))
	lines = append(lines, m.styles.Label.Render(c.Description()))
	lines = append(lines, "")

	active := false
	for i, t := range m.tools {
		if t.Category() != c {
			continue
		}
		if i == m.selected {
			active = true
			lines = append(lines, m.styles.Selected.Render("> "+t.Name()))
		} else {
			lines = append(lines, "  "+m.styles.Value.Render(t.Name()))
		}
	}

	style := m.styles.Card
	if active {
		style = m.styles.CardActive
	}
	return style.Width(36).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderTool() string {
	t := m.currentTool()
	if t == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(t.Name()))
	if opts := t.Options(m); opts != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.Label.Render(opts))
	}
	b.WriteString("\n\n")

	labels := t.Labels()
	width := labelWidth(labels, t.Outputs())
	for i, in := range t.Inputs() {
		b.WriteString(m.renderLabel(labels[i], width, i == m.focus))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	outputs := t.Outputs()
	if len(outputs) > 0 {
		b.WriteString("\n")
	}
	indent := strings.Repeat(" ", width+3)
	for i, o := range outputs {
		focused := len(t.Inputs())+i == m.focus
		b.WriteString(m.renderLabel(o.label, width, focused))

		text := o.value
		if o.styled != "" {
			text = o.styled
		}
		style := m.styles.Value
		if o.err {
			style = m.styles.Error
		}
		lines := strings.Split(text, "\n")
		for j, line := range lines {
			if j > 0 {
				b.WriteString(indent)
			}
			if o.styled != "" {
				b.WriteString(line)
			} else {
				b.WriteString(style.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderLabel(label string, width int, focused bool) string {
	marker := "  "
	style := m.styles.Label
	if focused {
		marker = "> "
		style = m.styles.Focused
	}
	return marker + style.Render(fmt.Sprintf("%-*s", width, label)) + " "
}

// toggle renders an option switch on the options line.
func (m *Model) toggle(name string, on bool) string {
	if on {
		return m.styles.Enabled.Render("[x] " + name)
	}
	return m.styles.Disabled.Render("[ ] " + name)
}

func labelWidth(labels []string, outputs []output) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	for _, o := range outputs {
		w = max(w, lipgloss.Width(o.label))
	}
	return w
}

func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("HELP - kit developer utilities"))
	b.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")

	if t := m.currentToolFor(m.prevView); t != nil && len(t.Bindings()) > 0 {
		b.WriteString(m.styles.CardTitle.Render(strings.ToUpper(t.Name())))
		b.WriteString("\n")
		for _, kb := range t.Bindings() {
			hk := kb.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.styles.HelpKey.Render(fmt.Sprintf("%-8s", hk.Key)),
				m.styles.HelpDesc.Render(hk.Desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Label.Render("Press ESC or ? to close this help screen."))
	return "\n" + m.styles.Border.Render(b.String())
}

// currentToolFor is the open tool when the help screen was entered from a
// tool page.
func (m *Model) currentToolFor(v View) tool {
	if v != ViewTool || m.active < 0 || m.active >= len(m.tools) {
		return nil
	}
	return m.tools[m.active]
}
