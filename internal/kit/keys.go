package kit

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Open  key.Binding
	Back  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
	Force key.Binding

	// tool page bindings shown after the globals
	extra []key.Binding
	view  View
}

func newKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev group")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next group")),
		Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Help:  key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?/f1", "help")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.view == ViewTool {
		return append([]key.Binding{k.Back, k.Next, k.Copy}, k.extra...)
	}
	return []key.Binding{k.Up, k.Down, k.Open, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Open},
		{k.Back, k.Next, k.Prev, k.Copy},
		{k.Help, k.Quit, k.Force},
	}
}
