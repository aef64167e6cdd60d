package kit

import (
	"fmt"
	"time"

	"kit/internal/clipboard"
	"kit/internal/config"
	"kit/internal/timestamp"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type View int

const (
	ViewHome View = iota
	ViewTool
	ViewHelp
)

type clearStatusMsg struct {
	seq int
}

type Model struct {
	view     View
	prevView View
	tools    []tool
	selected int // home grid selection
	active   int // open tool
	focus    int // entry index on the tool page
	width    int
	height   int
	config   *config.Config
	styles   *config.Styles
	location *time.Location
	clip     clipboard.Writer
	keys     keyMap
	help     help.Model
	now      func() time.Time

	statusMsg string
	statusErr bool
	statusSeq int
}

func NewModel(cfg *config.Config, clip clipboard.Writer) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	loc, err := timestamp.LoadLocation(cfg.Defaults.Timezone)
	if err != nil {
		return nil, err
	}

	m := &Model{
		view:     ViewHome,
		config:   cfg,
		styles:   config.NewStyles(&cfg.Theme),
		location: loc,
		clip:     clip,
		keys:     newKeyMap(),
		help:     help.New(),
		now:      time.Now,
	}
	m.tools = []tool{
		newNumbaseTool(),
		newBase64Tool(cfg.Defaults.Base64URLSafe),
		newURLTool(),
		newJSONTool(),
		newJWTTool(),
		newTextCaseTool(),
		newTimestampTool(),
		newTimezoneTool(),
		newCronTool(),
		newUnitTool(),
		newRegexTool(),
		newHashTool(cfg.Defaults.HashAlgorithm),
		newUUIDTool(cfg.Defaults.UUIDCount, cfg.Defaults.UUIDVersion),
		newPasswordTool(cfg.Defaults.PasswordLength),
		newQRTool(),
		newGradientTool(),
		newImageMetaTool(),
		newAPIDirTool(),
	}

	return m, nil
}

// Slugs lists the tool identifiers accepted by OpenTool.
func (m *Model) Slugs() []string {
	slugs := make([]string, len(m.tools))
	for i, t := range m.tools {
		slugs[i] = t.Slug()
	}
	return slugs
}

// OpenTool starts the program on the tool page named by slug.
func (m *Model) OpenTool(slug string) error {
	for i, t := range m.tools {
		if t.Slug() == slug {
			m.selected = i
			m.enterTool(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tool %q", slug)
}

func (m *Model) currentTool() tool {
	if m.view != ViewTool || m.active < 0 || m.active >= len(m.tools) {
		return nil
	}
	return m.tools[m.active]
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if t := m.currentTool(); t != nil {
		cmds = append(cmds, t.Open(m))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeInputs()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input internals
	if t := m.currentTool(); t != nil {
		if in := m.focusedInput(t); in != nil {
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) resizeInputs() {
	w := m.width - 24
	if w < 10 {
		w = 10
	}
	for _, t := range m.tools {
		for _, in := range t.Inputs() {
			in.Width = w
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Force) {
		return m, tea.Quit
	}

	switch m.view {
	case ViewHelp:
		return m.handleHelpKey(msg)
	case ViewTool:
		return m.handleToolKey(msg)
	default:
		return m.handleHomeKey(msg)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
		m.view = m.prevView
	}
	return m, nil
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.prevView = m.view
		m.view = ViewHelp
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.tools)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Left):
		m.selected = m.firstOfCategory(m.tools[m.selected].Category() - 1)
	case key.Matches(msg, m.keys.Right):
		m.selected = m.firstOfCategory(m.tools[m.selected].Category() + 1)
	case key.Matches(msg, m.keys.Open):
		return m, m.openTool(m.selected)
	}
	return m, nil
}

// firstOfCategory returns the index of the first tool in c, or the current
// selection when c has no tools.
func (m *Model) firstOfCategory(c Category) int {
	for i, t := range m.tools {
		if t.Category() == c {
			return i
		}
	}
	return m.selected
}

func (m *Model) openTool(i int) tea.Cmd {
	m.enterTool(i)
	return m.tools[i].Open(m)
}

func (m *Model) enterTool(i int) {
	m.view = ViewTool
	m.active = i
	m.focus = 0
	m.statusMsg = ""
	m.keys.view = ViewTool
	m.keys.extra = m.tools[i].Bindings()

	Logger().Info("tool opened", zap.String("tool", m.tools[i].Slug()))
	m.applyFocus()
}

func (m *Model) closeTool() {
	if t := m.currentTool(); t != nil {
		for _, in := range t.Inputs() {
			in.Blur()
		}
	}
	m.view = ViewHome
	m.statusMsg = ""
	m.keys.view = ViewHome
	m.keys.extra = nil
}

func (m *Model) handleToolKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.currentTool()
	if t == nil {
		m.view = ViewHome
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeTool()
		return m, nil
	case msg.String() == "f1":
		m.prevView = m.view
		m.view = ViewHelp
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyFocused()
	}

	if handled, cmd := t.Key(m, msg); handled {
		return m, cmd
	}

	in := m.focusedInput(t)
	if in == nil {
		return m, nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		return m, tea.Batch(cmd, t.Changed(m, m.focus))
	}
	return m, cmd
}

func (m *Model) entryCount(t tool) int {
	return len(t.Inputs()) + len(t.Outputs())
}

func (m *Model) moveFocus(delta int) {
	t := m.currentTool()
	if t == nil {
		return
	}
	n := m.entryCount(t)
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
	m.applyFocus()
}

func (m *Model) applyFocus() {
	t := m.currentTool()
	if t == nil {
		return
	}
	if n := m.entryCount(t); m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	for i, in := range t.Inputs() {
		if i == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *Model) focusedInput(t tool) *textinput.Model {
	inputs := t.Inputs()
	if m.focus >= 0 && m.focus < len(inputs) {
		return inputs[m.focus]
	}
	return nil
}

// focusedText is the literal text of the focused entry.
func (m *Model) focusedText() string {
	t := m.currentTool()
	if t == nil {
		return ""
	}
	inputs := t.Inputs()
	if m.focus < len(inputs) {
		return inputs[m.focus].Value()
	}
	outputs := t.Outputs()
	if i := m.focus - len(inputs); i >= 0 && i < len(outputs) {
		return outputs[i].value
	}
	return ""
}

func (m *Model) copyFocused() tea.Cmd {
	text := m.focusedText()
	if text == "" {
		return m.notifyError("Nothing to copy!")
	}
	if m.clip == nil {
		return m.notifyError("Clipboard is not available")
	}
	if err := m.clip.WriteAll(text); err != nil {
		Logger().Warn("clipboard write failed", zap.Error(err))
		return m.notifyError(fmt.Sprintf("Failed to copy: %v", err))
	}
	return m.notify("Copied to clipboard!")
}

func (m *Model) notify(text string) tea.Cmd {
	return m.setStatus(text, false)
}

func (m *Model) notifyError(text string) tea.Cmd {
	return m.setStatus(text, true)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.statusMsg = text
	m.statusErr = isErr

	seq := m.statusSeq
	d := time.Duration(m.config.Defaults.NotifySeconds) * time.Second
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
