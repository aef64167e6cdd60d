package kit

import (
	"errors"
	"strings"
	"testing"

	"kit/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestModel(t *testing.T) (*Model, *fakeClipboard) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Defaults.Timezone = "UTC"
	clip := &fakeClipboard{}
	m, err := NewModel(cfg, clip)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, clip
}

func send(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	return send(m, tea.KeyMsg{Type: k})
}

func alt(m *Model, r rune) tea.Cmd {
	return send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true})
}

func openTool(t *testing.T, m *Model, slug string) tool {
	t.Helper()
	if err := m.OpenTool(slug); err != nil {
		t.Fatalf("OpenTool(%q) failed: %v", slug, err)
	}
	tl := m.currentTool()
	tl.Open(m)
	return tl
}

func findOutput(outputs []output, label string) (output, bool) {
	for _, o := range outputs {
		if o.label == label {
			return o, true
		}
	}
	return output{}, false
}

func TestNewModelRejectsUnknownTimezone(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.Timezone = "Nowhere/Atlantis"
	if _, err := NewModel(cfg, nil); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestSlugsAreUnique(t *testing.T) {
	m, _ := newTestModel(t)
	seen := make(map[string]bool)
	for _, s := range m.Slugs() {
		if seen[s] {
			t.Errorf("duplicate slug %q", s)
		}
		seen[s] = true
	}
	if !seen["number-base"] {
		t.Error("number-base tool missing")
	}
}

func TestHomeNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyDown)
	if m.selected != 1 {
		t.Errorf("selected = %d after down, want 1", m.selected)
	}
	press(m, tea.KeyUp)
	press(m, tea.KeyUp)
	if m.selected != 0 {
		t.Errorf("selected = %d after up, want 0", m.selected)
	}

	press(m, tea.KeyRight)
	if got := m.tools[m.selected].Category(); got != CategoryGenerators {
		t.Errorf("category after right = %v, want generators", got)
	}
	press(m, tea.KeyLeft)
	if m.selected != 0 {
		t.Errorf("selected = %d after left, want 0", m.selected)
	}
}

func TestHomeNavigationReachesViewers(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	if got := m.tools[m.selected].Category(); got != CategoryViewers {
		t.Fatalf("category after two rights = %v, want viewers", got)
	}
	press(m, tea.KeyRight)
	if got := m.tools[m.selected].Category(); got != CategoryViewers {
		t.Errorf("right past the last column moved to %v", got)
	}
	press(m, tea.KeyEnter)
	if m.view != ViewTool || m.currentTool().Slug() != "image-metadata-viewer" {
		t.Errorf("opened %q, want image-metadata-viewer", m.currentTool().Slug())
	}
}

func TestOpenAndCloseTool(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyEnter)
	if m.view != ViewTool || m.active != 0 {
		t.Fatalf("view = %v active = %d, want tool page 0", m.view, m.active)
	}
	if !m.tools[0].Inputs()[0].Focused() {
		t.Error("first input should be focused")
	}

	press(m, tea.KeyEsc)
	if m.view != ViewHome {
		t.Errorf("view = %v after esc, want home", m.view)
	}
}

func TestOpenToolUnknown(t *testing.T) {
	m, _ := newTestModel(t)
	if err := m.OpenTool("nope"); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestQuitFromHome(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestQKeyIsTextOnToolPage(t *testing.T) {
	m, _ := newTestModel(t)
	tl := openTool(t, m, "text-case")

	typeText(m, "q")
	if m.view != ViewTool {
		t.Fatal("q should not leave the tool page")
	}
	if got := tl.Inputs()[0].Value(); got != "q" {
		t.Errorf("input = %q, want q", got)
	}
}

func TestFocusCycles(t *testing.T) {
	m, _ := newTestModel(t)
	tl := openTool(t, m, "number-base")

	press(m, tea.KeyTab)
	if m.focus != 1 || !tl.Inputs()[1].Focused() || tl.Inputs()[0].Focused() {
		t.Errorf("focus = %d, want 1", m.focus)
	}
	press(m, tea.KeyShiftTab)
	press(m, tea.KeyShiftTab)
	if m.focus != 3 {
		t.Errorf("focus = %d after wrapping back, want 3", m.focus)
	}
}

func TestHelpScreen(t *testing.T) {
	m, _ := newTestModel(t)
	openTool(t, m, "base64")

	press(m, tea.KeyF1)
	if m.view != ViewHelp {
		t.Fatalf("view = %v, want help", m.view)
	}
	if !strings.Contains(m.View(), "url-safe") {
		t.Error("help should list the tool bindings")
	}
	press(m, tea.KeyEsc)
	if m.view != ViewTool {
		t.Errorf("view = %v after esc, want tool", m.view)
	}
}

func TestCopyNothing(t *testing.T) {
	m, clip := newTestModel(t)
	openTool(t, m, "number-base")

	press(m, tea.KeyCtrlY)
	if m.statusMsg != "Nothing to copy!" || !m.statusErr {
		t.Errorf("status = %q err=%v", m.statusMsg, m.statusErr)
	}
	if clip.text != "" {
		t.Errorf("clipboard = %q, want empty", clip.text)
	}
}

func TestCopyFocused(t *testing.T) {
	m, clip := newTestModel(t)
	openTool(t, m, "number-base")

	typeText(m, "255")
	press(m, tea.KeyTab)
	press(m, tea.KeyCtrlY)

	if clip.text != "FF" {
		t.Errorf("clipboard = %q, want FF", clip.text)
	}
	if m.statusMsg != "Copied to clipboard!" || m.statusErr {
		t.Errorf("status = %q err=%v", m.statusMsg, m.statusErr)
	}
}

func TestCopyOutput(t *testing.T) {
	m, clip := newTestModel(t)
	openTool(t, m, "text-case")

	typeText(m, "hello world")
	press(m, tea.KeyTab) // UPPERCASE
	press(m, tea.KeyCtrlY)

	if clip.text != "HELLO WORLD" {
		t.Errorf("clipboard = %q, want HELLO WORLD", clip.text)
	}
}

func TestCopyFailure(t *testing.T) {
	m, clip := newTestModel(t)
	clip.err = errors.New("no xclip")
	openTool(t, m, "number-base")

	typeText(m, "1")
	press(m, tea.KeyCtrlY)
	if m.statusMsg != "Failed to copy: no xclip" || !m.statusErr {
		t.Errorf("status = %q err=%v", m.statusMsg, m.statusErr)
	}
}

func TestStaleStatusClearIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m.notify("first")
	m.notify("second")

	m.Update(clearStatusMsg{seq: 1})
	if m.statusMsg != "second" {
		t.Errorf("status = %q, stale clear should be ignored", m.statusMsg)
	}
	m.Update(clearStatusMsg{seq: 2})
	if m.statusMsg != "" {
		t.Errorf("status = %q, want cleared", m.statusMsg)
	}
}

func TestViewRenders(t *testing.T) {
	m, _ := newTestModel(t)

	home := m.View()
	for _, want := range []string{"Converters & Parsers", "Generators", "Viewers & Misc", "Number Base Converter", "Password Generator", "API Directory"} {
		if !strings.Contains(home, want) {
			t.Errorf("home view missing %q", want)
		}
	}

	openTool(t, m, "number-base")
	typeText(m, "255")
	page := m.View()
	for _, want := range []string{"Hexadecimal", "FF", "377", "11111111"} {
		if !strings.Contains(page, want) {
			t.Errorf("tool view missing %q", want)
		}
	}
}

func TestViewBeforeResize(t *testing.T) {
	m, err := NewModel(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}
