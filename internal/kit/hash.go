package kit

import (
	"fmt"

	"kit/internal/buffer"
	"kit/internal/generate"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	hashText = iota
	hashFile
)

type hashTool struct {
	form
	alg   generate.Algorithm
	files buffer.Cache
	file  *buffer.Buffer

	// recomputed on input, file load and algorithm change only
	digest string
}

func newHashTool(name string) *hashTool {
	alg, err := generate.ParseAlgorithm(name)
	if err != nil {
		Logger().Warn("unknown hash algorithm, using MD5", zap.String("algorithm", name))
		alg = generate.MD5
	}
	return &hashTool{
		form: newForm(
			[]string{"Text", "File"},
			[]string{"Enter text to hash", "Path to a file, then enter"},
		),
		alg: alg,
	}
}

func (t *hashTool) Name() string       { return "Hash Generator" }
func (t *hashTool) Slug() string       { return "hash" }
func (t *hashTool) Category() Category { return CategoryGenerators }

func (t *hashTool) Bindings() []key.Binding {
	return []key.Binding{
		binding("ctrl+e", "algorithm"),
		binding("enter", "load file"),
	}
}

func (t *hashTool) Options(m *Model) string {
	return "Algorithm: " + string(t.alg)
}

func (t *hashTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+e":
		t.alg = t.alg.Next()
		t.run()
		return true, nil
	case "enter":
		if m.focus != hashFile {
			return false, nil
		}
		name := t.value(hashFile)
		if name == "" {
			return true, m.notifyError("Enter a file path first")
		}
		b, err := t.files.Load(name)
		if err != nil {
			Logger().Warn("file load failed", zap.String("file", name), zap.Error(err))
			return true, m.notifyError(fmt.Sprintf("Failed to read file: %v", err))
		}
		t.file = b
		t.run()
		return true, m.notify(fmt.Sprintf("Loaded %s (%d bytes)", b.Filename(), b.Size()))
	}
	return false, nil
}

func (t *hashTool) Changed(m *Model, i int) tea.Cmd {
	if i == hashText {
		t.file = nil
		t.run()
	}
	return nil
}

func (t *hashTool) run() {
	if t.file != nil {
		t.digest = generate.Hash(t.alg, t.file.Data())
		return
	}
	t.digest = generate.HashText(t.alg, t.value(hashText))
}

func (t *hashTool) Outputs() []output {
	if t.digest == "" {
		return nil
	}
	return []output{{label: string(t.alg), value: t.digest}}
}
