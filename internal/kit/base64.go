package kit

import (
	"fmt"

	"kit/internal/buffer"
	"kit/internal/codec"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	base64Text = iota
	base64File
)

type base64Tool struct {
	form
	decode  bool
	urlSafe bool
	files   buffer.Cache
	file    *buffer.Buffer // set while the output reflects the loaded file

	result string
	err    error
}

func newBase64Tool(urlSafe bool) *base64Tool {
	return &base64Tool{
		form: newForm(
			[]string{"Text", "File"},
			[]string{"Enter text to encode or decode", "Path to a file, then enter"},
		),
		urlSafe: urlSafe,
	}
}

func (t *base64Tool) Name() string       { return "Base64 Encoder/Decoder" }
func (t *base64Tool) Slug() string       { return "base64" }
func (t *base64Tool) Category() Category { return CategoryConverters }

func (t *base64Tool) Bindings() []key.Binding {
	return []key.Binding{
		binding("ctrl+e", "encode/decode"),
		binding("ctrl+u", "url-safe"),
		binding("enter", "load file"),
	}
}

func (t *base64Tool) Options(m *Model) string {
	mode := "Encode"
	if t.decode {
		mode = "Decode"
	}
	return "Mode: " + mode + "  " + m.toggle("URL-safe", t.urlSafe)
}

func (t *base64Tool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+e":
		t.decode = !t.decode
	case "ctrl+u":
		t.urlSafe = !t.urlSafe
	case "enter":
		if m.focus != base64File {
			return false, nil
		}
		return true, t.load(m)
	default:
		return false, nil
	}
	t.run()
	return true, nil
}

func (t *base64Tool) Changed(m *Model, i int) tea.Cmd {
	if i == base64Text {
		t.file = nil
		t.run()
	}
	return nil
}

func (t *base64Tool) load(m *Model) tea.Cmd {
	name := t.value(base64File)
	if name == "" {
		return m.notifyError("Enter a file path first")
	}
	b, err := t.files.Load(name)
	if err != nil {
		Logger().Warn("file load failed", zap.String("file", name), zap.Error(err))
		return m.notifyError(fmt.Sprintf("Failed to read file: %v", err))
	}
	t.file = b
	t.run()
	return m.notify(fmt.Sprintf("Loaded %s (%d bytes)", b.Filename(), b.Size()))
}

func (t *base64Tool) source() []byte {
	if t.file != nil {
		return t.file.Data()
	}
	return []byte(t.value(base64Text))
}

func (t *base64Tool) run() {
	t.result, t.err = "", nil
	src := t.source()
	if len(src) == 0 {
		return
	}
	if !t.decode {
		t.result = codec.EncodeBase64(src, t.urlSafe)
		return
	}
	data, err := codec.DecodeBase64(string(src))
	if err != nil {
		t.err = err
		return
	}
	t.result = codec.DisplayText(data)
}

func (t *base64Tool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Result", value: "Error: Invalid Base64 input", err: true}}
	}
	return []output{{label: "Result", value: t.result}}
}
