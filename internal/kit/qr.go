package kit

import (
	"errors"
	"fmt"

	"kit/internal/buffer"
	"kit/internal/qr"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	qrText = iota
	qrImage
	qrSave
)

type qrTool struct {
	form
	code    *qrcode.QRCode
	art     string
	err     error
	files   buffer.Cache
	decoded string
}

func newQRTool() *qrTool {
	t := &qrTool{
		form: newForm(
			[]string{"Text", "Decode image", "Save PNG"},
			[]string{"Text or URL to encode", "Path to a PNG, JPEG or GIF, then enter", "qrcode.png, then enter"},
		),
	}
	t.fields[qrSave].SetValue("qrcode.png")
	return t
}

func (t *qrTool) Name() string       { return "QR Code Generator" }
func (t *qrTool) Slug() string       { return "qr-code" }
func (t *qrTool) Category() Category { return CategoryGenerators }

func (t *qrTool) Bindings() []key.Binding {
	return []key.Binding{binding("enter", "decode / save")}
}

func (t *qrTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "enter" {
		return false, nil
	}
	switch m.focus {
	case qrImage:
		return true, t.decode(m)
	case qrSave:
		return true, t.save(m)
	}
	return false, nil
}

func (t *qrTool) decode(m *Model) tea.Cmd {
	name := t.value(qrImage)
	if name == "" {
		return m.notifyError("Enter an image path first")
	}
	b, err := t.files.Load(name)
	if err != nil {
		Logger().Warn("file load failed", zap.String("file", name), zap.Error(err))
		return m.notifyError(fmt.Sprintf("Failed to read file: %v", err))
	}
	text, err := qr.Decode(b.Data())
	if err != nil {
		t.decoded = qr.ErrNotFound.Error()
		if !errors.Is(err, qr.ErrNotFound) {
			Logger().Debug("qr decode failed", zap.String("file", name), zap.Error(err))
		}
		return m.notifyError("No QR code found: Please try another image.")
	}
	t.decoded = text
	return m.notify("QR code decoded successfully")
}

func (t *qrTool) save(m *Model) tea.Cmd {
	if t.code == nil {
		return m.notifyError("Enter text to encode first")
	}
	name := t.value(qrSave)
	if name == "" {
		return m.notifyError("Enter a file name first")
	}
	if err := qr.Save(t.code, name); err != nil {
		Logger().Warn("qr save failed", zap.String("file", name), zap.Error(err))
		return m.notifyError(fmt.Sprintf("Failed to save: %v", err))
	}
	return m.notify("QR code saved as " + name)
}

func (t *qrTool) Changed(m *Model, i int) tea.Cmd {
	if i != qrText {
		return nil
	}
	t.code, t.art, t.err = nil, "", nil
	if t.value(qrText) == "" {
		return nil
	}
	code, err := qr.Encode(t.value(qrText))
	if err != nil {
		t.err = err
		return nil
	}
	t.code, t.art = code, qr.Render(code)
	return nil
}

func (t *qrTool) Outputs() []output {
	var out []output
	if t.decoded != "" {
		out = append(out, output{label: "Decoded", value: t.decoded})
	}
	if t.err != nil {
		return append(out, output{label: "Error", value: "Error generating QR code: " + t.err.Error(), err: true})
	}
	if t.art != "" {
		out = append(out, output{label: "QR code", value: t.art})
	}
	return out
}
