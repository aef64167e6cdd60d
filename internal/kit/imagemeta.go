package kit

import (
	"errors"
	"fmt"

	"kit/internal/buffer"
	"kit/internal/imagemeta"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type imageMetaTool struct {
	form
	files buffer.Cache
	md    *imagemeta.Metadata
	err   error
}

func newImageMetaTool() *imageMetaTool {
	return &imageMetaTool{
		form: newForm(
			[]string{"Image"},
			[]string{"Path to an image file, then enter"},
		),
	}
}

func (t *imageMetaTool) Name() string       { return "Image Metadata Viewer" }
func (t *imageMetaTool) Slug() string       { return "image-metadata-viewer" }
func (t *imageMetaTool) Category() Category { return CategoryViewers }

func (t *imageMetaTool) Bindings() []key.Binding {
	return []key.Binding{binding("enter", "load image")}
}

func (t *imageMetaTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "enter" || m.focus != 0 {
		return false, nil
	}
	name := t.value(0)
	if name == "" {
		return true, m.notifyError("Enter an image path first")
	}
	t.md, t.err = nil, nil
	b, err := t.files.Load(name)
	if err != nil {
		Logger().Warn("file load failed", zap.String("file", name), zap.Error(err))
		return true, m.notifyError(fmt.Sprintf("Failed to read file: %v", err))
	}
	md, err := imagemeta.Read(b.Data())
	if err != nil {
		t.err = err
		if !errors.Is(err, imagemeta.ErrNotImage) {
			Logger().Warn("exif read failed", zap.String("file", name), zap.Error(err))
		}
		return true, nil
	}
	t.md = md
	return true, m.notify(fmt.Sprintf("Loaded %s (%d bytes)", b.Filename(), b.Size()))
}

func (t *imageMetaTool) Changed(m *Model, i int) tea.Cmd {
	t.md, t.err = nil, nil
	return nil
}

func (t *imageMetaTool) Outputs() []output {
	if t.err != nil {
		return []output{{label: "Error", value: t.err.Error(), err: true}}
	}
	if t.md == nil {
		return nil
	}
	out := []output{
		{label: "Type", value: t.md.Type},
		{label: "Dimensions", value: fmt.Sprintf("%d x %d", t.md.Width, t.md.Height)},
	}
	if len(t.md.Tags) == 0 {
		return append(out, output{label: "EXIF", value: imagemeta.ErrNoExif.Error(), err: true})
	}
	for _, tag := range t.md.Tags {
		out = append(out, output{label: tag.Name, value: tag.Value})
	}
	return out
}
