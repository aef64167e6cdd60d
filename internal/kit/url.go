package kit

import (
	"fmt"

	"kit/internal/codec"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type urlMode int

const (
	urlEncode urlMode = iota
	urlDecode
	urlParse
)

func (u urlMode) String() string {
	switch u {
	case urlDecode:
		return "Decode"
	case urlParse:
		return "Parse"
	default:
		return "Encode"
	}
}

type urlTool struct {
	form
	mode    urlMode
	outputs []output
}

func newURLTool() *urlTool {
	return &urlTool{
		form: newForm([]string{"Input"}, []string{"Enter a URL or URL component"}),
	}
}

func (t *urlTool) Name() string       { return "URL Encoder/Decoder" }
func (t *urlTool) Slug() string       { return "url" }
func (t *urlTool) Category() Category { return CategoryConverters }

func (t *urlTool) Bindings() []key.Binding {
	return []key.Binding{binding("ctrl+e", "encode/decode/parse")}
}

func (t *urlTool) Options(m *Model) string {
	return "Mode: " + t.mode.String()
}

func (t *urlTool) Key(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "ctrl+e" {
		return false, nil
	}
	t.mode = (t.mode + 1) % 3
	t.run()
	return true, nil
}

func (t *urlTool) Changed(m *Model, i int) tea.Cmd {
	t.run()
	return nil
}

func (t *urlTool) Outputs() []output {
	return t.outputs
}

func (t *urlTool) run() {
	t.outputs = nil
	in := t.value(0)
	if in == "" {
		return
	}

	switch t.mode {
	case urlEncode:
		t.outputs = []output{{label: "Result", value: codec.EncodeURIComponent(in)}}
	case urlDecode:
		s, err := codec.DecodeURIComponent(in)
		if err != nil {
			t.outputs = []output{{label: "Result", value: "Error: Invalid URL encoding", err: true}}
			return
		}
		t.outputs = []output{{label: "Result", value: s}}
	case urlParse:
		p, err := codec.ParseURL(in)
		if err != nil {
			t.outputs = []output{{label: "Result", value: "Error: Invalid URL", err: true}}
			return
		}
		t.outputs = []output{
			{label: "Protocol", value: p.Protocol},
			{label: "Origin", value: p.Origin},
			{label: "Host", value: p.Host},
			{label: "Hostname", value: p.Hostname},
			{label: "Hostname (ASCII)", value: p.HostnameASCII},
			{label: "Hostname (Unicode)", value: p.HostnameUnicode},
			{label: "Port", value: p.Port},
			{label: "Username", value: p.Username},
			{label: "Password", value: p.Password},
			{label: "Pathname", value: p.Pathname},
			{label: "Search", value: p.Search},
			{label: "Hash", value: p.Hash},
		}
		for _, q := range p.Params {
			t.outputs = append(t.outputs, output{label: fmt.Sprintf("?%s", q.Key), value: q.Value})
		}
	}
}
