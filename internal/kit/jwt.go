package kit

import (
	"time"

	"kit/internal/codec"
	"kit/internal/timestamp"

	tea "github.com/charmbracelet/bubbletea"
)

type jwtTool struct {
	form
	outputs []output
}

func newJWTTool() *jwtTool {
	return &jwtTool{
		form: newForm([]string{"Token"}, []string{"Paste a JSON Web Token"}),
	}
}

func (t *jwtTool) Name() string       { return "JWT Decoder" }
func (t *jwtTool) Slug() string       { return "jwt" }
func (t *jwtTool) Category() Category { return CategoryConverters }

func (t *jwtTool) Options(m *Model) string {
	return "Signatures are not verified"
}

func (t *jwtTool) Outputs() []output {
	return t.outputs
}

func (t *jwtTool) Changed(m *Model, i int) tea.Cmd {
	t.outputs = nil
	in := t.value(0)
	if in == "" {
		return nil
	}

	tok, err := codec.DecodeJWT(in)
	if err != nil {
		msg := err.Error()
		t.outputs = []output{
			{label: "Header", value: msg, err: true},
			{label: "Payload", value: msg, err: true},
			{label: "Signature", value: msg, err: true},
		}
		return nil
	}

	t.outputs = []output{
		part("Header", tok.Header, "Invalid Header"),
		part("Payload", tok.Payload, "Invalid Payload"),
		{label: "Signature", value: tok.Signature},
	}
	for _, c := range tok.Claims {
		t.outputs = append(t.outputs, output{
			label: c.Name,
			value: timestamp.Format(c.Time, time.UTC) + " (" + timestamp.Relative(c.Time, m.now()) + ")",
		})
	}
	return nil
}

func part(label, value, invalid string) output {
	if value == "" {
		return output{label: label, value: invalid, err: true}
	}
	return output{label: label, value: value}
}
