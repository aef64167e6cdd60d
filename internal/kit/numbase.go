package kit

import (
	"errors"

	"kit/internal/numbase"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type numbaseTool struct {
	form
	sync *numbase.Synchronizer
}

func newNumbaseTool() *numbaseTool {
	return &numbaseTool{
		form: newForm(
			[]string{"Decimal", "Hexadecimal", "Octal", "Binary"},
			[]string{"Enter decimal number", "Enter hexadecimal number", "Enter octal number", "Enter binary number"},
		),
		sync: numbase.New(),
	}
}

func (t *numbaseTool) Name() string { return "Number Base Converter" }
func (t *numbaseTool) Slug() string { return "number-base" }
func (t *numbaseTool) Category() Category { return CategoryConverters }

// Changed re-renders every field except the one being typed in. The typed
// field is only cleared when its text is illegal for its base.
func (t *numbaseTool) Changed(m *Model, i int) tea.Cmd {
	field := numbase.Fields[i]
	err := t.sync.Edit(field, t.value(i))

	for j, f := range numbase.Fields {
		if f != field {
			t.fields[j].SetValue(t.sync.Text(f))
		}
	}

	// A parse failure such as a lone "-" also empties the Synchronizer, but
	// the typed text stays in its field so the user can keep typing digits.
	if errors.Is(err, numbase.ErrPatternInvalid) {
		t.fields[i].SetValue("")
		Logger().Debug("rejected number input", zap.Stringer("base", field), zap.Error(err))
		return m.notifyError(err.Error())
	}
	return nil
}
