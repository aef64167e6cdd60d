package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v2"
)

var ErrEmpty = errors.New("empty input")

// SyntaxError locates a parse failure in the input.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func Format(input string, indent int) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(input), "", strings.Repeat(" ", indent)); err != nil {
		return "", wrap(input, err)
	}
	return out.String(), nil
}

func Minify(input string) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Compact(&out, []byte(input)); err != nil {
		return "", wrap(input, err)
	}
	return out.String(), nil
}

// ToYAML re-encodes the document as YAML. Object keys come out sorted.
func ToYAML(input string) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}

	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", wrap(input, err)
	}

	out, err := yaml.Marshal(toYAMLValue(v))
	if err != nil {
		return "", fmt.Errorf("yaml: %w", err)
	}
	return string(out), nil
}

// json.Number would be quoted by yaml, so numbers become ints or floats.
func toYAMLValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = toYAMLValue(val)
		}
		return t
	case []any:
		for i := range t {
			t[i] = toYAMLValue(t[i])
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

func validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmpty
	}
	if !json.Valid([]byte(input)) {
		var v any
		return wrap(input, json.Unmarshal([]byte(input), &v))
	}
	return nil
}

func wrap(input string, err error) error {
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return err
	}
	line, col := position(input, se.Offset)
	return &SyntaxError{Line: line, Column: col, Msg: se.Error()}
}

func position(input string, offset int64) (int, int) {
	// Offset counts the offending byte
	idx := int(offset) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(input) {
		idx = len(input)
	}
	before := input[:idx]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(before[strings.LastIndex(before, "\n")+1:]) + 1
	return line, col
}
