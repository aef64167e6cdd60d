package regex

import (
	"fmt"
	"regexp"
	"strings"
)

type Flags struct {
	Global     bool
	IgnoreCase bool
	Multiline  bool
}

func (f Flags) String() string {
	s := ""
	if f.Global {
		s += "g"
	}
	if f.IgnoreCase {
		s += "i"
	}
	if f.Multiline {
		s += "m"
	}
	return s
}

type Span struct {
	Start int
	End   int
}

type Result struct {
	Matches []string
	Spans   []Span
}

// Compile applies flags as inline RE2 flags.
func Compile(pattern string, flags Flags) (*regexp.Regexp, error) {
	prefix := ""
	if flags.IgnoreCase {
		prefix += "i"
	}
	if flags.Multiline {
		prefix += "m"
	}
	if prefix != "" {
		pattern = "(?" + prefix + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return re, nil
}

// Match finds every match of pattern in text, or only the first one unless
// flags.Global is set. An empty pattern matches nothing.
func Match(pattern, text string, flags Flags) (*Result, error) {
	res := &Result{}
	if pattern == "" {
		return res, nil
	}

	re, err := Compile(pattern, flags)
	if err != nil {
		return nil, err
	}

	limit := 1
	if flags.Global {
		limit = -1
	}
	for _, loc := range re.FindAllStringIndex(text, limit) {
		res.Spans = append(res.Spans, Span{Start: loc[0], End: loc[1]})
		res.Matches = append(res.Matches, text[loc[0]:loc[1]])
	}
	return res, nil
}

// Highlight renders text with every span passed through mark.
func Highlight(text string, spans []Span, mark func(string) string) string {
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos || sp.End > len(text) {
			continue
		}
		b.WriteString(text[pos:sp.Start])
		if sp.End > sp.Start {
			b.WriteString(mark(text[sp.Start:sp.End]))
		}
		pos = sp.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
