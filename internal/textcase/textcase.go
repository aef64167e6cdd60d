package textcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Case int

const (
	Upper Case = iota
	Lower
	Title
	Camel
	Snake
	Kebab
)

var All = []Case{Upper, Lower, Title, Camel, Snake, Kebab}

func (c Case) String() string {
	switch c {
	case Upper:
		return "UPPERCASE"
	case Lower:
		return "lowercase"
	case Title:
		return "Title Case"
	case Camel:
		return "camelCase"
	case Snake:
		return "snake_case"
	case Kebab:
		return "kebab-case"
	}
	return "unknown"
}

// Convert rewrites s in case c. Casers keep state, so each call builds its own.
func Convert(s string, c Case) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	switch c {
	case Upper:
		return upper.String(s)
	case Lower:
		return lower.String(s)
	case Title:
		words := Words(s)
		for i, w := range words {
			words[i] = title.String(w)
		}
		return strings.Join(words, " ")
	case Camel:
		words := Words(s)
		for i, w := range words {
			if i == 0 {
				words[i] = lower.String(w)
			} else {
				words[i] = title.String(w)
			}
		}
		return strings.Join(words, "")
	case Snake:
		return joinLower(lower, Words(s), "_")
	case Kebab:
		return joinLower(lower, Words(s), "-")
	}
	return s
}

func joinLower(lower cases.Caser, words []string, sep string) string {
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, sep)
}

// Words splits s on anything that is not a letter or digit, and where a
// lower case letter or digit is followed by an upper case one.
// "parseHTTPResponse" yields parse, HTTP, Response.
func Words(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
