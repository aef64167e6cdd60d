package numbase

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

type Field int

const (
	Decimal Field = iota
	Hexadecimal
	Octal
	Binary
)

// Fields lists every representation in display order.
var Fields = []Field{Decimal, Hexadecimal, Octal, Binary}

var (
	ErrPatternInvalid = errors.New("invalid input")
	ErrParseFailure   = errors.New("not a number")
)

var patterns = map[Field]*regexp.Regexp{
	Decimal:     regexp.MustCompile(`^-?\d*$`),
	Hexadecimal: regexp.MustCompile(`^-?[0-9a-fA-F]*$`),
	Octal:       regexp.MustCompile(`^-?[0-7]*$`),
	Binary:      regexp.MustCompile(`^-?[01]*$`),
}

func (f Field) Radix() int {
	switch f {
	case Hexadecimal:
		return 16
	case Octal:
		return 8
	case Binary:
		return 2
	default:
		return 10
	}
}

func (f Field) String() string {
	switch f {
	case Hexadecimal:
		return "hexadecimal"
	case Octal:
		return "octal"
	case Binary:
		return "binary"
	default:
		return "decimal"
	}
}

// InputError reports an edit that could not be turned into a value.
// Kind is ErrPatternInvalid or ErrParseFailure.
type InputError struct {
	Field Field
	Input string
	Kind  error
}

func (e *InputError) Error() string {
	if e.Kind == ErrParseFailure {
		return fmt.Sprintf("%s input %q is not a number", e.Field, e.Input)
	}
	return fmt.Sprintf("Invalid %s input", e.Field)
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

// Synchronizer keeps the four representations of one integer consistent.
type Synchronizer struct {
	reps      [4]string
	value     *big.Int
	active    Field
	hasActive bool
}

func New() *Synchronizer {
	return &Synchronizer{}
}

// Edit records raw as the new text of field and re-renders the other fields.
// The edited field keeps raw as typed when it parses.
func (s *Synchronizer) Edit(field Field, raw string) error {
	s.active = field
	s.hasActive = true

	if raw == "" {
		s.clear()
		return nil
	}

	if !patterns[field].MatchString(raw) {
		s.clear()
		return &InputError{Field: field, Input: raw, Kind: ErrPatternInvalid}
	}

	n, ok := Parse(raw, field)
	if !ok {
		s.clear()
		return &InputError{Field: field, Input: raw, Kind: ErrParseFailure}
	}

	s.value = n
	for _, f := range Fields {
		if f == field {
			s.reps[f] = raw
			continue
		}
		s.reps[f] = Format(n, f)
	}
	return nil
}

func (s *Synchronizer) clear() {
	s.value = nil
	s.reps = [4]string{}
}

// Text returns the current representation of field.
func (s *Synchronizer) Text(field Field) string {
	return s.reps[field]
}

// Value returns a copy of the shared integer, if one is defined.
func (s *Synchronizer) Value() (*big.Int, bool) {
	if s.value == nil {
		return nil, false
	}
	return new(big.Int).Set(s.value), true
}

func (s *Synchronizer) Active() (Field, bool) {
	return s.active, s.hasActive
}

// Parse reads raw in the radix of field. It accepts a leading minus sign and
// nothing else besides digits of that radix.
func Parse(raw string, field Field) (*big.Int, bool) {
	if !patterns[field].MatchString(raw) {
		return nil, false
	}
	digits := strings.TrimPrefix(raw, "-")
	if digits == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(digits, field.Radix())
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(raw, "-") {
		n.Neg(n)
	}
	return n, true
}

// Format renders n in the radix of field. Hex digits are upper case and
// negative values keep a leading minus sign.
func Format(n *big.Int, field Field) string {
	s := n.Text(field.Radix())
	if field == Hexadecimal {
		s = strings.ToUpper(s)
	}
	return s
}
