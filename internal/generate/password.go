package generate

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	MinPasswordLength = 4
	MaxPasswordLength = 64

	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	numberChars = "0123456789"
	symbolChars = "!@#$%^&*()_+[]{}|;:,.<>?"
)

var ErrNoCharacterClass = errors.New("Select at least one character type.")

type PasswordOptions struct {
	Length  int
	Upper   bool
	Lower   bool
	Numbers bool
	Symbols bool
}

func (o PasswordOptions) alphabet() string {
	var b strings.Builder
	if o.Upper {
		b.WriteString(upperChars)
	}
	if o.Lower {
		b.WriteString(lowerChars)
	}
	if o.Numbers {
		b.WriteString(numberChars)
	}
	if o.Symbols {
		b.WriteString(symbolChars)
	}
	return b.String()
}

func (o PasswordOptions) classes() int {
	n := 0
	for _, on := range []bool{o.Upper, o.Lower, o.Numbers, o.Symbols} {
		if on {
			n++
		}
	}
	return n
}

func ClampLength(n int) int {
	if n < MinPasswordLength {
		return MinPasswordLength
	}
	if n > MaxPasswordLength {
		return MaxPasswordLength
	}
	return n
}

// Password draws each character uniformly from the enabled classes.
func Password(opts PasswordOptions) (string, error) {
	chars := opts.alphabet()
	if chars == "" {
		return "", ErrNoCharacterClass
	}

	length := ClampLength(opts.Length)
	max := big.NewInt(int64(len(chars)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = chars[n.Int64()]
	}
	return string(out), nil
}

// Strength scores pwd from 0 to 100.
func Strength(pwd string, opts PasswordOptions) int {
	if pwd == "" {
		return 0
	}

	score := len(pwd)*4 + opts.classes()*10
	if hasTripleRun(pwd) {
		score -= 20
	}
	lower := strings.ToLower(pwd)
	if strings.Contains(lower, "abc") || strings.Contains(lower, "123") {
		score -= 15
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func hasTripleRun(s string) bool {
	for i := 2; i < len(s); i++ {
		if s[i] == s[i-1] && s[i] == s[i-2] {
			return true
		}
	}
	return false
}

func StrengthLabel(score int) string {
	switch {
	case score < 30:
		return "Very Weak"
	case score < 60:
		return "Weak"
	case score < 80:
		return "Good"
	default:
		return "Strong"
	}
}
