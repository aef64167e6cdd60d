package codec

import (
	"encoding/base64"
	"strings"
	"unicode"
)

func EncodeBase64(data []byte, urlSafe bool) string {
	if urlSafe {
		return base64.RawURLEncoding.EncodeToString(data)
	}
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 accepts the standard and URL-safe alphabets, with or without
// padding, and ignores whitespace.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '-':
			return '+'
		case r == '_':
			return '/'
		}
		return r
	}, s)
	s = strings.TrimRight(s, "=")
	return base64.RawStdEncoding.DecodeString(s)
}

// DisplayText renders decoded bytes as text, replacing invalid UTF-8.
func DisplayText(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
