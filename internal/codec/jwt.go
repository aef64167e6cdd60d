package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrMalformedJWT = errors.New("Invalid JWT format")

// JWT holds the decoded parts of a token. Header and Payload are empty when
// the part could not be decoded.
type JWT struct {
	Header    string
	Payload   string
	Signature string
	Claims    []TimeClaim
}

type TimeClaim struct {
	Name string
	Time time.Time
}

var timeClaims = []string{"exp", "iat", "nbf"}

// DecodeJWT splits and decodes a token without verifying its signature.
func DecodeJWT(token string) (*JWT, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 3 {
		return nil, ErrMalformedJWT
	}

	jwt := &JWT{Signature: parts[2]}
	if header, ok := decodeSegment(parts[0]); ok {
		jwt.Header = prettyJSON(header)
	}
	if payload, ok := decodeSegment(parts[1]); ok {
		jwt.Payload = prettyJSON(payload)
		jwt.Claims = extractTimeClaims(payload)
	}
	return jwt, nil
}

func decodeSegment(seg string) ([]byte, bool) {
	if seg == "" {
		return nil, false
	}
	data, err := DecodeBase64(seg)
	if err != nil || !utf8.Valid(data) {
		return nil, false
	}
	return data, true
}

// prettyJSON indents data, or returns it unchanged if it is not JSON.
func prettyJSON(data []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return string(data)
	}
	return out.String()
}

func extractTimeClaims(payload []byte) []TimeClaim {
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil
	}

	var result []TimeClaim
	for _, name := range timeClaims {
		v, ok := claims[name].(float64)
		if !ok {
			continue
		}
		sec := int64(v)
		nsec := int64((v - float64(sec)) * 1e9)
		result = append(result, TimeClaim{Name: name, Time: time.Unix(sec, nsec).UTC()})
	}
	return result
}
