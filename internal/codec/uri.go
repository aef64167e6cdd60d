package codec

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent escapes every byte except A-Z a-z 0-9 and -_.!~*'().
func EncodeURIComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// DecodeURIComponent reverses percent escapes. A '+' stays a '+'.
func DecodeURIComponent(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

type QueryParam struct {
	Key   string
	Value string
}

type URLParts struct {
	Protocol        string
	Username        string
	Password        string
	Host            string
	Hostname        string
	Port            string
	Pathname        string
	Search          string
	Hash            string
	Origin          string
	Params          []QueryParam
	HostnameASCII   string
	HostnameUnicode string
}

// ParseURL splits an absolute URL into its components.
func ParseURL(raw string) (*URLParts, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("invalid URL: %q has no scheme", raw)
	}

	p := &URLParts{
		Protocol: u.Scheme + ":",
		Host:     u.Host,
		Hostname: u.Hostname(),
		Port:     u.Port(),
		Pathname: u.EscapedPath(),
		Hash:     fragment(u),
	}
	if u.User != nil {
		p.Username = u.User.Username()
		p.Password, _ = u.User.Password()
	}
	if u.RawQuery != "" {
		p.Search = "?" + u.RawQuery
	}
	if p.Pathname == "" && u.Host != "" {
		p.Pathname = "/"
	}
	if u.Host != "" {
		p.Origin = u.Scheme + "://" + u.Host
	} else {
		p.Origin = "null"
	}

	params, err := orderedQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	p.Params = params

	if p.Hostname != "" {
		if ascii, err := idna.Lookup.ToASCII(p.Hostname); err == nil {
			p.HostnameASCII = ascii
		}
		if uni, err := idna.Display.ToUnicode(p.Hostname); err == nil {
			p.HostnameUnicode = uni
		}
	}

	return p, nil
}

func fragment(u *url.URL) string {
	if u.Fragment == "" {
		return ""
	}
	return "#" + u.EscapedFragment()
}

// orderedQuery keeps parameters in the order they appear, which url.Values
// does not.
func orderedQuery(raw string) ([]QueryParam, error) {
	var params []QueryParam
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		params = append(params, QueryParam{Key: k, Value: v})
	}
	return params, nil
}
