package codec

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncodeBase64(t *testing.T) {
	tests := []struct {
		in      string
		urlSafe bool
		want    string
	}{
		{"hello", false, "aGVsbG8="},
		{"hello", true, "aGVsbG8"},
		{"\xfb\xff", false, "+/8="},
		{"\xfb\xff", true, "-_8"},
		{"", false, ""},
	}

	for _, tt := range tests {
		if got := EncodeBase64([]byte(tt.in), tt.urlSafe); got != tt.want {
			t.Errorf("EncodeBase64(%q, %v) = %q, want %q", tt.in, tt.urlSafe, got, tt.want)
		}
	}
}

func TestDecodeBase64AcceptsBothAlphabets(t *testing.T) {
	for _, in := range []string{"aGVsbG8=", "aGVsbG8", " aGVs\nbG8= "} {
		got, err := DecodeBase64(in)
		if err != nil {
			t.Errorf("DecodeBase64(%q): %v", in, err)
			continue
		}
		if string(got) != "hello" {
			t.Errorf("DecodeBase64(%q) = %q", in, got)
		}
	}

	got, err := DecodeBase64("-_8")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "\xfb\xff" {
		t.Errorf("unexpected bytes %x", got)
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	if _, err := DecodeBase64("a$b"); err == nil {
		t.Error("expected error for illegal character")
	}
}

func TestDisplayText(t *testing.T) {
	if got := DisplayText([]byte("ok\xff")); got != "ok�" {
		t.Errorf("unexpected display text %q", got)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"hello world":   "hello%20world",
		"a+b=c&d":       "a%2Bb%3Dc%26d",
		"-_.!~*'()":     "-_.!~*'()",
		"é":             "%C3%A9",
		"/path?q=1#top": "%2Fpath%3Fq%3D1%23top",
	}
	for in, want := range tests {
		if got := EncodeURIComponent(in); got != want {
			t.Errorf("EncodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeURIComponent(t *testing.T) {
	got, err := DecodeURIComponent("hello%20world+%C3%A9")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello world+é" {
		t.Errorf("unexpected decode %q", got)
	}

	if _, err := DecodeURIComponent("%E0%A4%A"); err == nil {
		t.Error("expected error for truncated escape")
	}
}

func TestParseURL(t *testing.T) {
	p, err := ParseURL("https://user:pw@bücher.example:8443/a/b?x=1&y=two%20words&x=3#frag")
	if err != nil {
		t.Fatal(err)
	}

	checks := map[string][2]string{
		"protocol": {p.Protocol, "https:"},
		"username": {p.Username, "user"},
		"password": {p.Password, "pw"},
		"host":     {p.Host, "bücher.example:8443"},
		"hostname": {p.Hostname, "bücher.example"},
		"port":     {p.Port, "8443"},
		"pathname": {p.Pathname, "/a/b"},
		"search":   {p.Search, "?x=1&y=two%20words&x=3"},
		"hash":     {p.Hash, "#frag"},
		"origin":   {p.Origin, "https://bücher.example:8443"},
		"ascii":    {p.HostnameASCII, "xn--bcher-kva.example"},
		"unicode":  {p.HostnameUnicode, "bücher.example"},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s: got %q, want %q", name, c[0], c[1])
		}
	}

	want := []QueryParam{{"x", "1"}, {"y", "two words"}, {"x", "3"}}
	if len(p.Params) != len(want) {
		t.Fatalf("expected %d params, got %d", len(want), len(p.Params))
	}
	for i, w := range want {
		if p.Params[i] != w {
			t.Errorf("param %d: got %+v, want %+v", i, p.Params[i], w)
		}
	}
}

func TestParseURLDefaultPath(t *testing.T) {
	p, err := ParseURL("http://example.com")
	if err != nil {
		t.Fatal(err)
	}
	if p.Pathname != "/" {
		t.Errorf("expected / pathname, got %q", p.Pathname)
	}
}

func TestParseURLRelative(t *testing.T) {
	if _, err := ParseURL("/just/a/path"); err == nil {
		t.Error("expected error for relative URL")
	}
}

func TestDecodeJWT(t *testing.T) {
	header := EncodeBase64([]byte(`{"alg":"HS256","typ":"JWT"}`), true)
	payload := EncodeBase64([]byte(`{"sub":"1234567890","iat":1516239022}`), true)
	token := header + "." + payload + ".sig"

	jwt, err := DecodeJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(jwt.Header, "\"alg\": \"HS256\"") {
		t.Errorf("expected indented header, got %q", jwt.Header)
	}
	if !strings.Contains(jwt.Payload, "\"sub\": \"1234567890\"") {
		t.Errorf("expected indented payload, got %q", jwt.Payload)
	}
	if jwt.Signature != "sig" {
		t.Errorf("expected raw signature, got %q", jwt.Signature)
	}
	if len(jwt.Claims) != 1 || jwt.Claims[0].Name != "iat" {
		t.Fatalf("expected iat claim, got %+v", jwt.Claims)
	}
	if !jwt.Claims[0].Time.Equal(time.Unix(1516239022, 0)) {
		t.Errorf("unexpected iat time %v", jwt.Claims[0].Time)
	}
}

func TestDecodeJWTMalformed(t *testing.T) {
	for _, token := range []string{"abc", "a.b", "a.b.c.d"} {
		if _, err := DecodeJWT(token); !errors.Is(err, ErrMalformedJWT) {
			t.Errorf("DecodeJWT(%q): expected ErrMalformedJWT, got %v", token, err)
		}
	}
}

func TestDecodeJWTUndecodableParts(t *testing.T) {
	jwt, err := DecodeJWT("!!!.@@@.sig")
	if err != nil {
		t.Fatal(err)
	}
	if jwt.Header != "" || jwt.Payload != "" {
		t.Errorf("expected empty header and payload, got %q %q", jwt.Header, jwt.Payload)
	}
}

func TestDecodeJWTNonJSONPayload(t *testing.T) {
	token := EncodeBase64([]byte("{}"), true) + "." + EncodeBase64([]byte("plain"), true) + "."
	jwt, err := DecodeJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if jwt.Payload != "plain" {
		t.Errorf("expected raw payload, got %q", jwt.Payload)
	}
}
