package textcase

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := map[string][]string{
		"hello world":         {"hello", "world"},
		"parseHTTPResponse":   {"parse", "HTTP", "Response"},
		"snake_case-and.more": {"snake", "case", "and", "more"},
		"  ":                  nil,
		"v2Beta":              {"v2", "Beta"},
	}
	for in, want := range tests {
		if got := Words(in); !reflect.DeepEqual(got, want) {
			t.Errorf("Words(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConvert(t *testing.T) {
	in := "hello big-World"
	want := map[Case]string{
		Upper: "HELLO BIG-WORLD",
		Lower: "hello big-world",
		Title: "Hello Big World",
		Camel: "helloBigWorld",
		Snake: "hello_big_world",
		Kebab: "hello-big-world",
	}
	for _, c := range All {
		if got := Convert(in, c); got != want[c] {
			t.Errorf("%s: got %q, want %q", c, got, want[c])
		}
	}
}

func TestConvertUnicode(t *testing.T) {
	if got := Convert("straße groß", Upper); got != "STRASSE GROSS" {
		t.Errorf("unexpected upper %q", got)
	}
	if got := Convert("élan vital", Camel); got != "élanVital" {
		t.Errorf("unexpected camel %q", got)
	}
}
