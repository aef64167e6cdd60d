package regex

import (
	"reflect"
	"testing"
)

func TestMatchFirstOnly(t *testing.T) {
	res, err := Match(`\d+`, "a1 b22 c333", Flags{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Matches, []string{"1"}) {
		t.Errorf("unexpected matches %q", res.Matches)
	}
}

func TestMatchGlobal(t *testing.T) {
	res, err := Match(`\d+`, "a1 b22 c333", Flags{Global: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Matches, []string{"1", "22", "333"}) {
		t.Errorf("unexpected matches %q", res.Matches)
	}
	want := []Span{{1, 2}, {4, 6}, {8, 11}}
	if !reflect.DeepEqual(res.Spans, want) {
		t.Errorf("unexpected spans %v", res.Spans)
	}
}

func TestMatchFlags(t *testing.T) {
	res, err := Match(`^foo`, "FOO\nfoo", Flags{Global: true, IgnoreCase: true, Multiline: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Matches, []string{"FOO", "foo"}) {
		t.Errorf("unexpected matches %q", res.Matches)
	}

	res, err = Match(`^foo`, "FOO\nfoo", Flags{Global: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Matches) != 0 {
		t.Errorf("expected no matches without flags, got %q", res.Matches)
	}
}

func TestMatchEmptyPattern(t *testing.T) {
	res, err := Match("", "anything", Flags{Global: true})
	if err != nil || len(res.Matches) != 0 {
		t.Errorf("expected no matches and no error, got %v %v", res, err)
	}
}

func TestMatchInvalidPattern(t *testing.T) {
	if _, err := Match("(", "x", Flags{}); err == nil {
		t.Error("expected compile error")
	}
}

func TestHighlight(t *testing.T) {
	got := Highlight("a1 b22", []Span{{1, 2}, {4, 6}}, func(s string) string { return "[" + s + "]" })
	if got != "a[1] b[22]" {
		t.Errorf("unexpected highlight %q", got)
	}
}

func TestFlagsString(t *testing.T) {
	if s := (Flags{Global: true, Multiline: true}).String(); s != "gm" {
		t.Errorf("unexpected flags %q", s)
	}
}
