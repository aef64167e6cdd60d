package jsonfmt

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	got, err := Format(`{"a":1,"b":[true,null]}`, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}"
	if got != want {
		t.Errorf("unexpected format:\n%s", got)
	}
}

func TestMinify(t *testing.T) {
	got, err := Minify("{\n  \"a\" : 1 ,\n \"b\": \"x y\"\n}")
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"a":1,"b":"x y"}` {
		t.Errorf("unexpected minify %q", got)
	}
}

func TestToYAML(t *testing.T) {
	got, err := ToYAML(`{"name":"kit","count":3,"ratio":0.5,"tags":["a","b"],"big":12345678901234567890}`)
	if err != nil {
		t.Fatal(err)
	}
	want := "big: 1.2345678901234567e+19\ncount: 3\nname: kit\nratio: 0.5\ntags:\n- a\n- b\n"
	if got != want {
		t.Errorf("unexpected yaml:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmpty(t *testing.T) {
	for _, fn := range []func(string) (string, error){Minify, ToYAML} {
		if _, err := fn("   "); !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty, got %v", err)
		}
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Format("{\n  \"a\": 1,\n  ,\n}", 2)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if se.Line != 3 || se.Column != 3 {
		t.Errorf("expected line 3 column 3, got line %d column %d", se.Line, se.Column)
	}
}

func TestSyntaxErrorColumnCountsRunes(t *testing.T) {
	_, err := Format(`{"é":,}`, 2)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if se.Line != 1 || se.Column != 6 {
		t.Errorf("expected line 1 column 6, got line %d column %d", se.Line, se.Column)
	}
}
