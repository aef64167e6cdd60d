package numbase

import (
	"errors"
	"math/big"
	"testing"
)

func TestEditDecimal255(t *testing.T) {
	s := New()
	if err := s.Edit(Decimal, "255"); err != nil {
		t.Fatal(err)
	}

	want := map[Field]string{
		Decimal:     "255",
		Hexadecimal: "FF",
		Octal:       "377",
		Binary:      "11111111",
	}
	for f, w := range want {
		if got := s.Text(f); got != w {
			t.Errorf("%s: expected %q, got %q", f, w, got)
		}
	}
}

func TestEditNegativeOne(t *testing.T) {
	s := New()
	if err := s.Edit(Decimal, "-1"); err != nil {
		t.Fatal(err)
	}
	for _, f := range Fields {
		if got := s.Text(f); got != "-1" {
			t.Errorf("%s: expected -1, got %q", f, got)
		}
	}
}

func TestEditEveryBase(t *testing.T) {
	values := []int64{0, 1, 7, 8, 10, 255, 256, 4096, -42, 1 << 40, -(1 << 53) - 1}
	for _, v := range values {
		n := big.NewInt(v)
		for _, from := range Fields {
			s := New()
			if err := s.Edit(from, Format(n, from)); err != nil {
				t.Fatalf("%d from %s: %v", v, from, err)
			}
			for _, f := range Fields {
				if got, want := s.Text(f), Format(n, f); got != want {
					t.Errorf("%d from %s: %s expected %q, got %q", v, from, f, want, got)
				}
			}
		}
	}
}

func TestRoundTripThroughHex(t *testing.T) {
	s := New()
	if err := s.Edit(Decimal, "123456789012345678901234567890"); err != nil {
		t.Fatal(err)
	}
	hex := s.Text(Hexadecimal)

	s2 := New()
	if err := s2.Edit(Hexadecimal, hex); err != nil {
		t.Fatal(err)
	}
	if got := s2.Text(Decimal); got != "123456789012345678901234567890" {
		t.Errorf("expected original decimal back, got %q", got)
	}
}

func TestActiveFieldKeptAsTyped(t *testing.T) {
	s := New()
	if err := s.Edit(Hexadecimal, "00ff"); err != nil {
		t.Fatal(err)
	}
	if got := s.Text(Hexadecimal); got != "00ff" {
		t.Errorf("expected active field unchanged, got %q", got)
	}
	if got := s.Text(Decimal); got != "255" {
		t.Errorf("expected 255, got %q", got)
	}
	if f, ok := s.Active(); !ok || f != Hexadecimal {
		t.Errorf("expected hexadecimal active, got %v %v", f, ok)
	}
}

func TestEmptyClearsWithoutError(t *testing.T) {
	s := New()
	s.Edit(Decimal, "99")
	if err := s.Edit(Octal, ""); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	for _, f := range Fields {
		if got := s.Text(f); got != "" {
			t.Errorf("%s: expected empty, got %q", f, got)
		}
	}
	if _, ok := s.Value(); ok {
		t.Error("expected value to be undefined")
	}
}

func TestPatternInvalid(t *testing.T) {
	tests := []struct {
		field Field
		input string
		msg   string
	}{
		{Binary, "G", "Invalid binary input"},
		{Binary, "102", "Invalid binary input"},
		{Octal, "8", "Invalid octal input"},
		{Decimal, "1a", "Invalid decimal input"},
		{Hexadecimal, "xyz", "Invalid hexadecimal input"},
		{Decimal, "--1", "Invalid decimal input"},
		{Decimal, "1-", "Invalid decimal input"},
	}

	for _, tt := range tests {
		s := New()
		s.Edit(Decimal, "10")
		err := s.Edit(tt.field, tt.input)
		if !errors.Is(err, ErrPatternInvalid) {
			t.Errorf("%s %q: expected ErrPatternInvalid, got %v", tt.field, tt.input, err)
			continue
		}
		if err.Error() != tt.msg {
			t.Errorf("%s %q: expected message %q, got %q", tt.field, tt.input, tt.msg, err.Error())
		}
		for _, f := range Fields {
			if got := s.Text(f); got != "" {
				t.Errorf("%s %q: expected %s cleared, got %q", tt.field, tt.input, f, got)
			}
		}
	}
}

func TestLoneMinusIsParseFailure(t *testing.T) {
	s := New()
	s.Edit(Decimal, "5")
	err := s.Edit(Decimal, "-")
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("expected ErrParseFailure, got %v", err)
	}
	if errors.Is(err, ErrPatternInvalid) {
		t.Error("parse failure must not look like a pattern error")
	}
	for _, f := range Fields {
		if got := s.Text(f); got != "" {
			t.Errorf("%s: expected empty, got %q", f, got)
		}
	}
}

func TestNegativeZero(t *testing.T) {
	s := New()
	if err := s.Edit(Decimal, "-0"); err != nil {
		t.Fatal(err)
	}
	if got := s.Text(Binary); got != "0" {
		t.Errorf("expected 0, got %q", got)
	}
}

func TestValueIsCopy(t *testing.T) {
	s := New()
	s.Edit(Decimal, "12")
	v, ok := s.Value()
	if !ok {
		t.Fatal("expected value")
	}
	v.SetInt64(99)
	again, _ := s.Value()
	if again.Int64() != 12 {
		t.Errorf("expected 12, got %d", again.Int64())
	}
}
